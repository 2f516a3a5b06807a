package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobs-service/db"
	"jobs-service/models"
)

// fakeUsers stores plain passwords; hashing is covered by the service tests.
type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) public(u models.User) models.User {
	u.Password = ""
	return u
}

func (f *fakeUsers) GetUsers(context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, f.public(u))
	}
	return users, nil
}

func (f *fakeUsers) GetUsersByRole(_ context.Context, role string) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		if u.Role == role {
			users = append(users, f.public(u))
		}
	}
	return users, nil
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if u.ID == oid {
			u = f.public(u)
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUsers) Signup(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	user.Password = ""
	return nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, id string, _ *models.User) error {
	_, err := f.GetUser(context.Background(), id)
	return err
}

func (f *fakeUsers) DeleteUser(_ context.Context, id string) error {
	_, err := f.GetUser(context.Background(), id)
	return err
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Password == password {
			u = f.public(u)
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func TestUserSignupAndLogin(t *testing.T) {
	users := &fakeUsers{}
	router := NewRouter(zerolog.Nop(), NewUserHandler(users))

	rec := serve(t, router, http.MethodPost, "/api/auth/signup", `{"email":"a@b.com","password":"right","role":"contractor"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	created := decodeBody[models.User](t, rec)
	assert.False(t, created.ID.IsZero())

	rec = serve(t, router, http.MethodPost, "/api/auth/login", models.Credentials{Email: "a@b.com", Password: "right"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeBody[models.User](t, rec).ID)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = serve(t, router, http.MethodPost, "/api/auth/login", models.Credentials{Email: "a@b.com", Password: "wrong"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, messageOf(t, rec))
}

func TestUsersByRole(t *testing.T) {
	users := &fakeUsers{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "m@b.com", Role: models.RoleManager},
		{ID: primitive.NewObjectID(), Email: "c@b.com", Role: models.RoleContractor},
		{ID: primitive.NewObjectID(), Email: "M@b.com", Role: "Manager"},
	}}
	router := NewRouter(zerolog.Nop(), NewUserHandler(users))

	rec := serve(t, router, http.MethodGet, "/api/auth/role/manager", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	managers := decodeBody[[]models.User](t, rec)
	require.Len(t, managers, 1)
	assert.Equal(t, "m@b.com", managers[0].Email)

	rec = serve(t, router, http.MethodGet, "/api/auth/role/janitor", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUserRoutesByID(t *testing.T) {
	id := primitive.NewObjectID()
	users := &fakeUsers{users: []models.User{{ID: id, Email: "m@b.com", Password: "pw", Role: models.RoleManager}}}
	router := NewRouter(zerolog.Nop(), NewUserHandler(users))

	rec := serve(t, router, http.MethodGet, "/api/auth/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pw")

	rec = serve(t, router, http.MethodPut, "/api/auth/"+id.Hex(), `{"email":"n@b.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodDelete, "/api/auth/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/auth/signup", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
