package service

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"jobs-service/db"
	"jobs-service/models"
)

// UserService stores accounts with bcrypt hashed passwords. Every user it
// returns has its Password cleared.
type UserService struct {
	users *db.Collection[models.User]
	cost  int
}

func NewUserService(store *db.Store) *UserService {
	return &UserService{users: store.Users, cost: bcrypt.DefaultCost}
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	return sanitizeAll(users), err
}

// GetUsersByRole matches role exactly. Unknown roles simply match nothing.
func (s *UserService) GetUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.users.Find(ctx, bson.M{"role": role})
	return sanitizeAll(users), err
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}

// Signup creates the account under a new id. An empty password is left
// absent so the collection validator rejects the write.
func (s *UserService) Signup(ctx context.Context, user *models.User) error {
	if err := s.hashPassword(user); err != nil {
		return err
	}
	user.ID = primitive.NewObjectID()
	if err := s.users.Insert(ctx, user); err != nil {
		return err
	}
	sanitize(user)
	return nil
}

// UpdateUser rehashes the password when one is given and keeps the stored
// one otherwise.
func (s *UserService) UpdateUser(ctx context.Context, id string, user *models.User) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.hashPassword(user); err != nil {
		return err
	}
	user.ID = primitive.NilObjectID
	return s.users.UpdateByID(ctx, oid, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	return s.users.DeleteByID(ctx, oid)
}

// Login returns the user registered under email when password matches. An
// unknown email and a wrong password both yield db.ErrNotFound.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, db.ErrNotFound
	}
	user, err := s.users.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, db.ErrNotFound
	}
	return sanitize(user), nil
}

// SeedUsers inserts users when the collection is empty.
func (s *UserService) SeedUsers(ctx context.Context, users []models.User) (int, error) {
	count, err := s.users.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	for i := range users {
		if err := s.hashPassword(&users[i]); err != nil {
			return 0, err
		}
		users[i].ID = primitive.NewObjectID()
	}
	if err := s.users.InsertMany(ctx, users); err != nil {
		return 0, err
	}
	return len(users), nil
}

func (s *UserService) hashPassword(user *models.User) error {
	if user.Password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.cost)
	if err != nil {
		return &db.ValidationError{Message: errors.Wrap(err, "password").Error()}
	}
	user.Password = string(hashed)
	return nil
}

func sanitize(user *models.User) *models.User {
	user.Password = ""
	return user
}

func sanitizeAll(users []models.User) []models.User {
	for i := range users {
		users[i].Password = ""
	}
	return users
}
