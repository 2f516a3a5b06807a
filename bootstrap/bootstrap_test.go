package bootstrap

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobs-service/config"
	"jobs-service/models"
)

type fakeSeeder struct {
	services []models.Service
	users    []models.User
	err      error
}

func (f *fakeSeeder) SeedServices(_ context.Context, services []models.Service) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.services = services
	return len(services), nil
}

func (f *fakeSeeder) SeedUsers(_ context.Context, users []models.User) (int, error) {
	f.users = users
	return len(users), nil
}

func TestRunDisabled(t *testing.T) {
	seeder := &fakeSeeder{}
	err := Run(context.Background(), config.Config{BootstrapManagerPassword: "pw"}, seeder, seeder, zerolog.Nop())

	require.NoError(t, err)
	assert.Nil(t, seeder.services)
	assert.Nil(t, seeder.users)
}

func TestRunSeedsCatalogAndManager(t *testing.T) {
	seeder := &fakeSeeder{}
	cfg := config.Config{
		EnableBootstrap:          true,
		BootstrapManagerEmail:    "boss@example.com",
		BootstrapManagerPassword: "s3cret",
	}

	require.NoError(t, Run(context.Background(), cfg, seeder, seeder, zerolog.Nop()))

	assert.Len(t, seeder.services, len(InitialServices()))
	require.Len(t, seeder.users, 1)
	assert.Equal(t, "boss@example.com", seeder.users[0].Email)
	assert.Equal(t, models.RoleManager, seeder.users[0].Role)
}

func TestRunWithoutManagerPassword(t *testing.T) {
	seeder := &fakeSeeder{}
	require.NoError(t, Run(context.Background(), config.Config{EnableBootstrap: true}, seeder, seeder, zerolog.Nop()))

	assert.NotEmpty(t, seeder.services)
	assert.Nil(t, seeder.users)
}

func TestRunServiceSeedFailure(t *testing.T) {
	seeder := &fakeSeeder{err: errors.New("boom")}
	err := Run(context.Background(), config.Config{EnableBootstrap: true}, seeder, seeder, zerolog.Nop())

	assert.EqualError(t, err, "seeding services: boom")
}

func TestInitialServicesAreComplete(t *testing.T) {
	for _, s := range InitialServices() {
		assert.NotEmpty(t, s.ServiceName)
		assert.NotEmpty(t, s.Severities, s.ServiceName)
	}
}
