package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobs-service/db"
	"jobs-service/models"
)

type ClientService struct {
	clients *db.Collection[models.Client]
}

func NewClientService(store *db.Store) *ClientService {
	return &ClientService{clients: store.Clients}
}

func (s *ClientService) GetClients(ctx context.Context) ([]models.Client, error) {
	return s.clients.FindAll(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.clients.FindByID(ctx, oid)
}

// CreateClient stores client under a freshly generated id, ignoring any id
// sent by the caller.
func (s *ClientService) CreateClient(ctx context.Context, client *models.Client) error {
	client.ID = primitive.NewObjectID()
	return s.clients.Insert(ctx, client)
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, client *models.Client) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	client.ID = primitive.NilObjectID
	return s.clients.UpdateByID(ctx, oid, client)
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	return s.clients.DeleteByID(ctx, oid)
}
