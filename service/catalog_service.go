package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobs-service/db"
	"jobs-service/models"
)

// CatalogService manages the services offered to clients.
type CatalogService struct {
	services *db.Collection[models.Service]
}

func NewCatalogService(store *db.Store) *CatalogService {
	return &CatalogService{services: store.Services}
}

func (s *CatalogService) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.services.FindAll(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.services.FindByID(ctx, oid)
}

func (s *CatalogService) CreateService(ctx context.Context, service *models.Service) error {
	service.ID = primitive.NewObjectID()
	return s.services.Insert(ctx, service)
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, service *models.Service) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	service.ID = primitive.NilObjectID
	return s.services.UpdateByID(ctx, oid, service)
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	return s.services.DeleteByID(ctx, oid)
}

// SeedServices inserts services when the catalog is empty and reports how
// many were written.
func (s *CatalogService) SeedServices(ctx context.Context, services []models.Service) (int, error) {
	count, err := s.services.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}
	for i := range services {
		services[i].ID = primitive.NewObjectID()
	}
	if err := s.services.InsertMany(ctx, services); err != nil {
		return 0, err
	}
	return len(services), nil
}
