package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobs-service/db"
	"jobs-service/models"
)

// SectionService manages the standalone section documents. Sections embedded
// in a job are written through JobService and are not kept in sync.
type SectionService struct {
	sections *db.Collection[models.Section]
}

func NewSectionService(store *db.Store) *SectionService {
	return &SectionService{sections: store.Sections}
}

func (s *SectionService) GetSections(ctx context.Context) ([]models.Section, error) {
	return s.sections.FindAll(ctx)
}

func (s *SectionService) GetSection(ctx context.Context, id string) (*models.Section, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.sections.FindByID(ctx, oid)
}

func (s *SectionService) CreateSection(ctx context.Context, section *models.Section) error {
	section.ID = primitive.NewObjectID()
	return s.sections.Insert(ctx, section)
}

func (s *SectionService) UpdateSection(ctx context.Context, id string, section *models.Section) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	section.ID = primitive.NilObjectID
	return s.sections.UpdateByID(ctx, oid, section)
}

func (s *SectionService) DeleteSection(ctx context.Context, id string) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	return s.sections.DeleteByID(ctx, oid)
}
