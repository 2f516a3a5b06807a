package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobs-service/db"
	"jobs-service/events"
	"jobs-service/models"
)

type JobService struct {
	jobs      *db.Collection[models.Job]
	publisher events.Publisher
	logger    zerolog.Logger
}

func NewJobService(store *db.Store, publisher events.Publisher, logger zerolog.Logger) *JobService {
	return &JobService{
		jobs:      store.Jobs,
		publisher: publisher,
		logger:    logger.With().Str("component", "jobs").Logger(),
	}
}

func (s *JobService) GetJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobs.FindAll(ctx)
}

func (s *JobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.jobs.FindByID(ctx, oid)
}

// CreateJob assigns fresh ids to the job and to every embedded section and
// date of service before inserting it.
func (s *JobService) CreateJob(ctx context.Context, job *models.Job) error {
	job.ID = primitive.NewObjectID()
	for i := range job.DatesOfService {
		job.DatesOfService[i].ID = primitive.NewObjectID()
	}
	for i := range job.Sections {
		job.Sections[i].ID = primitive.NewObjectID()
	}
	if err := s.jobs.Insert(ctx, job); err != nil {
		return err
	}
	s.publish(events.JobCreated, events.NewJobEvent(job.ID.Hex()))
	return nil
}

// UpdateJob replaces the job's fields. Embedded entries keep the id they
// were sent with and get a new one when they have none.
func (s *JobService) UpdateJob(ctx context.Context, id string, job *models.Job) (*models.Job, error) {
	oid, err := db.ParseID(id)
	if err != nil {
		return nil, err
	}
	for i := range job.DatesOfService {
		if job.DatesOfService[i].ID.IsZero() {
			job.DatesOfService[i].ID = primitive.NewObjectID()
		}
	}
	for i := range job.Sections {
		if job.Sections[i].ID.IsZero() {
			job.Sections[i].ID = primitive.NewObjectID()
		}
	}

	job.ID = primitive.NilObjectID
	if err := s.jobs.UpdateByID(ctx, oid, job); err != nil {
		return nil, err
	}
	job.ID = oid
	s.publish(events.JobUpdated, events.NewJobEvent(id))
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	oid, err := db.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.jobs.DeleteByID(ctx, oid); err != nil {
		return err
	}
	s.publish(events.JobDeleted, events.NewJobEvent(id))
	return nil
}

// RemoveDateOfService pulls one entry out of the job's datesOfService. It
// reports db.ErrNotFound when the job or the entry does not exist.
func (s *JobService) RemoveDateOfService(ctx context.Context, jobID, dateID string) error {
	jobOID, err := db.ParseID(jobID)
	if err != nil {
		return err
	}
	dateOID, err := db.ParseID(dateID)
	if err != nil {
		return err
	}

	update := bson.M{"$pull": bson.M{"datesOfService": bson.M{"_id": dateOID}}}
	if err := s.jobs.ModifyByID(ctx, jobOID, update); err != nil {
		return err
	}

	event := events.NewJobEvent(jobID)
	event.DateID = dateID
	s.publish(events.JobDateRemoved, event)
	return nil
}

// ClaimJob adds contractorID to the job's contractors set and returns the
// updated job. A job that already lists the contractor is not modified and
// reported as db.ErrNotFound, same as a missing job.
func (s *JobService) ClaimJob(ctx context.Context, jobID, contractorID string) (*models.Job, error) {
	jobOID, err := db.ParseID(jobID)
	if err != nil {
		return nil, err
	}
	contractorOID, err := db.ParseID(contractorID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$addToSet": bson.M{"contractors": contractorOID}}
	if err := s.jobs.ModifyByID(ctx, jobOID, update); err != nil {
		return nil, err
	}

	event := events.NewJobEvent(jobID)
	event.ContractorID = contractorID
	s.publish(events.JobClaimed, event)

	return s.jobs.FindByID(ctx, jobOID)
}

func (s *JobService) publish(subject string, event events.JobEvent) {
	if err := s.publisher.Publish(subject, event); err != nil {
		s.logger.Warn().Err(err).Str("subject", subject).Str("job_id", event.JobID).Msg("could not publish job event")
	}
}
