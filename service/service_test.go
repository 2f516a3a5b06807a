package service

import (
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"jobs-service/db"
	"jobs-service/events"
)

type recordingPublisher struct {
	subjects []string
	events   []events.JobEvent
	err      error
}

func (p *recordingPublisher) Publish(subject string, event any) error {
	p.subjects = append(p.subjects, subject)
	if e, ok := event.(events.JobEvent); ok {
		p.events = append(p.events, e)
	}
	return p.err
}

func (p *recordingPublisher) Close() {}

func newStore(mt *mtest.T) *db.Store {
	return db.NewStore(mt.DB, zerolog.Nop())
}

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func updateResponse(matched, modified int32) bson.D {
	return bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: matched}, {Key: "nModified", Value: modified}}
}

func deleteResponse(deleted int32) bson.D {
	return bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: deleted}}
}
