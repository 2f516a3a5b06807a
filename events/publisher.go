package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	JobCreated     = "jobs.created"
	JobUpdated     = "jobs.updated"
	JobDeleted     = "jobs.deleted"
	JobClaimed     = "jobs.claimed"
	JobDateRemoved = "jobs.dates.removed"
)

type JobEvent struct {
	JobID        string    `json:"jobId"`
	ContractorID string    `json:"contractorId,omitempty"`
	DateID       string    `json:"dateId,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func NewJobEvent(jobID string) JobEvent {
	return JobEvent{JobID: jobID, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(subject string, event any) error
	Close()
}

// Connect returns a NATS backed publisher, or a no-op publisher when url is
// empty.
func Connect(url string, logger zerolog.Logger) (Publisher, error) {
	logger = logger.With().Str("component", "events").Logger()
	if url == "" {
		logger.Info().Msg("NATS_URL not set, job events disabled")
		return Noop{}, nil
	}

	nc, err := nats.Connect(url,
		nats.Name("jobs-service"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("disconnected from NATS")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("reconnected to NATS")
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to NATS at %s", url)
	}
	logger.Info().Str("url", nc.ConnectedUrl()).Msg("connected to NATS")
	return &NatsPublisher{conn: nc, logger: logger}, nil
}

type NatsPublisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

func (p *NatsPublisher) Publish(subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrapf(err, "encoding %s event", subject)
	}
	return errors.Wrapf(p.conn.Publish(subject, data), "publishing %s", subject)
}

// Close flushes pending messages before closing the connection.
func (p *NatsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn().Err(err).Msg("draining NATS connection")
	}
}

type Noop struct{}

func (Noop) Publish(string, any) error { return nil }

func (Noop) Close() {}
