package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"jobs-service/models"
)

// Store owns the database handle and the typed collections of every
// resource. A single Store is shared by all requests.
type Store struct {
	cli    *mongo.Client
	db     *mongo.Database
	logger zerolog.Logger

	Clients  *Collection[models.Client]
	Jobs     *Collection[models.Job]
	Sections *Collection[models.Section]
	Services *Collection[models.Service]
	Users    *Collection[models.User]
}

// componentLogger tags logger as the db component. Callers pass an untagged
// logger; every entry point of the package tags it exactly once.
func componentLogger(logger zerolog.Logger) zerolog.Logger {
	return logger.With().Str("component", "db").Logger()
}

// NewStore binds the collection handles to an existing database.
func NewStore(database *mongo.Database, logger zerolog.Logger) *Store {
	return &Store{
		cli:      database.Client(),
		db:       database,
		logger:   componentLogger(logger),
		Clients:  NewCollection[models.Client](database.Collection(ClientsCollection)),
		Jobs:     NewCollection[models.Job](database.Collection(JobsCollection)),
		Sections: NewCollection[models.Section](database.Collection(SectionsCollection)),
		Services: NewCollection[models.Service](database.Collection(ServicesCollection)),
		Users:    NewCollection[models.User](database.Collection(UsersCollection)),
	}
}

// Connect opens the client, checks the primary is reachable and installs the
// collection validators before any handle is handed out.
func Connect(ctx context.Context, uri, database string, logger zerolog.Logger) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to MongoDB")
	}
	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, errors.Wrap(err, "pinging MongoDB")
	}
	dbLogger := componentLogger(logger)
	dbLogger.Info().Str("database", database).Msg("connected to MongoDB")

	mdb := cli.Database(database)
	if err := ApplySchemas(ctx, mdb, logger); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, err
	}
	return NewStore(mdb, logger), nil
}

// ApplySchemas installs the validator of each collection, updating it with
// collMod and creating the collection when it does not exist yet.
func ApplySchemas(ctx context.Context, database *mongo.Database, logger zerolog.Logger) error {
	logger = componentLogger(logger)
	for _, schema := range Schemas() {
		if err := applySchema(ctx, database, schema, logger); err != nil {
			return err
		}
	}
	return nil
}

func applySchema(ctx context.Context, database *mongo.Database, schema CollectionSchema, logger zerolog.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: schema.Collection},
		{Key: "validator", Value: schema.Validator},
	}
	err := database.RunCommand(ctx, cmd).Err()
	switch {
	case err == nil:
		logger.Debug().Str("collection", schema.Collection).Msg("updated validator")
		return nil
	case IsNamespaceNotFound(err):
		opts := options.CreateCollection().SetValidator(schema.Validator)
		if err := database.CreateCollection(ctx, schema.Collection, opts); err != nil {
			return errors.Wrapf(err, "creating collection %s", schema.Collection)
		}
		logger.Info().Str("collection", schema.Collection).Msg("created collection with validator")
		return nil
	default:
		logger.Warn().Err(err).Str("collection", schema.Collection).Msg("could not update validator")
		return nil
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.cli.Ping(ctx, readpref.Primary())
}

func (s *Store) Disconnect(ctx context.Context) error {
	s.logger.Info().Msg("disconnecting from MongoDB")
	return s.cli.Disconnect(ctx)
}
