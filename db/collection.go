package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is a typed handle over one MongoDB collection.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	return c.Find(ctx, bson.D{})
}

// Find never returns a nil slice on success so empty results encode as [].
func (c *Collection[T]) Find(ctx context.Context, filter any) ([]T, error) {
	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, translate(err, "find", c.Name())
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err, "decode", c.Name())
	}
	return docs, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err, "find one", c.Name())
	}
	return &doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	d, err := encodeDocument(doc, false)
	if err != nil {
		return err
	}
	_, err = c.coll.InsertOne(ctx, d)
	return translate(err, "insert", c.Name())
}

func (c *Collection[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]any, 0, len(docs))
	for i := range docs {
		d, err := encodeDocument(docs[i], false)
		if err != nil {
			return err
		}
		batch = append(batch, d)
	}
	_, err := c.coll.InsertMany(ctx, batch)
	return translate(err, "insert many", c.Name())
}

// UpdateByID sets every field of fields on the document, nil arrays included
// as empty ones. fields must not carry an _id. It reports ErrNotFound when no
// document matched.
func (c *Collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields any) error {
	set, err := encodeDocument(fields, true)
	if err != nil {
		return err
	}
	result, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return translate(err, "update", c.Name())
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ModifyByID applies a raw update document. It reports ErrNotFound when
// nothing was modified, which covers both a missing document and an update
// that left the document unchanged.
func (c *Collection[T]) ModifyByID(ctx context.Context, id primitive.ObjectID, update any) error {
	result, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return translate(err, "modify", c.Name())
	}
	if result.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, "delete", c.Name())
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, bson.D{})
	return n, translate(err, "count", c.Name())
}
