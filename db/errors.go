package db

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	codeNamespaceNotFound         = 26
	codeDocumentValidationFailure = 121
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrInvalidID  = errors.New("invalid identifier")
	ErrValidation = errors.New("document failed validation")
)

// ValidationError carries the server message of a write rejected by a
// collection's schema validator.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParseID converts a hex string into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(ErrInvalidID, "%q", id)
	}
	return oid, nil
}

func IsNamespaceNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == codeNamespaceNotFound || cmdErr.Name == "NamespaceNotFound"
	}
	return false
}

func IsDocumentValidation(err error) bool {
	var serverErr mongo.ServerError
	return errors.As(err, &serverErr) && serverErr.HasErrorCode(codeDocumentValidationFailure)
}

// translate maps driver errors onto the package sentinels and adds context.
func translate(err error, op, collection string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case IsDocumentValidation(err):
		return &ValidationError{Message: errors.Wrapf(err, "%s %s", op, collection).Error()}
	default:
		return errors.Wrapf(err, "%s %s", op, collection)
	}
}
