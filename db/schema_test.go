package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobs-service/models"
)

// schemaViolations checks value against the parts of $jsonSchema the
// validators use: bsonType, enum, required, properties, additionalProperties
// and items.
func schemaViolations(schema bson.M, value any, path string) []string {
	if bsonType, ok := schema["bsonType"].(string); ok && !hasBSONType(value, bsonType) {
		return []string{fmt.Sprintf("%s: want %s, got %T", path, bsonType, value)}
	}
	if enum, ok := schema["enum"].(bson.A); ok {
		found := false
		for _, allowed := range enum {
			found = found || allowed == value
		}
		if !found {
			return []string{fmt.Sprintf("%s: %v not in %v", path, value, enum)}
		}
	}

	var out []string
	switch v := value.(type) {
	case bson.D:
		props, _ := schema["properties"].(bson.M)
		present := map[string]bool{}
		for _, e := range v {
			present[e.Key] = true
			sub, declared := props[e.Key]
			if !declared {
				if schema["additionalProperties"] == false {
					out = append(out, fmt.Sprintf("%s.%s: not allowed", path, e.Key))
				}
				continue
			}
			out = append(out, schemaViolations(sub.(bson.M), e.Value, path+"."+e.Key)...)
		}
		required, _ := schema["required"].([]string)
		for _, field := range required {
			if !present[field] {
				out = append(out, fmt.Sprintf("%s.%s: required", path, field))
			}
		}
	case bson.A:
		if items, ok := schema["items"].(bson.M); ok {
			for i, item := range v {
				out = append(out, schemaViolations(items, item, fmt.Sprintf("%s[%d]", path, i))...)
			}
		}
	}
	return out
}

func hasBSONType(value any, bsonType string) bool {
	switch value.(type) {
	case bson.D:
		return bsonType == "object"
	case bson.A:
		return bsonType == "array"
	case string:
		return bsonType == "string"
	case int32, int64, float64:
		return bsonType == "number"
	case primitive.ObjectID:
		return bsonType == "objectId"
	case primitive.DateTime:
		return bsonType == "date"
	case bool:
		return bsonType == "bool"
	}
	return false
}

func validate(t *testing.T, validator bson.M, doc any, forSet bool) []string {
	t.Helper()
	d, err := encodeDocument(doc, forSet)
	require.NoError(t, err)
	return schemaViolations(validator["$jsonSchema"].(bson.M), d, "$")
}

func fixtureJob() *models.Job {
	return &models.Job{
		ID:                 primitive.NewObjectID(),
		JobTitle:           "Parking lot restripe",
		Customer:           primitive.NewObjectID(),
		TotalSquareFootage: 1200,
		ServiceType:        &models.Service{ServiceName: "Striping"},
		TotalPrice:         900,
		Sections: []models.Section{{
			ID:           primitive.NewObjectID(),
			SectionName:  "North lot",
			ServiceType:  &models.Service{ServiceName: "Striping"},
			Measurements: []models.Measurement{{Length: 30, Width: 40}},
		}},
		DatesOfService: []models.DateOfService{{
			ID:        primitive.NewObjectID(),
			Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			StartTime: "08:00",
			EndTime:   "12:00",
			TotalTime: "04:00",
		}},
	}
}

func TestEncodedModelsMatchValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator bson.M
		doc       any
	}{
		{"job with bare service snapshot", JobSchema(), fixtureJob()},
		{"client with full embedded job", ClientSchema(), &models.Client{
			ID:         primitive.NewObjectID(),
			ClientName: "Acme",
			Jobs: []models.Job{{
				JobTitle:       "Lot",
				IsRecurring:    true,
				DatesOfService: []models.DateOfService{},
				Contractors:    []primitive.ObjectID{},
			}},
		}},
		{"section without severity levels", SectionSchema(), &models.Section{
			ID:           primitive.NewObjectID(),
			JobID:        primitive.NewObjectID(),
			SectionName:  "South lot",
			Measurements: []models.Measurement{},
		}},
		{"service", ServiceSchema(), &models.Service{
			ID:          primitive.NewObjectID(),
			ServiceName: "Sealcoating",
			Severities:  []models.SeverityLevel{{Level: "Light", Rate: 0.2}},
		}},
		{"user without services", UserSchema(), &models.User{
			ID:       primitive.NewObjectID(),
			Email:    "a@b.com",
			Password: "$2a$04$hash",
			Role:     models.RoleContractor,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, validate(t, tt.validator, tt.doc, false), "insert")
			assert.Empty(t, validate(t, tt.validator, tt.doc, true), "update")
		})
	}
}

func TestEncodedModelsRejectedByValidators(t *testing.T) {
	violations := validate(t, ClientSchema(), &models.Client{ID: primitive.NewObjectID(), ClientName: "Acme"}, false)
	assert.Equal(t, []string{"$.jobs: required"}, violations)

	violations = validate(t, ServiceSchema(), &models.Service{ID: primitive.NewObjectID(), Severities: []models.SeverityLevel{}}, false)
	assert.Equal(t, []string{"$.servicename: required"}, violations)

	violations = validate(t, UserSchema(), &models.User{ID: primitive.NewObjectID(), Email: "a@b.com", Password: "x", Role: "admin"}, false)
	assert.Equal(t, []string{`$.role: admin not in [contractor manager]`}, violations)
}

func TestNullArraysFailValidation(t *testing.T) {
	raw, err := bson.Marshal(fixtureJob())
	require.NoError(t, err)
	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))

	violations := schemaViolations(JobSchema()["$jsonSchema"].(bson.M), d, "$")
	assert.Contains(t, violations, "$.contractors: want array, got <nil>")
}

func TestEncodeDocument(t *testing.T) {
	job := fixtureJob()
	job.ID = primitive.NilObjectID

	inserted, err := encodeDocument(job, false)
	require.NoError(t, err)
	assert.NotContains(t, keys(inserted), "contractors")
	service := lookup(inserted, "serviceType").(bson.D)
	assert.Equal(t, []string{"servicename"}, keys(service))

	set, err := encodeDocument(job, true)
	require.NoError(t, err)
	assert.Equal(t, bson.A{}, lookup(set, "contractors"))
	assert.NotContains(t, keys(set), "_id")

	job.Contractors = []primitive.ObjectID{}
	set, err = encodeDocument(job, true)
	require.NoError(t, err)
	assert.IsType(t, bson.A{}, lookup(set, "contractors"))
	assert.Empty(t, lookup(set, "contractors"))
}

func keys(d bson.D) []string {
	out := make([]string, 0, len(d))
	for _, e := range d {
		out = append(out, e.Key)
	}
	return out
}

func lookup(d bson.D, key string) any {
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}
