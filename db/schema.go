package db

import "go.mongodb.org/mongo-driver/bson"

const (
	ClientsCollection  = "clients"
	JobsCollection     = "jobs"
	SectionsCollection = "sections"
	ServicesCollection = "services"
	UsersCollection    = "users"
)

func typed(bsonType string) bson.M {
	return bson.M{"bsonType": bsonType}
}

func described(bsonType, description string) bson.M {
	return bson.M{"bsonType": bsonType, "description": description}
}

func arrayOf(items bson.M) bson.M {
	return bson.M{"bsonType": "array", "items": items}
}

func object(properties bson.M) bson.M {
	return bson.M{"bsonType": "object", "properties": properties}
}

// root wraps properties into a closed $jsonSchema validator: anything not
// listed is rejected on write.
func root(required []string, properties bson.M) bson.M {
	properties["_id"] = bson.M{}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":             "object",
			"required":             required,
			"additionalProperties": false,
			"properties":           properties,
		},
	}
}

func severityLevelSchema() bson.M {
	return object(bson.M{
		"level":          typed("string"),
		"rate":           typed("number"),
		"contractorrate": typed("number"),
		"estimatedTime":  typed("number"),
	})
}

func measurementSchema() bson.M {
	return object(bson.M{
		"length": typed("number"),
		"width":  typed("number"),
	})
}

func sectionProperties() bson.M {
	return bson.M{
		"jobId":          described("objectId", "'jobId' is required and is an ObjectId"),
		"sectionName":    described("string", "'sectionName' is required and is a string"),
		"serviceType":    typed("object"),
		"severityLevel":  typed("string"),
		"severityLevels": arrayOf(severityLevelSchema()),
		"measurements":   arrayOf(measurementSchema()),
		"totalTime":      typed("number"),
		"totalprice":     typed("number"),
		"contractorPay":  typed("number"),
	}
}

func dateOfServiceSchema() bson.M {
	return object(bson.M{
		"_id":       typed("objectId"),
		"date":      typed("date"),
		"startTime": typed("string"),
		"endTime":   typed("string"),
		"totalTime": typed("string"),
	})
}

func ClientSchema() bson.M {
	return root([]string{"clientname", "jobs"}, bson.M{
		"clientname": described("string", "'clientname' is required and is a string"),
		"jobs": arrayOf(object(bson.M{
			"_id":                 typed("objectId"),
			"ponumber":            typed("number"),
			"jobTitle":            typed("string"),
			"customer":            typed("objectId"),
			"totalSquareFootage":  typed("number"),
			"serviceType":         typed("object"),
			"totalprice":          typed("number"),
			"sections":            typed("array"),
			"datesOfService":      typed("array"),
			"contractors":         typed("array"),
			"numberofcontractors": typed("number"),
			"isRecurring":         typed("bool"),
			"contractorTotalPay":  typed("number"),
			"contractorRate":      typed("number"),
			"startDate":           typed("date"),
			"endDate":             typed("date"),
		})),
	})
}

func JobSchema() bson.M {
	section := sectionProperties()
	section["_id"] = typed("objectId")

	return root(
		[]string{"jobTitle", "customer", "totalSquareFootage", "serviceType", "totalprice", "sections", "datesOfService"},
		bson.M{
			"ponumber":            typed("number"),
			"jobTitle":            described("string", "'jobTitle' is required and is a string"),
			"customer":            described("objectId", "'customer' is required and is an ObjectId"),
			"totalSquareFootage":  described("number", "'totalSquareFootage' is required and is a number"),
			"serviceType":         described("object", "'serviceType' is required and is an object"),
			"totalprice":          described("number", "'totalprice' is required and is a number"),
			"sections":            arrayOf(object(section)),
			"datesOfService":      arrayOf(dateOfServiceSchema()),
			"contractors":         arrayOf(typed("objectId")),
			"numberofcontractors": typed("number"),
			"isRecurring":         typed("bool"),
			"contractorTotalPay":  typed("number"),
			"contractorRate":      typed("number"),
		},
	)
}

func SectionSchema() bson.M {
	return root([]string{"jobId", "sectionName", "measurements"}, sectionProperties())
}

func ServiceSchema() bson.M {
	return root([]string{"servicename", "severities"}, bson.M{
		"servicename": described("string", "'servicename' is required and is a string"),
		"severities":  arrayOf(severityLevelSchema()),
	})
}

func UserSchema() bson.M {
	return root([]string{"email", "password", "role"}, bson.M{
		"email":    described("string", "'email' is required and is a string"),
		"password": described("string", "'password' is required and is a string"),
		"role": bson.M{
			"enum":        bson.A{"contractor", "manager"},
			"description": "'role' is required and is either 'contractor' or 'manager'",
		},
		"services": bson.M{
			"bsonType":    "array",
			"items":       typed("string"),
			"description": "'services' is an optional array of service IDs",
		},
	})
}

type CollectionSchema struct {
	Collection string
	Validator  bson.M
}

// Schemas lists the validator of every collection in install order.
func Schemas() []CollectionSchema {
	return []CollectionSchema{
		{ClientsCollection, ClientSchema()},
		{JobsCollection, JobSchema()},
		{SectionsCollection, SectionSchema()},
		{ServicesCollection, ServiceSchema()},
		{UsersCollection, UserSchema()},
	}
}
