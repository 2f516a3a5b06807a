package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type SeverityLevel struct {
	Level          string  `bson:"level" json:"level"`
	Rate           float64 `bson:"rate" json:"rate"`
	ContractorRate float64 `bson:"contractorrate" json:"contractorrate"`
	EstimatedTime  float64 `bson:"estimatedTime" json:"estimatedTime"`
}

// Service is an entry of the service catalog. Jobs and sections embed a
// snapshot of it as their serviceType.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceName string             `bson:"servicename,omitempty" json:"servicename"`
	Severities  []SeverityLevel    `bson:"severities" json:"severities"`
}
