package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Measurement struct {
	Length float64 `bson:"length" json:"length"`
	Width  float64 `bson:"width" json:"width"`
}

// Section is a measured area of a job. It is stored both embedded in its job
// and, independently, in the sections collection. TotalPrice and
// ContractorPay are computed by the caller and stored as given.
type Section struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID          primitive.ObjectID `bson:"jobId,omitempty" json:"jobId"`
	SectionName    string             `bson:"sectionName,omitempty" json:"sectionName"`
	ServiceType    *Service           `bson:"serviceType,omitempty" json:"serviceType,omitempty"`
	SeverityLevel  string             `bson:"severityLevel,omitempty" json:"severityLevel,omitempty"`
	SeverityLevels []SeverityLevel    `bson:"severityLevels" json:"severityLevels,omitempty"`
	Measurements   []Measurement      `bson:"measurements" json:"measurements"`
	TotalTime      float64            `bson:"totalTime,omitempty" json:"totalTime,omitempty"`
	TotalPrice     *float64           `bson:"totalprice,omitempty" json:"totalprice,omitempty"`
	ContractorPay  *float64           `bson:"contractorPay,omitempty" json:"contractorPay,omitempty"`
}
