package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the date-only form accepted for a date of service besides
// RFC 3339 timestamps. It is read as midnight UTC.
const DateLayout = "2006-01-02"

type Job struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	PONumber            *float64             `bson:"ponumber,omitempty" json:"ponumber,omitempty"`
	JobTitle            string               `bson:"jobTitle,omitempty" json:"jobTitle"`
	Customer            primitive.ObjectID   `bson:"customer,omitempty" json:"customer"`
	TotalSquareFootage  float64              `bson:"totalSquareFootage" json:"totalSquareFootage"`
	ServiceType         *Service             `bson:"serviceType,omitempty" json:"serviceType"`
	TotalPrice          float64              `bson:"totalprice" json:"totalprice"`
	Sections            []Section            `bson:"sections" json:"sections"`
	DatesOfService      []DateOfService      `bson:"datesOfService" json:"datesOfService"`
	Contractors         []primitive.ObjectID `bson:"contractors" json:"contractors,omitempty"`
	NumberOfContractors float64              `bson:"numberofcontractors" json:"numberofcontractors"`
	IsRecurring         bool                 `bson:"isRecurring" json:"isRecurring"`
	ContractorTotalPay  float64              `bson:"contractorTotalPay" json:"contractorTotalPay"`
	ContractorRate      float64              `bson:"contractorRate" json:"contractorRate"`
}

// DateOfService is one scheduled visit. Clock fields use HH:mm.
type DateOfService struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
	StartTime string             `bson:"startTime" json:"startTime"`
	EndTime   string             `bson:"endTime" json:"endTime"`
	TotalTime string             `bson:"totalTime" json:"totalTime"`
}

func (d *DateOfService) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	type plain DateOfService
	var raw struct {
		*plain
		Date *string `json:"date"`
	}
	raw.plain = (*plain)(d)

	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	if raw.Date == nil {
		return nil
	}

	date, err := parseServiceDate(*raw.Date)
	if err != nil {
		return err
	}
	d.Date = date
	return nil
}

func parseServiceDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Errorf("date %q is neither RFC 3339 nor YYYY-MM-DD", value)
	}
	return t, nil
}
