package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Client owns a list of jobs. The embedded jobs are copies kept on the client
// and are not synchronised with the jobs collection.
type Client struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientName string             `bson:"clientname,omitempty" json:"clientname"`
	Jobs       []Job              `bson:"jobs" json:"jobs"`
}
