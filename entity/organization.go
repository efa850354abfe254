package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Organization is a vendor company. Names are unique (case-sensitive) at the
// storage level. Organizations are created ad hoc by vendors or admins and
// never deleted in normal flow.
type Organization struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Website       string        `bson:"website,omitempty" json:"website,omitempty"`
	ContactPerson string        `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}
