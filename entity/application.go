package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Terminal reports whether no further review transition is defined.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

type BoothSize string

const (
	BoothSize2x2 BoothSize = "2x2"
	BoothSize4x4 BoothSize = "4x4"
)

func (b BoothSize) Valid() bool {
	return b == BoothSize2x2 || b == BoothSize4x4
}

const MaxAttendees = 5

// Attendee is embedded in an application and has no independent lifecycle.
type Attendee struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// VendorApplication is a request by a vendor, on behalf of an organization,
// to participate in a Bazaar or Booth event. At most one application may
// exist per (event, organization) pair; the unique index on the collection
// is the single source of truth for that invariant.
//
// EventID, OrganizationID, VendorID, Attendees and BoothSize are immutable
// after creation. Review mutates only Status, Notes, ReviewedBy, ReviewedAt.
type VendorApplication struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID          bson.ObjectID `bson:"eventId" json:"eventId"`
	OrganizationID   bson.ObjectID `bson:"organizationId" json:"organizationId"`
	OrganizationName string        `bson:"organizationName" json:"organizationName"`
	VendorID         bson.ObjectID `bson:"vendorId" json:"vendorId"`

	BoothSize BoothSize  `bson:"boothSize" json:"boothSize"`
	Attendees []Attendee `bson:"attendees,omitempty" json:"attendees,omitempty"`

	// Booth events only.
	SetupDurationWeeks int    `bson:"setupDurationWeeks,omitempty" json:"setupDurationWeeks,omitempty"`
	SetupLocation      string `bson:"setupLocation,omitempty" json:"setupLocation,omitempty"`

	Status     ApplicationStatus `bson:"status" json:"status"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	ReviewedBy bson.ObjectID     `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time        `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Populated by aggregation lookups, never stored.
	Event        *Event        `bson:"event,omitempty" json:"event,omitempty"`
	Organization *Organization `bson:"organization,omitempty" json:"organization,omitempty"`
}
