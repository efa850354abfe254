package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventType string

const (
	EventTypeWorkshop   EventType = "Workshop"
	EventTypeTrip       EventType = "Trip"
	EventTypeBazaar     EventType = "Bazaar"
	EventTypeBooth      EventType = "Booth"
	EventTypeConference EventType = "Conference"
	EventTypeGymSession EventType = "GymSession"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeWorkshop, EventTypeTrip, EventTypeBazaar, EventTypeBooth, EventTypeConference, EventTypeGymSession:
		return true
	}
	return false
}

// AcceptsVendors reports whether events of this type take vendor applications.
func (t EventType) AcceptsVendors() bool {
	return t == EventTypeBazaar || t == EventTypeBooth
}

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Event is the base document shared by every event type. The Type field is a
// discriminator: it is fixed at creation and selects which of the variant
// payloads below applies. Exactly one payload is set for variant types;
// Bazaar carries only the vendor reference list.
type Event struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string        `bson:"title" json:"title"`
	ShortDescription string        `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	LongDescription  string        `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Category         string        `bson:"category,omitempty" json:"category,omitempty"`
	Tags             []string      `bson:"tags,omitempty" json:"tags,omitempty"`

	StartDate            time.Time `bson:"startDate" json:"startDate"`
	EndDate              time.Time `bson:"endDate" json:"endDate"`
	RegistrationDeadline time.Time `bson:"registrationDeadline,omitempty" json:"registrationDeadline,omitempty"`

	Location string      `bson:"location,omitempty" json:"location,omitempty"`
	Capacity int         `bson:"capacity" json:"capacity"`
	Attended int         `bson:"attendedCount" json:"attendedCount"`
	Status   EventStatus `bson:"status" json:"status"`
	Type     EventType   `bson:"type" json:"type"`

	CreatedBy bson.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`

	Workshop   *WorkshopDetails   `bson:"workshop,omitempty" json:"workshop,omitempty"`
	Trip       *TripDetails       `bson:"trip,omitempty" json:"trip,omitempty"`
	Conference *ConferenceDetails `bson:"conference,omitempty" json:"conference,omitempty"`
	GymSession *GymSessionDetails `bson:"gymSession,omitempty" json:"gymSession,omitempty"`

	// VendorIDs is only populated for Bazaar and Booth events.
	VendorIDs []bson.ObjectID `bson:"vendorIds,omitempty" json:"vendorIds,omitempty"`
}

type WorkshopDetails struct {
	FacultyName    string  `bson:"facultyName" json:"facultyName"`
	RequiredBudget float64 `bson:"requiredBudget" json:"requiredBudget"`
	FundingSource  string  `bson:"fundingSource" json:"fundingSource"`
}

type TripDetails struct {
	Destination string  `bson:"destination" json:"destination"`
	Price       float64 `bson:"price" json:"price"`
}

type ConferenceDetails struct {
	Organizer string   `bson:"organizer" json:"organizer"`
	Speakers  []string `bson:"speakers,omitempty" json:"speakers,omitempty"`
}

type GymSessionDetails struct {
	TrainerName string `bson:"trainerName" json:"trainerName"`
	SessionType string `bson:"sessionType,omitempty" json:"sessionType,omitempty"`
}

func (e *Event) IsPublished() bool {
	return e.Status == EventStatusPublished
}

// RegistrationOpen reports whether new registrations are still accepted.
func (e *Event) RegistrationOpen(now time.Time) bool {
	if !e.IsPublished() {
		return false
	}
	if !e.RegistrationDeadline.IsZero() && now.After(e.RegistrationDeadline) {
		return false
	}
	return true
}
