package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Court struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Location  string        `bson:"location,omitempty" json:"location,omitempty"`
	Sport     string        `bson:"sport" json:"sport"`
	OpenHour  int           `bson:"openHour" json:"openHour"`
	CloseHour int           `bson:"closeHour" json:"closeHour"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// Reservation books a court for a whole-hour range on a given date. The
// hours are held by one ReservationSlot document each; losers of a
// concurrent booking race get the duplicate-key error from the slot index,
// not a pre-check.
type Reservation struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CourtID   bson.ObjectID `bson:"courtId" json:"courtId"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	Date      string        `bson:"date" json:"date"` // YYYY-MM-DD
	StartHour int           `bson:"startHour" json:"startHour"`
	EndHour   int           `bson:"endHour" json:"endHour"`

	// ConfirmationCode is handed to the user for front-desk checks.
	ConfirmationCode string    `bson:"confirmationCode" json:"confirmationCode"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// ReservationSlot holds one hour of a reservation. The unique index on
// (courtId, date, hour) makes any two reservations whose ranges intersect
// fight over the keys of their shared hours, whatever their start hours.
type ReservationSlot struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CourtID       bson.ObjectID `bson:"courtId" json:"courtId"`
	Date          string        `bson:"date" json:"date"`
	Hour          int           `bson:"hour" json:"hour"`
	ReservationID bson.ObjectID `bson:"reservationId" json:"reservationId"`
}
