package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Registration records a user attending an event. One registration per
// (event, user) pair, enforced by a unique index. The event's attendedCount
// is bumped by an atomic increment-if-below-capacity update before the
// registration document is inserted, so concurrent registrations can never
// overshoot capacity.
type Registration struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   bson.ObjectID `bson:"eventId" json:"eventId"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
