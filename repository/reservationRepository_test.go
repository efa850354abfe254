package repository

import (
	"testing"

	"github.com/campus-events/backend/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestExpandSlotsOneDocPerHour(t *testing.T) {
	res := &entity.Reservation{
		ID:        bson.NewObjectID(),
		CourtID:   bson.NewObjectID(),
		Date:      "2026-09-12",
		StartHour: 10,
		EndHour:   13,
	}

	slots := expandSlots(res)

	assert.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, res.CourtID, slot.CourtID)
		assert.Equal(t, res.Date, slot.Date)
		assert.Equal(t, 10+i, slot.Hour)
		assert.Equal(t, res.ID, slot.ReservationID)
	}
}

func TestExpandSlotsOverlappingRangesCollideOnSharedHour(t *testing.T) {
	courtID := bson.NewObjectID()

	first := expandSlots(&entity.Reservation{
		ID: bson.NewObjectID(), CourtID: courtID, Date: "2026-09-12", StartHour: 10, EndHour: 12,
	})
	second := expandSlots(&entity.Reservation{
		ID: bson.NewObjectID(), CourtID: courtID, Date: "2026-09-12", StartHour: 11, EndHour: 13,
	})

	type slotKey struct {
		courtID bson.ObjectID
		date    string
		hour    int
	}
	keys := map[slotKey]bool{}
	for _, slot := range first {
		keys[slotKey{slot.CourtID, slot.Date, slot.Hour}] = true
	}

	shared := 0
	for _, slot := range second {
		if keys[slotKey{slot.CourtID, slot.Date, slot.Hour}] {
			shared++
		}
	}
	assert.Equal(t, 1, shared, "ranges 10-12 and 11-13 must fight over hour 11")
}

func TestExpandSlotsDifferentDatesNeverCollide(t *testing.T) {
	courtID := bson.NewObjectID()

	saturday := expandSlots(&entity.Reservation{
		ID: bson.NewObjectID(), CourtID: courtID, Date: "2026-09-12", StartHour: 10, EndHour: 12,
	})
	sunday := expandSlots(&entity.Reservation{
		ID: bson.NewObjectID(), CourtID: courtID, Date: "2026-09-13", StartHour: 10, EndHour: 12,
	})

	for _, a := range saturday {
		for _, b := range sunday {
			assert.False(t, a.CourtID == b.CourtID && a.Date == b.Date && a.Hour == b.Hour)
		}
	}
}
