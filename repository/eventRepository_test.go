package repository

import (
	"testing"
	"time"

	"github.com/campus-events/backend/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildFilterQueryEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildFilterQuery(EventFilter{}))
}

func TestBuildFilterQueryExactAndSubstringFields(t *testing.T) {
	m := buildFilterQuery(EventFilter{Type: "Booth", Status: "published", Category: "food"})

	assert.Equal(t, "Booth", m["type"])
	assert.Equal(t, "published", m["status"])
	assert.Equal(t, bson.M{"$regex": "food", "$options": "i"}, m["category"])
	assert.NotContains(t, m, "startDate")
}

func TestBuildFilterQueryInclusiveDateRange(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	m := buildFilterQuery(EventFilter{From: &from, To: &to})
	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, m["startDate"])

	m = buildFilterQuery(EventFilter{From: &from})
	assert.Equal(t, bson.M{"$gte": from}, m["startDate"])
}

func TestCapacityGuardFilterShape(t *testing.T) {
	id := bson.NewObjectID()

	filter := capacityGuardFilter(id)

	assert.Equal(t, id, filter["_id"])
	assert.Equal(t, entity.EventStatusPublished, filter["status"])
	assert.Equal(t, bson.M{"$lt": bson.A{"$attendedCount", "$capacity"}}, filter["$expr"])
	assert.Len(t, filter, 3)
}
