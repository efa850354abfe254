package repository

import (
	"testing"
	"time"

	"github.com/campus-events/backend/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestReviewTransitionFilterOnlyMatchesPending(t *testing.T) {
	id := bson.NewObjectID()

	filter := reviewTransitionFilter(id)

	assert.Equal(t, id, filter["_id"])
	assert.Equal(t, entity.ApplicationStatusPending, filter["status"])
	assert.Len(t, filter, 2)
}

func TestReviewUpdateTouchesOnlyReviewFields(t *testing.T) {
	reviewerID := bson.NewObjectID()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	update := reviewUpdate(entity.ApplicationStatusApproved, "looks good", reviewerID, now)

	set, ok := update["$set"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, entity.ApplicationStatusApproved, set["status"])
	assert.Equal(t, "looks good", set["notes"])
	assert.Equal(t, reviewerID, set["reviewedBy"])
	assert.Equal(t, now, set["reviewedAt"])
	assert.Equal(t, now, set["updatedAt"])
	assert.Len(t, set, 5)

	for _, field := range []string{"eventId", "organizationId", "vendorId", "attendees", "boothSize"} {
		assert.NotContains(t, set, field)
	}
}
