package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the invariants depend on. The unique
// index on applications (eventId, organizationId) is the single concurrency
// guard for the one-application-per-pair rule; everything else would merely
// be slow without its index, not wrong.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	for collection, models := range map[string][]mongo.IndexModel{
		"applications": {
			{Keys: bson.D{{Key: "eventId", Value: 1}, {Key: "organizationId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "vendorId", Value: 1}}},
		},
		"organizations": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"registrations": {
			{Keys: bson.D{{Key: "eventId", Value: 1}, {Key: "userId", Value: 1}}, Options: unique},
		},
		"reservationSlots": {
			{Keys: bson.D{{Key: "courtId", Value: 1}, {Key: "date", Value: 1}, {Key: "hour", Value: 1}}, Options: unique},
		},
		"reservations": {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"vendors": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"notifications": {
			{Keys: bson.D{{Key: "recipientRoles", Value: 1}, {Key: "isRead", Value: 1}}},
		},
		"events": {
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "startDate", Value: 1}}},
		},
	} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
