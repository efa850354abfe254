package repository

import (
	"context"
	"errors"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ApplicationRepository struct {
	db *mongo.Database
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) collection() *mongo.Collection {
	return r.db.Collection("applications")
}

// InsertOne persists a new application. The unique index on
// (eventId, organizationId) is the single source of truth for the
// one-application-per-pair invariant: there is no pre-check, concurrent
// submitters race to insert and the loser gets the conflict.
func (r *ApplicationRepository) InsertOne(ctx context.Context, app *entity.VendorApplication) (*entity.VendorApplication, error) {
	app.ID = bson.NewObjectID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, err,
				"an application for this event and organization already exists")
		}
		return nil, err
	}
	return app, nil
}

func (r *ApplicationRepository) FindOneByID(ctx context.Context, id bson.ObjectID) (*entity.VendorApplication, error) {
	var app entity.VendorApplication
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("application %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FindManyByVendorID returns a vendor's applications, newest first, with the
// referenced event and organization joined in.
func (r *ApplicationRepository) FindManyByVendorID(ctx context.Context, vendorID bson.ObjectID) ([]*entity.VendorApplication, error) {
	return r.aggregate(ctx, bson.M{"vendorId": vendorID})
}

func (r *ApplicationRepository) FindManyByEventID(ctx context.Context, eventID bson.ObjectID) ([]*entity.VendorApplication, error) {
	return r.aggregate(ctx, bson.M{"eventId": eventID})
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]*entity.VendorApplication, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *ApplicationRepository) aggregate(ctx context.Context, match bson.M) ([]*entity.VendorApplication, error) {
	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{
			"$lookup": bson.M{
				"from":         "events",
				"localField":   "eventId",
				"foreignField": "_id",
				"as":           "event",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$event",
				"preserveNullAndEmptyArrays": true,
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         "organizations",
				"localField":   "organizationId",
				"foreignField": "_id",
				"as":           "organization",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$organization",
				"preserveNullAndEmptyArrays": true,
			},
		},
		bson.M{"$sort": bson.M{"createdAt": -1}},
	}

	cur, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var apps []*entity.VendorApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// reviewTransitionFilter only matches a pending application, so the
// pending -> terminal transition happens at most once even under concurrent
// reviews.
func reviewTransitionFilter(id bson.ObjectID) bson.M {
	return bson.M{"_id": id, "status": entity.ApplicationStatusPending}
}

// reviewUpdate sets the review fields and nothing else; everything written
// at submission time stays as inserted.
func reviewUpdate(status entity.ApplicationStatus, notes string, reviewerID bson.ObjectID, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"status":     status,
			"notes":      notes,
			"reviewedBy": reviewerID,
			"reviewedAt": now,
			"updatedAt":  now,
		},
	}
}

// UpdateReview stamps the review outcome on an application. A terminal
// application yields a conflict, a missing one a not-found.
func (r *ApplicationRepository) UpdateReview(ctx context.Context, id bson.ObjectID, status entity.ApplicationStatus, notes string, reviewerID bson.ObjectID) (*entity.VendorApplication, error) {
	filter := reviewTransitionFilter(id)
	update := reviewUpdate(status, notes, reviewerID, time.Now().UTC())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection().FindOneAndUpdate(ctx, filter, update, opts)

	var app entity.VendorApplication
	err := result.Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		existing, findErr := r.FindOneByID(ctx, id)
		if findErr != nil {
			return nil, findErr
		}
		return nil, apperr.Conflict("application is already %s", existing.Status)
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}
