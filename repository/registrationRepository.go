package repository

import (
	"context"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type RegistrationRepository struct {
	db *mongo.Database
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) collection() *mongo.Collection {
	return r.db.Collection("registrations")
}

func (r *RegistrationRepository) InsertOne(ctx context.Context, reg *entity.Registration) (*entity.Registration, error) {
	reg.ID = bson.NewObjectID()
	reg.CreatedAt = time.Now().UTC()

	if _, err := r.collection().InsertOne(ctx, reg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, err, "already registered for this event")
		}
		return nil, err
	}
	return reg, nil
}

func (r *RegistrationRepository) FindManyByUserID(ctx context.Context, userID bson.ObjectID) ([]*entity.Registration, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := r.collection().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	var registrations []*entity.Registration
	if err := cur.All(ctx, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}
