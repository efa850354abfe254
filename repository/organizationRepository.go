package repository

import (
	"context"
	"errors"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type OrganizationRepository struct {
	db *mongo.Database
}

func NewOrganizationRepository(db *mongo.Database) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) collection() *mongo.Collection {
	return r.db.Collection("organizations")
}

func (r *OrganizationRepository) InsertOne(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	org.ID = bson.NewObjectID()
	org.CreatedAt = time.Now().UTC()

	if _, err := r.collection().InsertOne(ctx, org); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, err, "organization %q already exists", org.Name)
		}
		return nil, err
	}
	return org, nil
}

func (r *OrganizationRepository) FindOneByID(ctx context.Context, id bson.ObjectID) (*entity.Organization, error) {
	var org entity.Organization
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("organization %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// FindOneByName matches the name exactly (case-sensitive, same as the unique
// index).
func (r *OrganizationRepository) FindOneByName(ctx context.Context, name string) (*entity.Organization, error) {
	var org entity.Organization
	err := r.collection().FindOne(ctx, bson.M{"name": name}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("organization %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) FindAll(ctx context.Context) ([]*entity.Organization, error) {
	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var orgs []*entity.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
