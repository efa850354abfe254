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

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) users() *mongo.Collection {
	return r.db.Collection("users")
}

func (r *UserRepository) vendors() *mongo.Collection {
	return r.db.Collection("vendors")
}

func (r *UserRepository) InsertUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	if _, err := r.users().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, err, "email %q is already registered", user.Email)
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) InsertVendor(ctx context.Context, vendor *entity.Vendor) (*entity.Vendor, error) {
	vendor.ID = bson.NewObjectID()
	vendor.CreatedAt = time.Now().UTC()

	if _, err := r.vendors().InsertOne(ctx, vendor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, err, "email %q is already registered", vendor.Email)
		}
		return nil, err
	}
	return vendor, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id bson.ObjectID) (*entity.User, error) {
	var user entity.User
	err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("user %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("user %q not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindVendorByID(ctx context.Context, id bson.ObjectID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.vendors().FindOne(ctx, bson.M{"_id": id}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("vendor %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *UserRepository) FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.vendors().FindOne(ctx, bson.M{"email": email}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("vendor %q not found", email)
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindPrincipal re-derives the acting principal from storage. Tokens carry
// only id and model, so the role here is always current.
func (r *UserRepository) FindPrincipal(ctx context.Context, id bson.ObjectID, model entity.PrincipalModel) (*entity.Principal, error) {
	switch model {
	case entity.PrincipalUser:
		user, err := r.FindUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &entity.Principal{ID: user.ID, Model: model, Role: user.Role, Name: user.Name, Email: user.Email}, nil
	case entity.PrincipalVendor:
		vendor, err := r.FindVendorByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &entity.Principal{ID: vendor.ID, Model: model, Role: entity.RoleVendor, Name: vendor.Name, Email: vendor.Email}, nil
	default:
		return nil, apperr.Authentication("unknown principal model %q", model)
	}
}
