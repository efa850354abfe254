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

type NotificationRepository struct {
	db *mongo.Database
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) collection() *mongo.Collection {
	return r.db.Collection("notifications")
}

func (r *NotificationRepository) InsertOne(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	n.ID = bson.NewObjectID()
	n.CreatedAt = time.Now().UTC()

	if _, err := r.collection().InsertOne(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// FindManyByRole returns notifications addressed to the role, newest first.
func (r *NotificationRepository) FindManyByRole(ctx context.Context, role entity.Role, unreadOnly bool) ([]*entity.Notification, error) {
	m := bson.M{"recipientRoles": role}
	if unreadOnly {
		m["isRead"] = false
	}
	return r.find(ctx, m)
}

// FindManyByRecipient returns notifications addressed to a specific
// principal, newest first.
func (r *NotificationRepository) FindManyByRecipient(ctx context.Context, id bson.ObjectID, model entity.PrincipalModel, unreadOnly bool) ([]*entity.Notification, error) {
	m := bson.M{"recipientId": id, "recipientModel": model}
	if unreadOnly {
		m["isRead"] = false
	}
	return r.find(ctx, m)
}

func (r *NotificationRepository) find(ctx context.Context, m bson.M) ([]*entity.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := r.collection().Find(ctx, m, opts)
	if err != nil {
		return nil, err
	}

	var notifications []*entity.Notification
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id bson.ObjectID) (*entity.Notification, error) {
	update := bson.M{
		"$set": bson.M{
			"isRead": true,
			"readAt": time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts)

	var n entity.Notification
	err := result.Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("notification %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkAllReadByRole bulk-flips isRead for every unread notification addressed
// to the role and returns how many were flipped.
func (r *NotificationRepository) MarkAllReadByRole(ctx context.Context, role entity.Role) (int64, error) {
	update := bson.M{
		"$set": bson.M{
			"isRead": true,
			"readAt": time.Now().UTC(),
		},
	}

	result, err := r.collection().UpdateMany(ctx, bson.M{"recipientRoles": role, "isRead": false}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
