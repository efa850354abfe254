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

type EventRepository struct {
	db *mongo.Database
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) collection() *mongo.Collection {
	return r.db.Collection("events")
}

// EventFilter is decoded from query parameters. Zero values mean "no
// constraint"; supplied filters are ANDed.
type EventFilter struct {
	Type     string     `schema:"type"`
	Status   string     `schema:"status"`
	Category string     `schema:"category"`
	Location string     `schema:"location"`
	From     *time.Time `schema:"from"`
	To       *time.Time `schema:"to"`
}

// buildFilterQuery translates an EventFilter into a Mongo filter document.
// Text filters match case-insensitive substrings; date bounds are inclusive
// against startDate.
func buildFilterQuery(f EventFilter) bson.M {
	m := bson.M{}
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.Category != "" {
		m["category"] = bson.M{"$regex": f.Category, "$options": "i"}
	}
	if f.Location != "" {
		m["location"] = bson.M{"$regex": f.Location, "$options": "i"}
	}
	dates := bson.M{}
	if f.From != nil {
		dates["$gte"] = *f.From
	}
	if f.To != nil {
		dates["$lte"] = *f.To
	}
	if len(dates) > 0 {
		m["startDate"] = dates
	}
	return m
}

func (r *EventRepository) InsertOne(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	event.ID = bson.NewObjectID()
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) FindOneByID(ctx context.Context, id bson.ObjectID) (*entity.Event, error) {
	var event entity.Event
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("event %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// FindOnePublishedByTitle resolves an event by exact title match, considering
// published events only.
func (r *EventRepository) FindOnePublishedByTitle(ctx context.Context, title string) (*entity.Event, error) {
	var event entity.Event
	err := r.collection().FindOne(ctx, bson.M{
		"title":  title,
		"status": entity.EventStatusPublished,
	}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("event %q not found", title)
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	return r.find(ctx, bson.M{})
}

func (r *EventRepository) FindManyByStatus(ctx context.Context, status entity.EventStatus) ([]*entity.Event, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *EventRepository) FindManyByFilter(ctx context.Context, filter EventFilter) ([]*entity.Event, error) {
	return r.find(ctx, buildFilterQuery(filter))
}

func (r *EventRepository) find(ctx context.Context, m bson.M) ([]*entity.Event, error) {
	opts := options.Find().SetSort(bson.M{"startDate": 1})
	cur, err := r.collection().Find(ctx, m, opts)
	if err != nil {
		return nil, err
	}

	var events []*entity.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateOne applies a partial update and returns the new document. The type
// discriminator is never part of the update set.
func (r *EventRepository) UpdateOne(ctx context.Context, id bson.ObjectID, set bson.M) (*entity.Event, error) {
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)

	var event entity.Event
	err := result.Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("event %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id bson.ObjectID, status entity.EventStatus) (*entity.Event, error) {
	return r.UpdateOne(ctx, id, bson.M{"status": status})
}

// capacityGuardFilter matches a published event that still has room, so the
// seat check and the $inc that takes it are one atomic update.
func capacityGuardFilter(id bson.ObjectID) bson.M {
	return bson.M{
		"_id":    id,
		"status": entity.EventStatusPublished,
		"$expr":  bson.M{"$lt": bson.A{"$attendedCount", "$capacity"}},
	}
}

// IncrementAttendedIfBelowCapacity atomically bumps attendedCount on a
// published event while it is still below capacity. It reports whether a seat
// was taken; false means the event is full, unpublished, or missing.
func (r *EventRepository) IncrementAttendedIfBelowCapacity(ctx context.Context, id bson.ObjectID) (bool, error) {
	update := bson.M{"$inc": bson.M{"attendedCount": 1}}

	result, err := r.collection().UpdateOne(ctx, capacityGuardFilter(id), update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// DecrementAttended releases a seat taken by IncrementAttendedIfBelowCapacity
// when the follow-up registration insert fails.
func (r *EventRepository) DecrementAttended(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id, "attendedCount": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"attendedCount": -1}},
	)
	return err
}
