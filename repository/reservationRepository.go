package repository

import (
	"context"
	"errors"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ReservationRepository struct {
	db *mongo.Database
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) courts() *mongo.Collection {
	return r.db.Collection("courts")
}

func (r *ReservationRepository) reservations() *mongo.Collection {
	return r.db.Collection("reservations")
}

func (r *ReservationRepository) slots() *mongo.Collection {
	return r.db.Collection("reservationSlots")
}

func (r *ReservationRepository) InsertCourt(ctx context.Context, court *entity.Court) (*entity.Court, error) {
	court.ID = bson.NewObjectID()
	court.CreatedAt = time.Now().UTC()

	if _, err := r.courts().InsertOne(ctx, court); err != nil {
		return nil, err
	}
	return court, nil
}

func (r *ReservationRepository) FindCourtByID(ctx context.Context, id bson.ObjectID) (*entity.Court, error) {
	var court entity.Court
	err := r.courts().FindOne(ctx, bson.M{"_id": id}).Decode(&court)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("court %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *ReservationRepository) FindAllCourts(ctx context.Context) ([]*entity.Court, error) {
	cur, err := r.courts().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	var courts []*entity.Court
	if err := cur.All(ctx, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

// expandSlots returns one slot document per hour of the reservation's
// [startHour, endHour) range.
func expandSlots(res *entity.Reservation) []entity.ReservationSlot {
	slots := make([]entity.ReservationSlot, 0, res.EndHour-res.StartHour)
	for hour := res.StartHour; hour < res.EndHour; hour++ {
		slots = append(slots, entity.ReservationSlot{
			CourtID:       res.CourtID,
			Date:          res.Date,
			Hour:          hour,
			ReservationID: res.ID,
		})
	}
	return slots
}

// InsertReservation books every hour of the range by inserting one slot
// document per hour before the reservation itself. The unique slot index is
// what settles concurrent bookings: two overlapping ranges share at least one
// hour key, so at most one of them gets all its slots in. On conflict the
// hours that did land are released again and the booking fails with a
// conflict.
func (r *ReservationRepository) InsertReservation(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	res.ID = bson.NewObjectID()
	res.CreatedAt = time.Now().UTC()

	docs := make([]any, 0, res.EndHour-res.StartHour)
	for _, slot := range expandSlots(res) {
		docs = append(docs, slot)
	}

	if _, err := r.slots().InsertMany(ctx, docs); err != nil {
		if _, cleanupErr := r.slots().DeleteMany(ctx, bson.M{"reservationId": res.ID}); cleanupErr != nil {
			log.Error().Err(cleanupErr).Str("reservationId", res.ID.Hex()).Msg("failed to release slots after booking conflict")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, err, "slot is already reserved")
		}
		return nil, err
	}

	if _, err := r.reservations().InsertOne(ctx, res); err != nil {
		if _, cleanupErr := r.slots().DeleteMany(ctx, bson.M{"reservationId": res.ID}); cleanupErr != nil {
			log.Error().Err(cleanupErr).Str("reservationId", res.ID.Hex()).Msg("failed to release slots after reservation insert failed")
		}
		return nil, err
	}
	return res, nil
}

func (r *ReservationRepository) FindManyByUserID(ctx context.Context, userID bson.ObjectID) ([]*entity.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "startHour", Value: -1}})
	cur, err := r.reservations().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	var reservations []*entity.Reservation
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CountOverlapping counts booked slot hours on the court and date inside
// [startHour, endHour). It exists for a friendly error before inserting; the
// unique slot index remains the authority.
func (r *ReservationRepository) CountOverlapping(ctx context.Context, courtID bson.ObjectID, date string, startHour, endHour int) (int64, error) {
	return r.slots().CountDocuments(ctx, bson.M{
		"courtId": courtID,
		"date":    date,
		"hour":    bson.M{"$gte": startHour, "$lt": endHour},
	})
}
