package service

import (
	"context"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type RegistrationService struct {
	registrationRepository *repository.RegistrationRepository
	eventRepository        *repository.EventRepository
}

func NewRegistrationService(registrationRepository *repository.RegistrationRepository, eventRepository *repository.EventRepository) *RegistrationService {
	return &RegistrationService{
		registrationRepository: registrationRepository,
		eventRepository:        eventRepository,
	}
}

// Register books a seat on a published event. The seat is taken with an
// atomic increment-if-below-capacity update, so concurrent registrations can
// never overshoot capacity; the registration document then records who took
// it, and the seat is released again if that insert fails (duplicate user).
func (s *RegistrationService) Register(ctx context.Context, user *entity.Principal, eventID bson.ObjectID) (*entity.Registration, error) {
	if user.Model != entity.PrincipalUser {
		return nil, apperr.Authorization("only university members can register for events")
	}

	event, err := s.eventRepository.FindOneByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.RegistrationOpen(time.Now()) {
		return nil, apperr.Validation("registration for this event is closed")
	}

	taken, err := s.eventRepository.IncrementAttendedIfBelowCapacity(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !taken {
		return nil, apperr.Conflict("event is at capacity")
	}

	registration, err := s.registrationRepository.InsertOne(ctx, &entity.Registration{
		EventID: eventID,
		UserID:  user.ID,
	})
	if err != nil {
		if releaseErr := s.eventRepository.DecrementAttended(ctx, eventID); releaseErr != nil {
			log.Error().Err(releaseErr).Str("eventId", eventID.Hex()).Msg("failed to release seat after registration insert failed")
		}
		return nil, err
	}

	return registration, nil
}

func (s *RegistrationService) ListMine(ctx context.Context, user *entity.Principal) ([]*entity.Registration, error) {
	return s.registrationRepository.FindManyByUserID(ctx, user.ID)
}
