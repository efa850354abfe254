package service

import (
	"context"
	"strings"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ReservationService struct {
	reservationRepository *repository.ReservationRepository
}

func NewReservationService(reservationRepository *repository.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepository: reservationRepository}
}

type CreateCourtInput struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Sport     string `json:"sport"`
	OpenHour  int    `json:"openHour"`
	CloseHour int    `json:"closeHour"`
}

func (s *ReservationService) CreateCourt(ctx context.Context, input CreateCourtInput) (*entity.Court, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || strings.TrimSpace(input.Sport) == "" {
		return nil, apperr.Validation("court name and sport are required")
	}
	if input.OpenHour < 0 || input.CloseHour > 24 || input.OpenHour >= input.CloseHour {
		return nil, apperr.Validation("invalid opening hours")
	}

	return s.reservationRepository.InsertCourt(ctx, &entity.Court{
		Name:      input.Name,
		Location:  input.Location,
		Sport:     input.Sport,
		OpenHour:  input.OpenHour,
		CloseHour: input.CloseHour,
	})
}

func (s *ReservationService) ListCourts(ctx context.Context) ([]*entity.Court, error) {
	return s.reservationRepository.FindAllCourts(ctx)
}

type ReserveInput struct {
	Date      string `json:"date"` // YYYY-MM-DD
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// Reserve books a court slot for the calling user. Overlaps are checked
// up-front for a friendly error; the per-hour slot documents and their
// unique index settle any race between concurrent bookings, including
// partially overlapping ranges with different start hours.
func (s *ReservationService) Reserve(ctx context.Context, user *entity.Principal, courtID bson.ObjectID, input ReserveInput) (*entity.Reservation, error) {
	court, err := s.reservationRepository.FindCourtByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, apperr.Validation("date must be YYYY-MM-DD")
	}
	if input.StartHour >= input.EndHour {
		return nil, apperr.Validation("startHour must be before endHour")
	}
	if input.StartHour < court.OpenHour || input.EndHour > court.CloseHour {
		return nil, apperr.Validation("court %s is open %02d:00-%02d:00", court.Name, court.OpenHour, court.CloseHour)
	}

	overlapping, err := s.reservationRepository.CountOverlapping(ctx, courtID, input.Date, input.StartHour, input.EndHour)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperr.Conflict("the requested slot overlaps an existing reservation")
	}

	return s.reservationRepository.InsertReservation(ctx, &entity.Reservation{
		CourtID:          courtID,
		UserID:           user.ID,
		Date:             input.Date,
		StartHour:        input.StartHour,
		EndHour:          input.EndHour,
		ConfirmationCode: uuid.NewString(),
	})
}

func (s *ReservationService) ListMine(ctx context.Context, user *entity.Principal) ([]*entity.Reservation, error) {
	return s.reservationRepository.FindManyByUserID(ctx, user.ID)
}
