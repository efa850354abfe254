package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventService struct {
	eventRepository *repository.EventRepository
}

func NewEventService(eventRepository *repository.EventRepository) *EventService {
	return &EventService{eventRepository: eventRepository}
}

// CreateEventInput is the boundary shape for event creation. Base fields are
// validated against the Event schema; the variant payload is selected and
// validated by Type.
type CreateEventInput struct {
	Title                string           `json:"title"`
	ShortDescription     string           `json:"shortDescription"`
	LongDescription      string           `json:"longDescription"`
	Category             string           `json:"category"`
	Tags                 []string         `json:"tags"`
	StartDate            time.Time        `json:"startDate"`
	EndDate              time.Time        `json:"endDate"`
	RegistrationDeadline time.Time        `json:"registrationDeadline"`
	Location             string           `json:"location"`
	Capacity             int              `json:"capacity"`
	Type                 entity.EventType `json:"type"`

	Workshop   *entity.WorkshopDetails   `json:"workshop"`
	Trip       *entity.TripDetails       `json:"trip"`
	Conference *entity.ConferenceDetails `json:"conference"`
	GymSession *entity.GymSessionDetails `json:"gymSession"`
}

// validateEventInput enforces the closed tagged union: the discriminator must
// be a known type, the base fields must be present, and the required fields
// of the selected variant must be set. Payloads for other variants are
// rejected rather than silently dropped.
func validateEventInput(input CreateEventInput) error {
	if !input.Type.Valid() {
		return apperr.Validation("unknown event type %q", input.Type)
	}
	if strings.TrimSpace(input.Title) == "" {
		return apperr.Validation("title is required")
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return apperr.Validation("startDate and endDate are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return apperr.Validation("endDate must not be before startDate")
	}
	if input.Capacity < 0 {
		return apperr.Validation("capacity must not be negative")
	}

	if err := validateVariantPayloads(input); err != nil {
		return err
	}

	switch input.Type {
	case entity.EventTypeWorkshop:
		w := input.Workshop
		if w == nil || strings.TrimSpace(w.FacultyName) == "" || w.RequiredBudget <= 0 || strings.TrimSpace(w.FundingSource) == "" {
			return apperr.Validation("workshop events require facultyName, requiredBudget and fundingSource")
		}
	case entity.EventTypeTrip:
		t := input.Trip
		if t == nil || strings.TrimSpace(t.Destination) == "" || t.Price < 0 {
			return apperr.Validation("trip events require destination and a non-negative price")
		}
	case entity.EventTypeConference:
		c := input.Conference
		if c == nil || strings.TrimSpace(c.Organizer) == "" {
			return apperr.Validation("conference events require an organizer")
		}
	case entity.EventTypeGymSession:
		g := input.GymSession
		if g == nil || strings.TrimSpace(g.TrainerName) == "" {
			return apperr.Validation("gym sessions require a trainerName")
		}
	}
	// Bazaar and Booth carry no extra required fields.
	return nil
}

func validateVariantPayloads(input CreateEventInput) error {
	if input.Workshop != nil && input.Type != entity.EventTypeWorkshop {
		return apperr.Validation("workshop payload is only valid for Workshop events")
	}
	if input.Trip != nil && input.Type != entity.EventTypeTrip {
		return apperr.Validation("trip payload is only valid for Trip events")
	}
	if input.Conference != nil && input.Type != entity.EventTypeConference {
		return apperr.Validation("conference payload is only valid for Conference events")
	}
	if input.GymSession != nil && input.Type != entity.EventTypeGymSession {
		return apperr.Validation("gymSession payload is only valid for GymSession events")
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, creator *entity.Principal, input CreateEventInput) (*entity.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:                strings.TrimSpace(input.Title),
		ShortDescription:     input.ShortDescription,
		LongDescription:      input.LongDescription,
		Category:             input.Category,
		Tags:                 input.Tags,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		RegistrationDeadline: input.RegistrationDeadline,
		Location:             input.Location,
		Capacity:             input.Capacity,
		Status:               entity.EventStatusDraft,
		Type:                 input.Type,
		CreatedBy:            creator.ID,
		Workshop:             input.Workshop,
		Trip:                 input.Trip,
		Conference:           input.Conference,
		GymSession:           input.GymSession,
	}

	return s.eventRepository.InsertOne(ctx, event)
}

// UpdateEventInput holds the mutable base fields. The type discriminator is
// immutable after creation and is not accepted here.
type UpdateEventInput struct {
	Title                *string    `json:"title"`
	ShortDescription     *string    `json:"shortDescription"`
	LongDescription      *string    `json:"longDescription"`
	Category             *string    `json:"category"`
	Tags                 []string   `json:"tags"`
	StartDate            *time.Time `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	Location             *string    `json:"location"`
	Capacity             *int       `json:"capacity"`
}

func (s *EventService) Update(ctx context.Context, id bson.ObjectID, input UpdateEventInput) (*entity.Event, error) {
	current, err := s.eventRepository.FindOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set, err := buildEventUpdate(current, input)
	if err != nil {
		return nil, err
	}

	return s.eventRepository.UpdateOne(ctx, id, set)
}

// buildEventUpdate turns a partial update into an update document, checking
// cross-field rules against the stored event so that changing one end of the
// date range cannot invert it.
func buildEventUpdate(current *entity.Event, input UpdateEventInput) (bson.M, error) {
	set := bson.M{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, apperr.Validation("title must not be empty")
		}
		set["title"] = strings.TrimSpace(*input.Title)
	}
	if input.ShortDescription != nil {
		set["shortDescription"] = *input.ShortDescription
	}
	if input.LongDescription != nil {
		set["longDescription"] = *input.LongDescription
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	startDate, endDate := current.StartDate, current.EndDate
	if input.StartDate != nil {
		startDate = *input.StartDate
		set["startDate"] = startDate
	}
	if input.EndDate != nil {
		endDate = *input.EndDate
		set["endDate"] = endDate
	}
	if endDate.Before(startDate) {
		return nil, apperr.Validation("endDate must not be before startDate")
	}
	if input.RegistrationDeadline != nil {
		set["registrationDeadline"] = *input.RegistrationDeadline
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, apperr.Validation("capacity must not be negative")
		}
		set["capacity"] = *input.Capacity
	}
	if len(set) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	return set, nil
}

// Publish transitions the event to published unconditionally; the only
// failure mode is an unresolvable id.
func (s *EventService) Publish(ctx context.Context, id bson.ObjectID) (*entity.Event, error) {
	return s.eventRepository.UpdateStatus(ctx, id, entity.EventStatusPublished)
}

func (s *EventService) FindOneByID(ctx context.Context, id bson.ObjectID) (*entity.Event, error) {
	return s.eventRepository.FindOneByID(ctx, id)
}

func (s *EventService) ListPublished(ctx context.Context) ([]*entity.Event, error) {
	return s.eventRepository.FindManyByStatus(ctx, entity.EventStatusPublished)
}

func (s *EventService) ListAll(ctx context.Context) ([]*entity.Event, error) {
	return s.eventRepository.FindAll(ctx)
}

func (s *EventService) Filter(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	return s.eventRepository.FindManyByFilter(ctx, filter)
}

// Search matches published events by case-insensitive substring over title
// and category, ranked by title similarity to the query so near-misses still
// surface.
func (s *EventService) Search(ctx context.Context, query string) ([]*entity.Event, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}

	events, err := s.eventRepository.FindManyByStatus(ctx, entity.EventStatusPublished)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(query)
	var matched []*entity.Event
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.Title), lowered) ||
			strings.Contains(strings.ToLower(event.Category), lowered) {
			matched = append(matched, event)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return titleSimilarity(query, matched[i].Title) > titleSimilarity(query, matched[j].Title)
	})

	return matched, nil
}

func titleSimilarity(query, title string) float32 {
	similarity, err := edlib.StringsSimilarity(strings.ToLower(query), strings.ToLower(title), edlib.Levenshtein)
	if err != nil {
		log.Debug().Err(err).Msg("similarity computation failed")
		return 0
	}
	return similarity
}
