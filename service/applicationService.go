package service

import (
	"context"
	"strings"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ApplicationService struct {
	applicationRepository  *repository.ApplicationRepository
	eventRepository        *repository.EventRepository
	organizationRepository *repository.OrganizationRepository
	notificationService    *NotificationService
}

func NewApplicationService(
	applicationRepository *repository.ApplicationRepository,
	eventRepository *repository.EventRepository,
	organizationRepository *repository.OrganizationRepository,
	notificationService *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepository:  applicationRepository,
		eventRepository:        eventRepository,
		organizationRepository: organizationRepository,
		notificationService:    notificationService,
	}
}

// SubmitApplicationInput carries everything a vendor sends when applying.
// The event is addressed by id, or by exact title when no id is given (title
// lookup only considers published events).
type SubmitApplicationInput struct {
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle"`

	Organization string            `json:"organization"`
	BoothSize    entity.BoothSize  `json:"boothSize"`
	Attendees    []entity.Attendee `json:"attendees"`

	SetupDurationWeeks int    `json:"setupDurationWeeks"`
	SetupLocation      string `json:"setupLocation"`

	Notes string `json:"notes"`
}

// validateSubmission checks everything that does not need storage access.
// Booth events additionally require setup logistics; Bazaar events must not
// be rejected for lacking them.
func validateSubmission(input SubmitApplicationInput, eventType entity.EventType) error {
	if !eventType.AcceptsVendors() {
		return apperr.Validation("event type %s does not accept vendor applications", eventType)
	}
	if strings.TrimSpace(input.Organization) == "" {
		return apperr.Validation("organization is required")
	}
	if !input.BoothSize.Valid() {
		return apperr.Validation("boothSize must be one of %s, %s", entity.BoothSize2x2, entity.BoothSize4x4)
	}
	if len(input.Attendees) > entity.MaxAttendees {
		return apperr.Validation("at most %d attendees are allowed", entity.MaxAttendees)
	}
	for i, attendee := range input.Attendees {
		if strings.TrimSpace(attendee.Name) == "" || strings.TrimSpace(attendee.Email) == "" {
			return apperr.Validation("attendee %d needs both name and email", i+1)
		}
	}

	if eventType == entity.EventTypeBooth {
		if input.SetupDurationWeeks < 1 || input.SetupDurationWeeks > 4 {
			return apperr.Validation("setupDurationWeeks must be between 1 and 4")
		}
		if strings.TrimSpace(input.SetupLocation) == "" {
			return apperr.Validation("setupLocation is required for booth events")
		}
	}

	return nil
}

// Submit creates a pending application for the calling vendor. Duplicate
// (event, organization) pairs are rejected by the storage unique index, not
// by a pre-check, so concurrent submissions cannot slip through. The admin
// notification is advisory: its failure is logged, never surfaced.
func (s *ApplicationService) Submit(ctx context.Context, vendor *entity.Principal, input SubmitApplicationInput) (*entity.VendorApplication, error) {
	event, err := s.resolveEvent(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := validateSubmission(input, event.Type); err != nil {
		return nil, err
	}

	org, err := s.resolveOrCreateOrganization(ctx, strings.TrimSpace(input.Organization))
	if err != nil {
		return nil, err
	}

	app := &entity.VendorApplication{
		EventID:          event.ID,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		VendorID:         vendor.ID,
		BoothSize:        input.BoothSize,
		Attendees:        input.Attendees,
		Status:           entity.ApplicationStatusPending,
		Notes:            input.Notes,
	}
	if event.Type == entity.EventTypeBooth {
		app.SetupDurationWeeks = input.SetupDurationWeeks
		app.SetupLocation = strings.TrimSpace(input.SetupLocation)
	}

	app, err = s.applicationRepository.InsertOne(ctx, app)
	if err != nil {
		return nil, err
	}

	if err := s.notificationService.NotifySubmitted(ctx, app, event); err != nil {
		log.Error().Err(err).Str("applicationId", app.ID.Hex()).Msg("failed to notify admins about submission")
	}

	return app, nil
}

func (s *ApplicationService) resolveEvent(ctx context.Context, input SubmitApplicationInput) (*entity.Event, error) {
	if input.EventID != "" {
		id, err := bson.ObjectIDFromHex(input.EventID)
		if err != nil {
			return nil, apperr.Validation("invalid event id %q", input.EventID)
		}
		return s.eventRepository.FindOneByID(ctx, id)
	}
	if input.EventTitle != "" {
		return s.eventRepository.FindOnePublishedByTitle(ctx, input.EventTitle)
	}
	return nil, apperr.Validation("eventId or eventTitle is required")
}

// resolveOrCreateOrganization looks the organization up by exact name and
// creates it ad hoc when absent. A concurrent creator winning the race is
// fine: the duplicate insert fails and the existing document is reloaded.
func (s *ApplicationService) resolveOrCreateOrganization(ctx context.Context, name string) (*entity.Organization, error) {
	org, err := s.organizationRepository.FindOneByName(ctx, name)
	if err == nil {
		return org, nil
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, err
	}

	org, err = s.organizationRepository.InsertOne(ctx, &entity.Organization{Name: name})
	if apperr.KindOf(err) == apperr.KindConflict {
		return s.organizationRepository.FindOneByName(ctx, name)
	}
	return org, err
}

type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

// Review transitions a pending application to approved or rejected and
// notifies the vendor. Re-reviewing a terminal application is rejected with
// a conflict; the pending state is the only one with outgoing transitions.
func (s *ApplicationService) Review(ctx context.Context, reviewer *entity.Principal, id bson.ObjectID, action ReviewAction, notes string) (*entity.VendorApplication, error) {
	if !reviewer.Role.CanReviewApplications() {
		return nil, apperr.Authorization("role %s may not review applications", reviewer.Role)
	}

	var status entity.ApplicationStatus
	switch action {
	case ReviewActionApprove:
		status = entity.ApplicationStatusApproved
	case ReviewActionReject:
		status = entity.ApplicationStatusRejected
	default:
		return nil, apperr.Validation("action must be %q or %q", ReviewActionApprove, ReviewActionReject)
	}

	app, err := s.applicationRepository.UpdateReview(ctx, id, status, notes, reviewer.ID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepository.FindOneByID(ctx, app.EventID)
	if err == nil {
		if err := s.notificationService.NotifyReviewed(ctx, app, event); err != nil {
			log.Error().Err(err).Str("applicationId", app.ID.Hex()).Msg("failed to notify vendor about review")
		}
	} else {
		log.Error().Err(err).Str("applicationId", app.ID.Hex()).Msg("failed to load event for review notification")
	}

	return app, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, vendor *entity.Principal) ([]*entity.VendorApplication, error) {
	return s.applicationRepository.FindManyByVendorID(ctx, vendor.ID)
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]*entity.VendorApplication, error) {
	return s.applicationRepository.FindAll(ctx)
}

func (s *ApplicationService) ListByEvent(ctx context.Context, eventID bson.ObjectID) ([]*entity.VendorApplication, error) {
	return s.applicationRepository.FindManyByEventID(ctx, eventID)
}
