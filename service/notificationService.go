package service

import (
	"context"
	"fmt"

	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"
)

type NotificationService struct {
	notificationRepository *repository.NotificationRepository
	userRepository         *repository.UserRepository
	mailer                 Mailer
}

func NewNotificationService(notificationRepository *repository.NotificationRepository, userRepository *repository.UserRepository, mailer Mailer) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		mailer:                 mailer,
	}
}

// NotifySubmitted fans a submission notice out to the admin inbox roles.
// Best-effort: errors are logged by the caller and never fail the
// submission.
func (s *NotificationService) NotifySubmitted(ctx context.Context, app *entity.VendorApplication, event *entity.Event) error {
	_, err := s.notificationRepository.InsertOne(ctx, &entity.Notification{
		Type: entity.NotificationVendorApplicationSubmitted,
		Message: fmt.Sprintf("%s applied to participate in %q (%s booth)",
			app.OrganizationName, event.Title, app.BoothSize),
		RecipientRoles: []entity.Role{entity.RoleAdmin, entity.RoleEventOffice},
		ApplicationID:  app.ID,
		EventID:        app.EventID,
		OrganizationID: app.OrganizationID,
	})
	return err
}

// NotifyReviewed tells the vendor the outcome, writing an inbox notification
// and sending mail in parallel. Either side failing is reported but does not
// undo the review.
func (s *NotificationService) NotifyReviewed(ctx context.Context, app *entity.VendorApplication, event *entity.Event) error {
	notificationType := entity.NotificationVendorApplicationApproved
	outcome := "approved"
	if app.Status == entity.ApplicationStatusRejected {
		notificationType = entity.NotificationVendorApplicationRejected
		outcome = "rejected"
	}

	message := fmt.Sprintf("Your application for %q has been %s", event.Title, outcome)
	if app.Notes != "" {
		message += ": " + app.Notes
	}

	group := new(errgroup.Group)

	group.Go(func() error {
		_, err := s.notificationRepository.InsertOne(ctx, &entity.Notification{
			Type:           notificationType,
			Message:        message,
			RecipientID:    app.VendorID,
			RecipientModel: entity.PrincipalVendor,
			ApplicationID:  app.ID,
			EventID:        app.EventID,
			OrganizationID: app.OrganizationID,
		})
		return err
	})

	group.Go(func() error {
		vendor, err := s.userRepository.FindVendorByID(ctx, app.VendorID)
		if err != nil {
			return err
		}
		return s.mailer.Send(vendor.Email, "Vendor application "+outcome, message)
	})

	return group.Wait()
}

func (s *NotificationService) ListForRole(ctx context.Context, role entity.Role, unreadOnly bool) ([]*entity.Notification, error) {
	return s.notificationRepository.FindManyByRole(ctx, role, unreadOnly)
}

func (s *NotificationService) ListForPrincipal(ctx context.Context, principal *entity.Principal, unreadOnly bool) ([]*entity.Notification, error) {
	return s.notificationRepository.FindManyByRecipient(ctx, principal.ID, principal.Model, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, id bson.ObjectID) (*entity.Notification, error) {
	return s.notificationRepository.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, role entity.Role) (int64, error) {
	count, err := s.notificationRepository.MarkAllReadByRole(ctx, role)
	if err != nil {
		return 0, err
	}
	log.Debug().Int64("count", count).Str("role", string(role)).Msg("marked notifications read")
	return count, nil
}
