package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotificationType string

const (
	NotificationVendorApplicationSubmitted NotificationType = "VendorApplicationSubmitted"
	NotificationVendorApplicationApproved  NotificationType = "VendorApplicationApproved"
	NotificationVendorApplicationRejected  NotificationType = "VendorApplicationRejected"
)

// Notification is an advisory message written as a side effect of application
// submission or review. It is addressed either to a set of roles or to a
// specific principal, never both.
type Notification struct {
	ID      bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	Type    NotificationType `bson:"type" json:"type"`
	Message string           `bson:"message" json:"message"`

	RecipientRoles []Role         `bson:"recipientRoles,omitempty" json:"recipientRoles,omitempty"`
	RecipientID    bson.ObjectID  `bson:"recipientId,omitempty" json:"recipientId,omitempty"`
	RecipientModel PrincipalModel `bson:"recipientModel,omitempty" json:"recipientModel,omitempty"`

	ApplicationID  bson.ObjectID `bson:"applicationId,omitempty" json:"applicationId,omitempty"`
	EventID        bson.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	OrganizationID bson.ObjectID `bson:"organizationId,omitempty" json:"organizationId,omitempty"`

	IsRead    bool       `bson:"isRead" json:"isRead"`
	ReadAt    *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}
