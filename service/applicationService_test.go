package service

import (
	"testing"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"github.com/stretchr/testify/assert"
)

func validBoothInput() SubmitApplicationInput {
	return SubmitApplicationInput{
		EventID:            "656f00000000000000000001",
		Organization:       "Fresh Juice Co",
		BoothSize:          entity.BoothSize2x2,
		Attendees:          []entity.Attendee{{Name: "Sara", Email: "sara@juice.co"}},
		SetupDurationWeeks: 2,
		SetupLocation:      "B-14",
	}
}

func TestValidateSubmissionBoothRequiresSetupFields(t *testing.T) {
	input := validBoothInput()
	input.SetupDurationWeeks = 5
	err := validateSubmission(input, entity.EventTypeBooth)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	input = validBoothInput()
	input.SetupDurationWeeks = 0
	assert.Error(t, validateSubmission(input, entity.EventTypeBooth))

	input = validBoothInput()
	input.SetupLocation = "  "
	assert.Error(t, validateSubmission(input, entity.EventTypeBooth))

	assert.NoError(t, validateSubmission(validBoothInput(), entity.EventTypeBooth))
}

func TestValidateSubmissionBazaarIgnoresSetupFields(t *testing.T) {
	input := validBoothInput()
	input.SetupDurationWeeks = 0
	input.SetupLocation = ""
	assert.NoError(t, validateSubmission(input, entity.EventTypeBazaar))
}

func TestValidateSubmissionAttendeeCap(t *testing.T) {
	input := validBoothInput()
	input.Attendees = nil
	for i := 0; i < 6; i++ {
		input.Attendees = append(input.Attendees, entity.Attendee{Name: "A", Email: "a@b.c"})
	}

	for _, eventType := range []entity.EventType{entity.EventTypeBazaar, entity.EventTypeBooth} {
		err := validateSubmission(input, eventType)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}

	input.Attendees = input.Attendees[:5]
	assert.NoError(t, validateSubmission(input, entity.EventTypeBooth))
}

func TestValidateSubmissionBoothSize(t *testing.T) {
	input := validBoothInput()
	input.BoothSize = "3x3"
	assert.Error(t, validateSubmission(input, entity.EventTypeBazaar))

	input.BoothSize = entity.BoothSize4x4
	assert.NoError(t, validateSubmission(input, entity.EventTypeBazaar))
}

func TestValidateSubmissionRejectsNonVendorEventTypes(t *testing.T) {
	for _, eventType := range []entity.EventType{
		entity.EventTypeWorkshop, entity.EventTypeTrip, entity.EventTypeConference, entity.EventTypeGymSession,
	} {
		err := validateSubmission(validBoothInput(), eventType)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestValidateSubmissionAttendeesNeedNameAndEmail(t *testing.T) {
	input := validBoothInput()
	input.Attendees = []entity.Attendee{{Name: "NoEmail"}}
	assert.Error(t, validateSubmission(input, entity.EventTypeBazaar))
}

func TestValidateSubmissionRequiresOrganization(t *testing.T) {
	input := validBoothInput()
	input.Organization = "   "
	assert.Error(t, validateSubmission(input, entity.EventTypeBazaar))
}

func TestApplicationStatusTerminal(t *testing.T) {
	assert.False(t, entity.ApplicationStatusPending.Terminal())
	assert.True(t, entity.ApplicationStatusApproved.Terminal())
	assert.True(t, entity.ApplicationStatusRejected.Terminal())
}
