package service

import (
	"testing"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"github.com/stretchr/testify/assert"
)

func baseEventInput(eventType entity.EventType) CreateEventInput {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return CreateEventInput{
		Title:     "Spring Bazaar",
		Category:  "market",
		StartDate: start,
		EndDate:   start.Add(8 * time.Hour),
		Location:  "Main Quad",
		Capacity:  200,
		Type:      eventType,
	}
}

func TestValidateEventInputBaseFields(t *testing.T) {
	input := baseEventInput(entity.EventTypeBazaar)
	assert.NoError(t, validateEventInput(input))

	input.Title = "  "
	assert.Error(t, validateEventInput(input))

	input = baseEventInput(entity.EventTypeBazaar)
	input.EndDate = input.StartDate.Add(-time.Hour)
	assert.Error(t, validateEventInput(input))

	input = baseEventInput(entity.EventTypeBazaar)
	input.Capacity = -1
	assert.Error(t, validateEventInput(input))

	input = baseEventInput("Party")
	assert.Error(t, validateEventInput(input))
}

func TestValidateEventInputWorkshopVariant(t *testing.T) {
	input := baseEventInput(entity.EventTypeWorkshop)
	err := validateEventInput(input)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	input.Workshop = &entity.WorkshopDetails{FacultyName: "MET", RequiredBudget: 1500, FundingSource: "faculty"}
	assert.NoError(t, validateEventInput(input))

	input.Workshop.RequiredBudget = 0
	assert.Error(t, validateEventInput(input))
}

func TestValidateEventInputVariantMismatch(t *testing.T) {
	input := baseEventInput(entity.EventTypeBazaar)
	input.Workshop = &entity.WorkshopDetails{FacultyName: "MET", RequiredBudget: 1, FundingSource: "x"}
	assert.Error(t, validateEventInput(input))

	input = baseEventInput(entity.EventTypeTrip)
	input.Trip = &entity.TripDetails{Destination: "Luxor", Price: 120}
	input.GymSession = &entity.GymSessionDetails{TrainerName: "Omar"}
	assert.Error(t, validateEventInput(input))
}

func TestValidateEventInputOtherVariants(t *testing.T) {
	input := baseEventInput(entity.EventTypeTrip)
	assert.Error(t, validateEventInput(input))
	input.Trip = &entity.TripDetails{Destination: "Luxor", Price: 120}
	assert.NoError(t, validateEventInput(input))

	input = baseEventInput(entity.EventTypeConference)
	assert.Error(t, validateEventInput(input))
	input.Conference = &entity.ConferenceDetails{Organizer: "IEEE Student Branch"}
	assert.NoError(t, validateEventInput(input))

	input = baseEventInput(entity.EventTypeGymSession)
	assert.Error(t, validateEventInput(input))
	input.GymSession = &entity.GymSessionDetails{TrainerName: "Omar"}
	assert.NoError(t, validateEventInput(input))

	// Booth needs no extra payload.
	assert.NoError(t, validateEventInput(baseEventInput(entity.EventTypeBooth)))
}

func storedEvent() *entity.Event {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return &entity.Event{
		Title:     "Spring Bazaar",
		StartDate: start,
		EndDate:   start.Add(8 * time.Hour),
	}
}

func TestBuildEventUpdateRejectsInvertedDateRange(t *testing.T) {
	current := storedEvent()

	// Moving only the end before the stored start.
	end := current.StartDate.Add(-time.Hour)
	_, err := buildEventUpdate(current, UpdateEventInput{EndDate: &end})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Moving only the start past the stored end.
	start := current.EndDate.Add(time.Hour)
	_, err = buildEventUpdate(current, UpdateEventInput{StartDate: &start})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestBuildEventUpdateMovesBothBoundsTogether(t *testing.T) {
	current := storedEvent()

	start := current.EndDate.Add(24 * time.Hour)
	end := start.Add(4 * time.Hour)
	set, err := buildEventUpdate(current, UpdateEventInput{StartDate: &start, EndDate: &end})

	assert.NoError(t, err)
	assert.Equal(t, start, set["startDate"])
	assert.Equal(t, end, set["endDate"])
}

func TestBuildEventUpdateSingleBoundWithinRange(t *testing.T) {
	current := storedEvent()

	end := current.EndDate.Add(2 * time.Hour)
	set, err := buildEventUpdate(current, UpdateEventInput{EndDate: &end})

	assert.NoError(t, err)
	assert.Equal(t, end, set["endDate"])
	assert.NotContains(t, set, "startDate")
}

func TestTitleSimilarityRanksCloserFirst(t *testing.T) {
	closer := titleSimilarity("bazaar", "Spring Bazaar")
	farther := titleSimilarity("bazaar", "Annual Engineering Career Conference")
	assert.Greater(t, closer, farther)
}
