package services

import (
	"testing"
	"time"

	"subtrack_server/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyInvoiceDefaults_FromJob(t *testing.T) {
	job := &models.Job{JobName: "Deck build", BidAmount: 500}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	amount, dueDate, lineItems := ApplyInvoiceDefaults(InvoiceInput{}, job, now)
	assert.Equal(t, 500.0, amount)
	assert.Equal(t, "2026-03-31", dueDate)
	assert.Len(t, lineItems, 1)
	assert.Equal(t, "Work performed: Deck build", lineItems[0].Description)
	assert.Equal(t, 500.0, lineItems[0].Amount)
}

func TestApplyInvoiceDefaults_ExplicitInputWins(t *testing.T) {
	job := &models.Job{JobName: "Deck build", BidAmount: 500}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	explicit := 250.0
	in := InvoiceInput{
		Amount:  &explicit,
		DueDate: "2026-04-15",
		LineItems: []models.InvoiceLineItem{
			{Description: "Deposit", Amount: 250},
		},
	}

	amount, dueDate, lineItems := ApplyInvoiceDefaults(in, job, now)
	assert.Equal(t, 250.0, amount)
	assert.Equal(t, "2026-04-15", dueDate)
	assert.Len(t, lineItems, 1)
	assert.Equal(t, "Deposit", lineItems[0].Description)
}

func TestApplyInvoiceDefaults_ZeroAmountFallsBack(t *testing.T) {
	job := &models.Job{JobName: "Roof repair", BidAmount: 800}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	zero := 0.0
	amount, _, _ := ApplyInvoiceDefaults(InvoiceInput{Amount: &zero}, job, now)
	assert.Equal(t, 800.0, amount)
}

func TestNextReminderType_Tiers(t *testing.T) {
	assert.Equal(t, "", NextReminderType(6, ""))
	assert.Equal(t, models.ReminderTypeFriendly, NextReminderType(7, ""))
	assert.Equal(t, models.ReminderTypeFriendly, NextReminderType(13, ""))
	assert.Equal(t, models.ReminderTypeFollowup, NextReminderType(14, ""))
	assert.Equal(t, models.ReminderTypeOverdue, NextReminderType(30, ""))
	assert.Equal(t, models.ReminderTypeOverdue, NextReminderType(90, ""))
}

func TestNextReminderType_EachTierSentOnce(t *testing.T) {
	// Still inside the friendly window after a friendly reminder: nothing due.
	assert.Equal(t, "", NextReminderType(10, models.ReminderTypeFriendly))

	// Crossing into the next tier makes it due again.
	assert.Equal(t, models.ReminderTypeFollowup, NextReminderType(20, models.ReminderTypeFriendly))
	assert.Equal(t, "", NextReminderType(20, models.ReminderTypeFollowup))
	assert.Equal(t, models.ReminderTypeOverdue, NextReminderType(35, models.ReminderTypeFollowup))
	assert.Equal(t, "", NextReminderType(90, models.ReminderTypeOverdue))
}
