package services

import (
	"testing"
	"time"

	"subtrack_server/models"

	"github.com/stretchr/testify/assert"
)

func TestJobMargin(t *testing.T) {
	assert.Equal(t, 45.0, JobMargin(1000, 550))
	assert.Equal(t, 100.0, JobMargin(1000, 0))
	assert.Equal(t, -50.0, JobMargin(1000, 1500))
}

func TestJobMargin_NoBid(t *testing.T) {
	assert.Equal(t, 0.0, JobMargin(0, 500))
}

func TestAverageMargin_SkipsJobsWithoutBid(t *testing.T) {
	jobs := []models.Job{
		{BidAmount: 1000, ActualCost: 550},  // 45%
		{BidAmount: 2000, ActualCost: 1500}, // 25%
		{BidAmount: 0, ActualCost: 300},
	}
	assert.Equal(t, 35.0, AverageMargin(jobs))
}

func TestAverageMargin_NoBidBearingJobs(t *testing.T) {
	assert.Equal(t, 0.0, AverageMargin(nil))
	assert.Equal(t, 0.0, AverageMargin([]models.Job{{BidAmount: 0}}))
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	jobs := []models.Job{
		{JobID: "j1", Status: models.JobStatusActive, BidAmount: 1000, ActualCost: 550},
		{JobID: "j2", Status: models.JobStatusComplete, BidAmount: 2000, ActualCost: 1000},
		{JobID: "j3", Status: models.JobStatusBidding},
	}
	invoices := []models.Invoice{
		{InvoiceID: "i1", Status: models.InvoiceStatusSent, Amount: 500, DueDate: "2026-03-10"},
		{InvoiceID: "i2", Status: models.InvoiceStatusViewed, Amount: 300, DueDate: "2026-04-10"},
		{InvoiceID: "i3", Status: models.InvoiceStatusPaid, Amount: 400, PaidAt: "2026-03-05T10:00:00Z"},
		{InvoiceID: "i4", Status: models.InvoiceStatusDraft, Amount: 100},
	}

	data := BuildDashboard(jobs, invoices, now)

	// Complete-job bids plus unpaid invoice amounts.
	assert.Equal(t, 2800.0, data.TotalOwed)
	assert.Equal(t, 500.0, data.TotalOverdue)
	assert.Len(t, data.OverdueInvoices, 1)
	assert.Equal(t, "i1", data.OverdueInvoices[0].Invoice.InvoiceID)
	assert.Equal(t, 10, data.OverdueInvoices[0].DaysOverdue)
	assert.Equal(t, 400.0, data.MonthToDatePaid)
	assert.Equal(t, 1, data.ActiveJobs)
	// j1 margin 45%, j2 margin 50%, j3 has no bid and is skipped.
	assert.Equal(t, 47.5, data.AverageMargin)
}

func TestBuildDashboard_OverdueSortedWorstFirst(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	invoices := []models.Invoice{
		{InvoiceID: "recent", Status: models.InvoiceStatusSent, Amount: 100, DueDate: "2026-03-15"},
		{InvoiceID: "old", Status: models.InvoiceStatusSent, Amount: 100, DueDate: "2026-02-01"},
	}

	data := BuildDashboard(nil, invoices, now)
	assert.Len(t, data.OverdueInvoices, 2)
	assert.Equal(t, "old", data.OverdueInvoices[0].Invoice.InvoiceID)
	assert.Equal(t, "recent", data.OverdueInvoices[1].Invoice.InvoiceID)
}

func TestBuildDashboard_PaidLastMonthNotCounted(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	invoices := []models.Invoice{
		{Status: models.InvoiceStatusPaid, Amount: 400, PaidAt: "2026-02-27T10:00:00Z"},
	}

	data := BuildDashboard(nil, invoices, now)
	assert.Equal(t, 0.0, data.MonthToDatePaid)
}

func TestBuildDashboard_Empty(t *testing.T) {
	data := BuildDashboard(nil, nil, time.Now().UTC())
	assert.Equal(t, 0.0, data.TotalOwed)
	assert.Equal(t, 0, data.ActiveJobs)
	assert.NotNil(t, data.OverdueInvoices)
	assert.Empty(t, data.OverdueInvoices)
}
