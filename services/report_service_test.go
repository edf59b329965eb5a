package services

import (
	"testing"
	"time"

	"subtrack_server/models"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyTrend_SixTrailingMonths(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	trend := MonthlyTrend(nil, nil, now)
	assert.Len(t, trend, 6)
	assert.Equal(t, "2026-01", trend[0].Month)
	assert.Equal(t, "2026-06", trend[5].Month)
}

func TestMonthlyTrend_BucketsRevenueAndExpenses(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	invoices := []models.Invoice{
		{Status: models.InvoiceStatusPaid, Amount: 100, PaidAt: "2026-05-02T09:00:00Z"},
		{Status: models.InvoiceStatusPaid, Amount: 50, PaidAt: "2026-05-20T09:00:00Z"},
		{Status: models.InvoiceStatusSent, Amount: 999, DueDate: "2026-05-30"},
		{Status: models.InvoiceStatusPaid, Amount: 999, PaidAt: "2025-11-01T09:00:00Z"},
	}
	expenses := []models.Expense{
		{Amount: 40, Date: "2026-06-01"},
		{Amount: 10, CreatedAt: "2026-06-03T12:00:00Z"},
	}

	trend := MonthlyTrend(invoices, expenses, now)
	assert.Equal(t, 150.0, trend[4].Revenue)
	assert.Equal(t, 50.0, trend[5].Expenses)
	assert.Equal(t, 0.0, trend[0].Revenue)
}

func TestMonthlyTrend_MonthEndNow(t *testing.T) {
	// March 31 minus N months must not normalize past the short months.
	now := time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)

	trend := MonthlyTrend(nil, nil, now)
	months := make([]string, len(trend))
	for i, bucket := range trend {
		months[i] = bucket.Month
	}
	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}, months)
}

func TestMonthlyTrend_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	trend := MonthlyTrend(nil, nil, now)
	assert.Equal(t, "2025-09", trend[0].Month)
	assert.Equal(t, "2026-02", trend[5].Month)
}

func TestClientRollups(t *testing.T) {
	jobs := []models.Job{
		{ClientName: "Acme", BidAmount: 100, CreatedAt: "2026-01-10T00:00:00Z"},
		{ClientName: "Beta", BidAmount: 500, CreatedAt: "2026-02-01T00:00:00Z"},
		{ClientName: "Acme", BidAmount: 200, CreatedAt: "2026-03-01T00:00:00Z"},
	}
	invoices := []models.Invoice{
		{ClientName: "Acme", CreatedAt: "2026-04-01T00:00:00Z"},
	}

	rollups := ClientRollups(jobs, invoices)
	assert.Len(t, rollups, 2)

	// Largest total value first.
	assert.Equal(t, "Beta", rollups[0].ClientName)
	assert.Equal(t, 500.0, rollups[0].TotalValue)

	assert.Equal(t, "Acme", rollups[1].ClientName)
	assert.Equal(t, 2, rollups[1].JobCount)
	assert.Equal(t, 300.0, rollups[1].TotalValue)
	assert.Equal(t, "2026-04-01T00:00:00Z", rollups[1].LastActivity)
}

func TestClientRollups_Empty(t *testing.T) {
	assert.Empty(t, ClientRollups(nil, nil))
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	jobs := []models.Job{
		{JobID: "j1", JobName: "Deck", ClientName: "Acme", BidAmount: 1000, ActualCost: 550},
	}

	report := BuildReport(jobs, nil, nil, now)
	assert.Len(t, report.Trend, 6)
	assert.Len(t, report.Clients, 1)
	assert.Len(t, report.Margins, 1)
	assert.Equal(t, 45.0, report.Margins[0].Margin)
	assert.Equal(t, 45.0, report.AverageMargin)
}
