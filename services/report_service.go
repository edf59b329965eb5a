package services

import (
	"context"
	"sort"
	"time"

	"subtrack_server/models"
	"subtrack_server/utils"
)

// ReportService computes the deeper financial breakdowns. Full reports are a
// plan-gated feature; the controller consults the gate before calling in.
type ReportService struct {
	Jobs     *JobService
	Invoices *InvoiceService
	Expenses *ExpenseService
}

// MonthBucket is one month of the trailing revenue/expense trend.
type MonthBucket struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ClientRollup aggregates an owner's history with one client.
type ClientRollup struct {
	ClientName   string  `json:"clientName"`
	JobCount     int     `json:"jobCount"`
	TotalValue   float64 `json:"totalValue"`
	LastActivity string  `json:"lastActivity,omitempty"`
}

// JobMarginRow is one job's profitability line.
type JobMarginRow struct {
	JobID   string  `json:"jobId"`
	JobName string  `json:"jobName"`
	Bid     float64 `json:"bid"`
	Cost    float64 `json:"cost"`
	Margin  float64 `json:"margin"`
}

// ReportData is the full reports payload.
type ReportData struct {
	Trend         []MonthBucket  `json:"trend"`
	Clients       []ClientRollup `json:"clients"`
	Margins       []JobMarginRow `json:"margins"`
	AverageMargin float64        `json:"averageMargin"`
}

// MonthlyTrend buckets paid-invoice revenue and expenses into a fixed
// trailing six-month window ending at now's month.
func MonthlyTrend(invoices []models.Invoice, expenses []models.Expense, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 6)
	index := make(map[string]int, 6)
	// Anchor on the first of the month: AddDate from a day-of-month the target
	// month lacks (e.g. Jan 31 minus a month) would normalize past it.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		month := anchor.AddDate(0, i-5, 0).Format("2006-01")
		buckets[i] = MonthBucket{Month: month}
		index[month] = i
	}

	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusPaid || len(inv.PaidAt) < 7 {
			continue
		}
		if i, ok := index[inv.PaidAt[:7]]; ok {
			buckets[i].Revenue = utils.Round2(buckets[i].Revenue + inv.Amount)
		}
	}

	for _, exp := range expenses {
		when := exp.Date
		if when == "" {
			when = exp.CreatedAt
		}
		if len(when) < 7 {
			continue
		}
		if i, ok := index[when[:7]]; ok {
			buckets[i].Expenses = utils.Round2(buckets[i].Expenses + exp.Amount)
		}
	}
	return buckets
}

// ClientRollups groups jobs by client with totals and the most recent
// job/invoice activity, largest total first.
func ClientRollups(jobs []models.Job, invoices []models.Invoice) []ClientRollup {
	byClient := make(map[string]*ClientRollup)
	order := []string{}

	for _, job := range jobs {
		rollup, ok := byClient[job.ClientName]
		if !ok {
			rollup = &ClientRollup{ClientName: job.ClientName}
			byClient[job.ClientName] = rollup
			order = append(order, job.ClientName)
		}
		rollup.JobCount++
		rollup.TotalValue = utils.Round2(rollup.TotalValue + job.BidAmount)
		if job.CreatedAt > rollup.LastActivity {
			rollup.LastActivity = job.CreatedAt
		}
	}

	for _, inv := range invoices {
		if rollup, ok := byClient[inv.ClientName]; ok && inv.CreatedAt > rollup.LastActivity {
			rollup.LastActivity = inv.CreatedAt
		}
	}

	rollups := make([]ClientRollup, 0, len(order))
	for _, name := range order {
		rollups = append(rollups, *byClient[name])
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalValue > rollups[j].TotalValue
	})
	return rollups
}

// BuildReport assembles the full report from the given rows.
func BuildReport(jobs []models.Job, invoices []models.Invoice, expenses []models.Expense, now time.Time) ReportData {
	margins := make([]JobMarginRow, 0, len(jobs))
	for _, job := range jobs {
		margins = append(margins, JobMarginRow{
			JobID:   job.JobID,
			JobName: job.JobName,
			Bid:     job.BidAmount,
			Cost:    job.ActualCost,
			Margin:  JobMargin(job.BidAmount, job.ActualCost),
		})
	}

	return ReportData{
		Trend:         MonthlyTrend(invoices, expenses, now),
		Clients:       ClientRollups(jobs, invoices),
		Margins:       margins,
		AverageMargin: AverageMargin(jobs),
	}
}

// GetReport fetches the owner's rows and assembles the report.
func (rs *ReportService) GetReport(ctx context.Context, ownerID string) (*ReportData, error) {
	jobs, err := rs.Jobs.ListJobs(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	invoices, err := rs.Invoices.ListInvoices(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	for _, job := range jobs {
		rows, err := rs.Expenses.expensesForJob(ctx, job.JobID)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, rows...)
	}

	report := BuildReport(jobs, invoices, expenses, time.Now().UTC())
	return &report, nil
}
