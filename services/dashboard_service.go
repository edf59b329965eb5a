package services

import (
	"context"
	"sort"
	"time"

	"subtrack_server/models"
	"subtrack_server/utils"
)

// DashboardService computes the read-side overview. Everything is derived per
// request from already-persisted rows; nothing is cached or materialized.
type DashboardService struct {
	Jobs       *JobService
	Invoices   *InvoiceService
	Compliance *ComplianceService
}

// OverdueInvoice is an unpaid invoice past its due date.
type OverdueInvoice struct {
	Invoice     models.Invoice `json:"invoice"`
	DaysOverdue int            `json:"daysOverdue"`
}

// DashboardData is the aggregated overview payload.
type DashboardData struct {
	TotalOwed         float64                     `json:"totalOwed"`
	TotalOverdue      float64                     `json:"totalOverdue"`
	OverdueInvoices   []OverdueInvoice            `json:"overdueInvoices"`
	MonthToDatePaid   float64                     `json:"monthToDatePaid"`
	ActiveJobs        int                         `json:"activeJobs"`
	AverageMargin     float64                     `json:"averageMargin"`
	ExpiringDocuments []models.ComplianceDocument `json:"expiringDocuments"`
}

// JobMargin is (bid - cost) / bid * 100, zero when there is no bid.
func JobMargin(bid, cost float64) float64 {
	if bid == 0 {
		return 0
	}
	return utils.Round2((bid - cost) / bid * 100)
}

// AverageMargin averages margins across bid-bearing jobs only.
func AverageMargin(jobs []models.Job) float64 {
	var sum float64
	count := 0
	for _, job := range jobs {
		if job.BidAmount == 0 {
			continue
		}
		sum += JobMargin(job.BidAmount, job.ActualCost)
		count++
	}
	if count == 0 {
		return 0
	}
	return utils.Round2(sum / float64(count))
}

func invoiceUnpaid(status string) bool {
	return status == models.InvoiceStatusSent || status == models.InvoiceStatusViewed
}

// BuildDashboard computes every derived figure from the given rows.
func BuildDashboard(jobs []models.Job, invoices []models.Invoice, now time.Time) DashboardData {
	data := DashboardData{OverdueInvoices: []OverdueInvoice{}}

	for _, job := range jobs {
		if job.Status == models.JobStatusActive {
			data.ActiveJobs++
		}
		if job.Status == models.JobStatusComplete {
			data.TotalOwed += job.BidAmount
		}
	}

	monthPrefix := now.Format("2006-01")
	for _, inv := range invoices {
		if invoiceUnpaid(inv.Status) {
			data.TotalOwed += inv.Amount

			due := utils.ParseDate(inv.DueDate)
			if !due.IsZero() && due.Before(now) {
				days := int(now.Sub(due).Hours() / 24)
				data.TotalOverdue += inv.Amount
				data.OverdueInvoices = append(data.OverdueInvoices, OverdueInvoice{Invoice: inv, DaysOverdue: days})
			}
		}
		if inv.Status == models.InvoiceStatusPaid && len(inv.PaidAt) >= 7 && inv.PaidAt[:7] == monthPrefix {
			data.MonthToDatePaid += inv.Amount
		}
	}

	sort.SliceStable(data.OverdueInvoices, func(i, j int) bool {
		return data.OverdueInvoices[i].DaysOverdue > data.OverdueInvoices[j].DaysOverdue
	})

	data.TotalOwed = utils.Round2(data.TotalOwed)
	data.TotalOverdue = utils.Round2(data.TotalOverdue)
	data.MonthToDatePaid = utils.Round2(data.MonthToDatePaid)
	data.AverageMargin = AverageMargin(jobs)
	return data
}

// GetDashboard fetches the owner's rows and aggregates them.
func (ds *DashboardService) GetDashboard(ctx context.Context, ownerID string) (*DashboardData, error) {
	jobs, err := ds.Jobs.ListJobs(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	invoices, err := ds.Invoices.ListInvoices(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	data := BuildDashboard(jobs, invoices, time.Now().UTC())

	docs, err := ds.Compliance.ExpiringDocuments(ctx, ownerID, 30)
	if err != nil {
		return nil, err
	}
	data.ExpiringDocuments = docs
	return &data, nil
}
