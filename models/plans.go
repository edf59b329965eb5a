package models

// Plan is a static set of limits for a subscription tier. Numeric limits use
// -1 for unlimited.
type Plan struct {
	Tier               string `json:"tier"`
	MaxActiveJobs      int    `json:"maxActiveJobs"`
	MaxMonthlyInvoices int    `json:"maxMonthlyInvoices"`
	MaxCrewMembers     int    `json:"maxCrewMembers"`
	OnlinePayments     bool   `json:"onlinePayments"`
	FullReports        bool   `json:"fullReports"`
	Reminders          bool   `json:"reminders"`
}

var plans = map[string]Plan{
	PlanFree: {
		Tier:               PlanFree,
		MaxActiveJobs:      3,
		MaxMonthlyInvoices: 5,
		MaxCrewMembers:     2,
		OnlinePayments:     false,
		FullReports:        false,
		Reminders:          false,
	},
	PlanPro: {
		Tier:               PlanPro,
		MaxActiveJobs:      25,
		MaxMonthlyInvoices: 100,
		MaxCrewMembers:     10,
		OnlinePayments:     true,
		FullReports:        true,
		Reminders:          true,
	},
	PlanTeam: {
		Tier:               PlanTeam,
		MaxActiveJobs:      -1,
		MaxMonthlyInvoices: -1,
		MaxCrewMembers:     -1,
		OnlinePayments:     true,
		FullReports:        true,
		Reminders:          true,
	},
}

// PlanFor returns the plan for a tier, falling back to the free plan for
// unknown or blank tiers.
func PlanFor(tier string) Plan {
	if p, ok := plans[tier]; ok {
		return p
	}
	return plans[PlanFree]
}
