package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanFor_KnownTiers(t *testing.T) {
	free := PlanFor(PlanFree)
	assert.Equal(t, 3, free.MaxActiveJobs)
	assert.Equal(t, 5, free.MaxMonthlyInvoices)
	assert.Equal(t, 2, free.MaxCrewMembers)
	assert.False(t, free.OnlinePayments)
	assert.False(t, free.FullReports)
	assert.False(t, free.Reminders)

	pro := PlanFor(PlanPro)
	assert.Equal(t, 25, pro.MaxActiveJobs)
	assert.True(t, pro.OnlinePayments)

	team := PlanFor(PlanTeam)
	assert.Equal(t, -1, team.MaxActiveJobs)
	assert.Equal(t, -1, team.MaxMonthlyInvoices)
	assert.Equal(t, -1, team.MaxCrewMembers)
}

func TestPlanFor_UnknownTierFallsBackToFree(t *testing.T) {
	assert.Equal(t, PlanFree, PlanFor("").Tier)
	assert.Equal(t, PlanFree, PlanFor("enterprise").Tier)
}
