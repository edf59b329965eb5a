package services

import (
	"testing"
	"time"

	"subtrack_server/models"

	"github.com/stretchr/testify/assert"
)

var complianceNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestClassifyCompliance_Active(t *testing.T) {
	status, daysLeft := ClassifyCompliance(complianceNow.AddDate(0, 0, 45), complianceNow)
	assert.Equal(t, models.ComplianceStatusActive, status)
	assert.Equal(t, 45, daysLeft)
}

func TestClassifyCompliance_ExpiringSoon(t *testing.T) {
	status, daysLeft := ClassifyCompliance(complianceNow.AddDate(0, 0, 20), complianceNow)
	assert.Equal(t, models.ComplianceStatusExpiringSoon, status)
	assert.Equal(t, 20, daysLeft)
}

func TestClassifyCompliance_Expiring(t *testing.T) {
	status, daysLeft := ClassifyCompliance(complianceNow.AddDate(0, 0, 10), complianceNow)
	assert.Equal(t, models.ComplianceStatusExpiring, status)
	assert.Equal(t, 10, daysLeft)
}

func TestClassifyCompliance_Expired(t *testing.T) {
	status, daysLeft := ClassifyCompliance(complianceNow.AddDate(0, 0, -1), complianceNow)
	assert.Equal(t, models.ComplianceStatusExpired, status)
	assert.Equal(t, -1, daysLeft)
}

func TestClassifyCompliance_Boundaries(t *testing.T) {
	// Exactly 30 days out is still expiring-soon; 31 is active.
	status, _ := ClassifyCompliance(complianceNow.AddDate(0, 0, 30), complianceNow)
	assert.Equal(t, models.ComplianceStatusExpiringSoon, status)
	status, _ = ClassifyCompliance(complianceNow.AddDate(0, 0, 31), complianceNow)
	assert.Equal(t, models.ComplianceStatusActive, status)

	// Expiring today is expiring, not expired.
	status, daysLeft := ClassifyCompliance(complianceNow, complianceNow)
	assert.Equal(t, models.ComplianceStatusExpiring, status)
	assert.Equal(t, 0, daysLeft)
}

func TestClassifyCompliance_PartialDayRoundsUp(t *testing.T) {
	_, daysLeft := ClassifyCompliance(complianceNow.Add(36*time.Hour), complianceNow)
	assert.Equal(t, 2, daysLeft)
}

func TestComplianceSeverity_WorstFirst(t *testing.T) {
	assert.Less(t, ComplianceSeverity(models.ComplianceStatusExpired), ComplianceSeverity(models.ComplianceStatusExpiring))
	assert.Less(t, ComplianceSeverity(models.ComplianceStatusExpiring), ComplianceSeverity(models.ComplianceStatusExpiringSoon))
	assert.Less(t, ComplianceSeverity(models.ComplianceStatusExpiringSoon), ComplianceSeverity(models.ComplianceStatusActive))
}
