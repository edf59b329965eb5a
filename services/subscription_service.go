package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SubscriptionService owns the per-owner profile row and the plan gate. Usage
// is always counted from live rows, never cached.
type SubscriptionService struct {
	Dynamo *DynamoService
	Tables config.Tables
}

// PlanStatus is the subscription overview: the plan plus current usage.
type PlanStatus struct {
	Plan              models.Plan `json:"plan"`
	ActiveJobs        int         `json:"activeJobs"`
	InvoicesThisMonth int         `json:"invoicesThisMonth"`
	CrewMembers       int         `json:"crewMembers"`
}

func profileKey(ownerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId":  &types.AttributeValueMemberS{Value: ownerID},
		"recordId": &types.AttributeValueMemberS{Value: models.ProfileSortKey},
	}
}

// GetProfile returns the owner's profile, creating a free-tier one on first
// access.
func (ss *SubscriptionService) GetProfile(ctx context.Context, ownerID string) (*models.UserProfile, error) {
	item, err := ss.Dynamo.GetItem(ctx, ss.Tables.UserProfiles, profileKey(ownerID))
	if err != nil {
		return nil, err
	}

	if item == nil {
		profile := models.UserProfile{
			OwnerID:   ownerID,
			RecordID:  models.ProfileSortKey,
			PlanTier:  models.PlanFree,
			CreatedAt: utils.NowISO(),
		}
		if err := ss.Dynamo.PutItem(ctx, ss.Tables.UserProfiles, profile); err != nil {
			return nil, err
		}
		return &profile, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile rewrites the editable business fields; the plan tier changes
// only through billing, not here.
func (ss *SubscriptionService) UpdateProfile(ctx context.Context, ownerID string, businessName, contactName, email, phone string) (*models.UserProfile, error) {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(businessName) != "" {
		profile.BusinessName = strings.TrimSpace(businessName)
	}
	if contactName != "" {
		profile.ContactName = contactName
	}
	if email != "" {
		profile.Email = email
	}
	if phone != "" {
		profile.Phone = phone
	}
	profile.UpdatedAt = utils.NowISO()

	if err := ss.Dynamo.PutItem(ctx, ss.Tables.UserProfiles, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveAccountingTokens stores the accounting provider's OAuth tokens on the
// profile.
func (ss *SubscriptionService) SaveAccountingTokens(ctx context.Context, ownerID, accessToken, refreshToken, expiry, realmID string) error {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return err
	}
	profile.AccountingAccessToken = accessToken
	profile.AccountingRefreshToken = refreshToken
	profile.AccountingTokenExpiry = expiry
	profile.AccountingRealmID = realmID
	profile.UpdatedAt = utils.NowISO()
	return ss.Dynamo.PutItem(ctx, ss.Tables.UserProfiles, *profile)
}

// CheckLimit compares usage against a numeric plan limit; -1 is unlimited.
// The error message carries the upgrade hint shown to the user.
func CheckLimit(limit, current int, what string) error {
	if limit < 0 || current < limit {
		return nil
	}
	return errLimit(fmt.Sprintf("Your plan allows %d %s. Upgrade to add more.", limit, what))
}

// Status returns the owner's plan and live usage counts.
func (ss *SubscriptionService) Status(ctx context.Context, ownerID string) (*PlanStatus, error) {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	activeJobs, err := ss.countActiveJobs(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	invoices, err := ss.countMonthlyInvoices(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	crew, err := ss.countCrew(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &PlanStatus{
		Plan:              models.PlanFor(profile.PlanTier),
		ActiveJobs:        activeJobs,
		InvoicesThisMonth: invoices,
		CrewMembers:       crew,
	}, nil
}

// CheckJobCreate enforces the active-job cap before a job is written.
func (ss *SubscriptionService) CheckJobCreate(ctx context.Context, ownerID string) error {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return err
	}
	plan := models.PlanFor(profile.PlanTier)

	count, err := ss.countActiveJobs(ctx, ownerID)
	if err != nil {
		return err
	}
	return CheckLimit(plan.MaxActiveJobs, count, "active jobs")
}

// CheckInvoiceCreate enforces the monthly invoice cap.
func (ss *SubscriptionService) CheckInvoiceCreate(ctx context.Context, ownerID string) error {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return err
	}
	plan := models.PlanFor(profile.PlanTier)

	count, err := ss.countMonthlyInvoices(ctx, ownerID)
	if err != nil {
		return err
	}
	return CheckLimit(plan.MaxMonthlyInvoices, count, "invoices this month")
}

// CheckCrewCreate enforces the crew-size cap.
func (ss *SubscriptionService) CheckCrewCreate(ctx context.Context, ownerID string) error {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return err
	}
	plan := models.PlanFor(profile.PlanTier)

	count, err := ss.countCrew(ctx, ownerID)
	if err != nil {
		return err
	}
	return CheckLimit(plan.MaxCrewMembers, count, "crew members")
}

// HasFeature reports a boolean plan flag for the owner.
func (ss *SubscriptionService) HasFeature(ctx context.Context, ownerID, feature string) (bool, error) {
	profile, err := ss.GetProfile(ctx, ownerID)
	if err != nil {
		return false, err
	}
	plan := models.PlanFor(profile.PlanTier)
	switch feature {
	case "onlinePayments":
		return plan.OnlinePayments, nil
	case "fullReports":
		return plan.FullReports, nil
	case "reminders":
		return plan.Reminders, nil
	}
	return false, nil
}

func (ss *SubscriptionService) countActiveJobs(ctx context.Context, ownerID string) (int, error) {
	items, err := ss.Dynamo.QueryItemsWithIndex(ctx, ss.Tables.Jobs, models.JobStatusIndex,
		"ownerId = :ownerId AND begins_with(statusCreatedAt, :status)",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
			":status":  &types.AttributeValueMemberS{Value: models.JobStatusActive + "#"},
		}, nil, 0)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (ss *SubscriptionService) countMonthlyInvoices(ctx context.Context, ownerID string) (int, error) {
	items, err := ss.Dynamo.QueryItemsWithIndex(ctx, ss.Tables.Invoices, models.InvoiceOwnerStatusIndex,
		"ownerId = :ownerId",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
		}, nil, 0)
	if err != nil {
		return 0, err
	}

	var invoices []models.Invoice
	if err := attributevalue.UnmarshalListOfMaps(items, &invoices); err != nil {
		return 0, err
	}

	monthPrefix := time.Now().UTC().Format("2006-01")
	count := 0
	for _, inv := range invoices {
		if strings.HasPrefix(inv.CreatedAt, monthPrefix) {
			count++
		}
	}
	return count, nil
}

func (ss *SubscriptionService) countCrew(ctx context.Context, ownerID string) (int, error) {
	items, err := ss.Dynamo.QueryItems(ctx, ss.Tables.CrewMembers,
		"ownerId = :ownerId",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
		}, nil, 0)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
