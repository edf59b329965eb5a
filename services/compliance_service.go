package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ComplianceService owns insurance/license/certification records. Urgency is
// always derived from the expiration date at read time, never stored.
type ComplianceService struct {
	Dynamo *DynamoService
	Tables config.Tables
}

// ComplianceInput carries the writable document fields.
type ComplianceInput struct {
	DocType        string `json:"docType"`
	Name           string `json:"name" validate:"required"`
	Provider       string `json:"provider"`
	PolicyNumber   string `json:"policyNumber"`
	IssueDate      string `json:"issueDate"`
	ExpirationDate string `json:"expirationDate"`
	FileKey        string `json:"fileKey"`
	Notes          string `json:"notes"`
}

// ClassifyCompliance is a pure function of the expiration date and "now":
// daysLeft is the ceiling of the remaining days; status worsens as daysLeft
// crosses 30, 14 and 0.
func ClassifyCompliance(expiration, now time.Time) (status string, daysLeft int) {
	daysLeft = int(math.Ceil(expiration.Sub(now).Hours() / 24))
	switch {
	case daysLeft < 0:
		status = models.ComplianceStatusExpired
	case daysLeft <= 14:
		status = models.ComplianceStatusExpiring
	case daysLeft <= 30:
		status = models.ComplianceStatusExpiringSoon
	default:
		status = models.ComplianceStatusActive
	}
	return
}

// ComplianceSeverity ranks statuses worst-first for sorting.
func ComplianceSeverity(status string) int {
	switch status {
	case models.ComplianceStatusExpired:
		return 0
	case models.ComplianceStatusExpiring:
		return 1
	case models.ComplianceStatusExpiringSoon:
		return 2
	default:
		return 3
	}
}

func complianceKey(ownerID, docID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId": &types.AttributeValueMemberS{Value: ownerID},
		"docId":   &types.AttributeValueMemberS{Value: docID},
	}
}

func classify(doc *models.ComplianceDocument, now time.Time) {
	doc.Status, doc.DaysLeft = ClassifyCompliance(utils.ParseDate(doc.ExpirationDate), now)
}

// CreateDocument validates and writes a compliance document.
func (cs *ComplianceService) CreateDocument(ctx context.Context, ownerID string, in ComplianceInput) (*models.ComplianceDocument, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errValidation("Document name is required")
	}
	if in.ExpirationDate == "" || utils.ParseDate(in.ExpirationDate).IsZero() {
		return nil, errValidation("A valid expiration date is required")
	}

	doc := models.ComplianceDocument{
		OwnerID:        ownerID,
		DocID:          utils.NewID(),
		DocType:        in.DocType,
		Name:           strings.TrimSpace(in.Name),
		Provider:       in.Provider,
		PolicyNumber:   in.PolicyNumber,
		IssueDate:      in.IssueDate,
		ExpirationDate: in.ExpirationDate,
		FileKey:        in.FileKey,
		Notes:          in.Notes,
		CreatedAt:      utils.NowISO(),
	}

	if err := cs.Dynamo.PutItem(ctx, cs.Tables.Compliance, doc); err != nil {
		return nil, err
	}
	classify(&doc, time.Now().UTC())
	return &doc, nil
}

// GetDocument fetches one document with its urgency computed.
func (cs *ComplianceService) GetDocument(ctx context.Context, ownerID, docID string) (*models.ComplianceDocument, error) {
	item, err := cs.Dynamo.GetItem(ctx, cs.Tables.Compliance, complianceKey(ownerID, docID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNotFound("Document not found")
	}

	var doc models.ComplianceDocument
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, err
	}
	classify(&doc, time.Now().UTC())
	return &doc, nil
}

// ListDocuments returns the owner's documents sorted worst urgency first,
// original order preserved within a rank.
func (cs *ComplianceService) ListDocuments(ctx context.Context, ownerID string) ([]models.ComplianceDocument, error) {
	items, err := cs.Dynamo.QueryItems(ctx, cs.Tables.Compliance,
		"ownerId = :ownerId",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	docs := make([]models.ComplianceDocument, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &docs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range docs {
		classify(&docs[i], now)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return ComplianceSeverity(docs[i].Status) < ComplianceSeverity(docs[j].Status)
	})
	return docs, nil
}

// ExpiringDocuments returns only the documents that need attention, worst
// first, via the expiration-date index.
func (cs *ComplianceService) ExpiringDocuments(ctx context.Context, ownerID string, within int) ([]models.ComplianceDocument, error) {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, within).Format(utils.DateOnly)

	items, err := cs.Dynamo.QueryItemsWithIndex(ctx, cs.Tables.Compliance, models.ComplianceExpirationIndex,
		"ownerId = :ownerId AND expirationDate <= :cutoff",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
			":cutoff":  &types.AttributeValueMemberS{Value: cutoff},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	docs := make([]models.ComplianceDocument, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &docs); err != nil {
		return nil, err
	}
	for i := range docs {
		classify(&docs[i], now)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return ComplianceSeverity(docs[i].Status) < ComplianceSeverity(docs[j].Status)
	})
	return docs, nil
}

// UpdateDocument rewrites the editable fields.
func (cs *ComplianceService) UpdateDocument(ctx context.Context, ownerID, docID string, in ComplianceInput) (*models.ComplianceDocument, error) {
	doc, err := cs.GetDocument(ctx, ownerID, docID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) != "" {
		doc.Name = strings.TrimSpace(in.Name)
	}
	if in.ExpirationDate != "" {
		if utils.ParseDate(in.ExpirationDate).IsZero() {
			return nil, errValidation("A valid expiration date is required")
		}
		doc.ExpirationDate = in.ExpirationDate
	}
	doc.DocType = in.DocType
	doc.Provider = in.Provider
	doc.PolicyNumber = in.PolicyNumber
	doc.IssueDate = in.IssueDate
	if in.FileKey != "" {
		doc.FileKey = in.FileKey
	}
	doc.Notes = in.Notes

	if err := cs.Dynamo.PutItem(ctx, cs.Tables.Compliance, *doc); err != nil {
		return nil, err
	}
	classify(doc, time.Now().UTC())
	return doc, nil
}

// DeleteDocument removes the document row.
func (cs *ComplianceService) DeleteDocument(ctx context.Context, ownerID, docID string) error {
	if _, err := cs.GetDocument(ctx, ownerID, docID); err != nil {
		return err
	}
	return cs.Dynamo.DeleteItem(ctx, cs.Tables.Compliance, complianceKey(ownerID, docID))
}
