package services

import (
	"context"
	"strings"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CrewService owns crew members and their share tokens. A token is issued at
// creation and never changes for the life of the member.
type CrewService struct {
	Dynamo *DynamoService
	Tables config.Tables
	Gate   *SubscriptionService
}

// CrewInput carries the writable crew member fields.
type CrewInput struct {
	Name       string  `json:"name" validate:"required"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
}

func crewKey(ownerID, memberID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId":  &types.AttributeValueMemberS{Value: ownerID},
		"memberId": &types.AttributeValueMemberS{Value: memberID},
	}
}

// CreateCrewMember adds a member with a fresh share token.
func (cs *CrewService) CreateCrewMember(ctx context.Context, ownerID string, in CrewInput) (*models.CrewMember, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errValidation("Crew member name is required")
	}

	if cs.Gate != nil {
		if err := cs.Gate.CheckCrewCreate(ctx, ownerID); err != nil {
			return nil, err
		}
	}

	member := models.CrewMember{
		OwnerID:    ownerID,
		MemberID:   utils.NewID(),
		Name:       strings.TrimSpace(in.Name),
		Phone:      in.Phone,
		Email:      in.Email,
		Role:       in.Role,
		HourlyRate: in.HourlyRate,
		ShareToken: utils.NewShareToken(),
		Status:     models.CrewStatusActive,
		CreatedAt:  utils.NowISO(),
	}

	if err := cs.Dynamo.PutItem(ctx, cs.Tables.CrewMembers, member); err != nil {
		return nil, err
	}
	return &member, nil
}

// GetCrewMember fetches one member owned by the caller.
func (cs *CrewService) GetCrewMember(ctx context.Context, ownerID, memberID string) (*models.CrewMember, error) {
	item, err := cs.Dynamo.GetItem(ctx, cs.Tables.CrewMembers, crewKey(ownerID, memberID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNotFound("Crew member not found")
	}

	var member models.CrewMember
	if err := attributevalue.UnmarshalMap(item, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// ListCrewMembers returns all members for the owner.
func (cs *CrewService) ListCrewMembers(ctx context.Context, ownerID string) ([]models.CrewMember, error) {
	items, err := cs.Dynamo.QueryItems(ctx, cs.Tables.CrewMembers,
		"ownerId = :ownerId",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	members := make([]models.CrewMember, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateCrewMember rewrites the editable fields. The share token is immutable
// once issued.
func (cs *CrewService) UpdateCrewMember(ctx context.Context, ownerID, memberID string, in CrewInput, status string) (*models.CrewMember, error) {
	member, err := cs.GetCrewMember(ctx, ownerID, memberID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) != "" {
		member.Name = strings.TrimSpace(in.Name)
	}
	member.Phone = in.Phone
	member.Email = in.Email
	member.Role = in.Role
	member.HourlyRate = in.HourlyRate
	if status == models.CrewStatusActive || status == models.CrewStatusInactive {
		member.Status = status
	}

	if err := cs.Dynamo.PutItem(ctx, cs.Tables.CrewMembers, *member); err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteCrewMember removes the member row.
func (cs *CrewService) DeleteCrewMember(ctx context.Context, ownerID, memberID string) error {
	if _, err := cs.GetCrewMember(ctx, ownerID, memberID); err != nil {
		return err
	}
	return cs.Dynamo.DeleteItem(ctx, cs.Tables.CrewMembers, crewKey(ownerID, memberID))
}

// GetCrewMemberByToken resolves a member through the share-token index; this
// is the sole credential for the public crew view.
func (cs *CrewService) GetCrewMemberByToken(ctx context.Context, token string) (*models.CrewMember, error) {
	items, err := cs.Dynamo.QueryItemsWithIndex(ctx, cs.Tables.CrewMembers, models.CrewShareTokenIndex,
		"shareToken = :token",
		map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errNotFound("Crew member not found")
	}

	var member models.CrewMember
	if err := attributevalue.UnmarshalMap(items[0], &member); err != nil {
		return nil, err
	}
	return &member, nil
}
