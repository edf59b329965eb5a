package services

import (
	"context"
	"log"
	"sort"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NotificationService records system events for an owner. Only the read flag
// is ever mutated after creation.
type NotificationService struct {
	Dynamo *DynamoService
	Tables config.Tables
}

func notificationKey(ownerID, notifID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId": &types.AttributeValueMemberS{Value: ownerID},
		"notifId": &types.AttributeValueMemberS{Value: notifID},
	}
}

// Notify writes a notification row. Failures are logged and swallowed; a
// notification must never fail the event that produced it.
func (ns *NotificationService) Notify(ctx context.Context, ownerID, notifType, title, message string) {
	notification := models.Notification{
		OwnerID:   ownerID,
		NotifID:   utils.NewID(),
		Type:      notifType,
		Title:     title,
		Message:   message,
		CreatedAt: utils.NowISO(),
	}
	if err := ns.Dynamo.PutItem(ctx, ns.Tables.Notifications, notification); err != nil {
		log.Printf("Failed to record notification for %s: %v", ownerID, err)
	}
}

// ListNotifications returns the owner's notifications, newest first.
func (ns *NotificationService) ListNotifications(ctx context.Context, ownerID string) ([]models.Notification, error) {
	items, err := ns.Dynamo.QueryItems(ctx, ns.Tables.Notifications,
		"ownerId = :ownerId",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, err
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt > notifications[j].CreatedAt
	})
	return notifications, nil
}

// MarkRead flips one notification's read flag.
func (ns *NotificationService) MarkRead(ctx context.Context, ownerID, notifID string) error {
	_, err := ns.Dynamo.UpdateItem(ctx, ns.Tables.Notifications,
		"SET #read = :read",
		notificationKey(ownerID, notifID),
		map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{"#read": "read"})
	return err
}

// MarkAllRead flips every unread notification for the owner.
func (ns *NotificationService) MarkAllRead(ctx context.Context, ownerID string) error {
	notifications, err := ns.ListNotifications(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if n.Read {
			continue
		}
		if err := ns.MarkRead(ctx, ownerID, n.NotifID); err != nil {
			return err
		}
	}
	return nil
}
