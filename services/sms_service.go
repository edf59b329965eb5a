package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SMSService sends texts through SNS. Same contract as email: best-effort,
// caller records the per-recipient outcome.
type SMSService struct {
	Client *sns.Client
}

// InitializeSNSClient initializes the SNS client for a region.
func InitializeSNSClient(region string) *sns.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return sns.NewFromConfig(cfg)
}

// SendText publishes one SMS to a phone number.
func (ss *SMSService) SendText(ctx context.Context, phone, message string) error {
	_, err := ss.Client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to send SMS to %s: %w", phone, err)
	}
	return nil
}
