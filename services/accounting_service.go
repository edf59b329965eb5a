package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"subtrack_server/models"
	"subtrack_server/utils"

	"golang.org/x/oauth2"
)

// AccountingService pushes paid invoices to the owner's accounting provider.
// Sync is best-effort: an owner without a connected provider is skipped, and
// a failed push is logged, never surfaced to the payment flow.
type AccountingService struct {
	APIBase  string
	OAuth    *oauth2.Config
	Profiles *SubscriptionService
}

// NewAccountingService wires the OAuth2 client config for the provider.
func NewAccountingService(apiBase, clientID, clientSecret, tokenURL string, profiles *SubscriptionService) *AccountingService {
	return &AccountingService{
		APIBase: apiBase,
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
		},
		Profiles: profiles,
	}
}

// Connect exchanges an authorization code and stores the tokens on the
// owner's profile.
func (as *AccountingService) Connect(ctx context.Context, ownerID, code, realmID string) error {
	token, err := as.OAuth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return as.Profiles.SaveAccountingTokens(ctx, ownerID,
		token.AccessToken, token.RefreshToken, token.Expiry.UTC().Format(time.RFC3339), realmID)
}

// Connected reports whether the owner has a stored provider token.
func (as *AccountingService) Connected(ctx context.Context, ownerID string) (bool, error) {
	profile, err := as.Profiles.GetProfile(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return profile.AccountingAccessToken != "", nil
}

// SyncPaidInvoice posts one paid invoice to the provider.
func (as *AccountingService) SyncPaidInvoice(ctx context.Context, invoice *models.Invoice) error {
	profile, err := as.Profiles.GetProfile(ctx, invoice.OwnerID)
	if err != nil {
		return err
	}
	if profile.AccountingAccessToken == "" {
		log.Printf("Owner %s has no accounting provider connected, skipping sync", invoice.OwnerID)
		return nil
	}

	token := &oauth2.Token{
		AccessToken:  profile.AccountingAccessToken,
		RefreshToken: profile.AccountingRefreshToken,
		Expiry:       utils.ParseISO(profile.AccountingTokenExpiry),
	}
	client := as.OAuth.Client(ctx, token)

	body, err := json.Marshal(map[string]interface{}{
		"externalId": invoice.InvoiceID,
		"customer":   invoice.ClientName,
		"amount":     invoice.Amount,
		"paidAt":     invoice.PaidAt,
		"realmId":    profile.AccountingRealmID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, as.APIBase+"/invoices", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("accounting sync request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("accounting provider returned status %d", resp.StatusCode)
	}
	return nil
}
