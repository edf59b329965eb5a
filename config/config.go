package config

import (
	"log"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Tables holds the DynamoDB table name for each entity.
type Tables struct {
	Jobs          string `env:"JOBS_TABLE,default=SubTrackJobs"`
	Expenses      string `env:"EXPENSES_TABLE,default=SubTrackExpenses"`
	Estimates     string `env:"ESTIMATES_TABLE,default=SubTrackEstimates"`
	Invoices      string `env:"INVOICES_TABLE,default=SubTrackInvoices"`
	CrewMembers   string `env:"CREW_TABLE,default=SubTrackCrewMembers"`
	Assignments   string `env:"ASSIGNMENTS_TABLE,default=SubTrackAssignments"`
	Compliance    string `env:"COMPLIANCE_TABLE,default=SubTrackComplianceDocs"`
	Notifications string `env:"NOTIFICATIONS_TABLE,default=SubTrackNotifications"`
	UserProfiles  string `env:"PROFILES_TABLE,default=SubTrackUserProfiles"`
}

// Config is built once in main and handed to every service constructor.
type Config struct {
	Port      string `env:"PORT,default=8080"`
	AWSRegion string `env:"AWS_REGION,default=us-east-1"`

	JWTSecret string `env:"JWT_SECRET,required"`

	S3Bucket string `env:"S3_BUCKET_NAME"`

	SenderEmail string `env:"SENDER_EMAIL,default=billing@subtrack.app"`
	AppBaseURL  string `env:"APP_BASE_URL,default=https://app.subtrack.app"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	AccountingAPIBase      string `env:"ACCOUNTING_API_BASE"`
	AccountingClientID     string `env:"ACCOUNTING_CLIENT_ID"`
	AccountingClientSecret string `env:"ACCOUNTING_CLIENT_SECRET"`
	AccountingTokenURL     string `env:"ACCOUNTING_TOKEN_URL"`

	Tables Tables
}

// Load reads .env if present and decodes the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
