package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"subtrack_server/config"
	"subtrack_server/middleware"
	"subtrack_server/routes"
	"subtrack_server/services"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize AWS clients and the DynamoDB adapter
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	emailService := &services.EmailService{
		Client: services.InitializeSESClient(cfg.AWSRegion),
		Sender: cfg.SenderEmail,
	}
	smsService := &services.SMSService{Client: services.InitializeSNSClient(cfg.AWSRegion)}

	var s3Service *services.S3Service
	if cfg.S3Bucket != "" {
		s3Service = &services.S3Service{
			Client: services.InitializeS3Client(cfg.AWSRegion),
			Bucket: cfg.S3Bucket,
		}
	} else {
		log.Println("S3_BUCKET_NAME not set, document file uploads disabled")
	}

	// Initialize Services
	subscriptionService := &services.SubscriptionService{Dynamo: dynamoService, Tables: cfg.Tables}
	notificationService := &services.NotificationService{Dynamo: dynamoService, Tables: cfg.Tables}
	accountingService := services.NewAccountingService(
		cfg.AccountingAPIBase, cfg.AccountingClientID, cfg.AccountingClientSecret, cfg.AccountingTokenURL,
		subscriptionService)
	paymentService := services.NewPaymentService(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.AppBaseURL)

	jobService := &services.JobService{Dynamo: dynamoService, Tables: cfg.Tables, Gate: subscriptionService}
	expenseService := &services.ExpenseService{Dynamo: dynamoService, Tables: cfg.Tables, Jobs: jobService}
	estimateService := &services.EstimateService{
		Dynamo:        dynamoService,
		Tables:        cfg.Tables,
		Email:         emailService,
		Notifications: notificationService,
		AppURL:        cfg.AppBaseURL,
	}
	invoiceService := &services.InvoiceService{
		Dynamo:        dynamoService,
		Tables:        cfg.Tables,
		Jobs:          jobService,
		Gate:          subscriptionService,
		Email:         emailService,
		Accounting:    accountingService,
		Notifications: notificationService,
		AppURL:        cfg.AppBaseURL,
	}
	crewService := &services.CrewService{Dynamo: dynamoService, Tables: cfg.Tables, Gate: subscriptionService}
	assignmentService := &services.AssignmentService{
		Dynamo: dynamoService,
		Tables: cfg.Tables,
		Jobs:   jobService,
		Crew:   crewService,
		SMS:    smsService,
	}
	complianceService := &services.ComplianceService{Dynamo: dynamoService, Tables: cfg.Tables}
	dashboardService := &services.DashboardService{
		Jobs:       jobService,
		Invoices:   invoiceService,
		Compliance: complianceService,
	}
	reportService := &services.ReportService{
		Jobs:     jobService,
		Invoices: invoiceService,
		Expenses: expenseService,
	}
	reminderService := &services.ReminderService{
		Dynamo:   dynamoService,
		Tables:   cfg.Tables,
		Invoices: invoiceService,
		Gate:     subscriptionService,
		Email:    emailService,
		AppURL:   cfg.AppBaseURL,
	}

	// Initialize the router
	r := mux.NewRouter()
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SubTrack")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterJobRoutes(r, auth, jobService, expenseService)
	routes.RegisterEstimateRoutes(r, auth, estimateService, jobService)
	routes.RegisterInvoiceRoutes(r, auth, invoiceService)
	routes.RegisterCrewRoutes(r, auth, crewService)
	routes.RegisterAssignmentRoutes(r, auth, assignmentService)
	routes.RegisterComplianceRoutes(r, auth, complianceService, s3Service)
	routes.RegisterNotificationRoutes(r, auth, notificationService)
	routes.RegisterSubscriptionRoutes(r, auth, subscriptionService, accountingService)
	routes.RegisterDashboardRoutes(r, auth, dashboardService, reportService, subscriptionService)
	routes.RegisterReminderRoutes(r, auth, reminderService)
	routes.RegisterPublicRoutes(r, estimateService, assignmentService, invoiceService, paymentService, subscriptionService)

	// Schedule the daily invoice reminder sweep
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		summary, err := reminderService.Run(context.Background())
		if err != nil {
			log.Printf("Reminder sweep failed: %v", err)
			return
		}
		log.Printf("Reminder sweep: scanned=%d sent=%d skipped=%d failed=%d",
			summary.Scanned, summary.Sent, summary.Skipped, summary.Failed)
	}); err != nil {
		log.Fatalf("Failed to schedule reminder sweep: %v", err)
	}
	scheduler.Start()

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
