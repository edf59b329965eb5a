package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterJobRoutes sets up routes for jobs and their expenses under /api/jobs
func RegisterJobRoutes(r *mux.Router, auth mux.MiddlewareFunc, jobService *services.JobService, expenseService *services.ExpenseService) {
	jobController := controllers.NewJobController(jobService)
	expenseController := controllers.NewExpenseController(expenseService)

	// Create a subrouter for /api/jobs
	jobRouter := r.PathPrefix("/api/jobs").Subrouter()
	jobRouter.Use(auth)

	jobRouter.HandleFunc("", jobController.CreateJob).Methods("POST")
	jobRouter.HandleFunc("", jobController.ListJobs).Methods("GET")
	jobRouter.HandleFunc("/{jobId}", jobController.GetJob).Methods("GET")
	jobRouter.HandleFunc("/{jobId}", jobController.UpdateJob).Methods("PUT")
	jobRouter.HandleFunc("/{jobId}", jobController.DeleteJob).Methods("DELETE")

	// Expenses live under their job
	jobRouter.HandleFunc("/{jobId}/expenses", expenseController.AddExpense).Methods("POST")
	jobRouter.HandleFunc("/{jobId}/expenses", expenseController.ListExpenses).Methods("GET")
	jobRouter.HandleFunc("/{jobId}/expenses/{expenseId}", expenseController.DeleteExpense).Methods("DELETE")
}
