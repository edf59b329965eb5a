package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// ExpenseController handles the per-job expense ledger.
type ExpenseController struct {
	ExpenseService *services.ExpenseService
}

// NewExpenseController creates a new instance of ExpenseController.
func NewExpenseController(expenseService *services.ExpenseService) *ExpenseController {
	return &ExpenseController{ExpenseService: expenseService}
}

func (c *ExpenseController) AddExpense(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	var input services.ExpenseInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := c.ExpenseService.AddExpense(r.Context(), ownerID, jobID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, expense)
}

func (c *ExpenseController) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	summary, err := c.ExpenseService.ListExpenses(r.Context(), ownerID, jobID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (c *ExpenseController) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	vars := mux.Vars(r)

	if err := c.ExpenseService.DeleteExpense(r.Context(), ownerID, vars["jobId"], vars["expenseId"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}
