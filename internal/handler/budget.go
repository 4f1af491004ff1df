package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// GetBudget handles GET /trips/{tripId}/budget: the trip's expense total and
// its per-category breakdown.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	expenses, err := s.deps.Expenses.ListAll(r.Context(), tripID)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, api.FromBudget(tripID, domain.SumExpenses(expenses)))
}
