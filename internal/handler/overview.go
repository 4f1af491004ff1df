package handler

import (
	"net/http"

	"github.com/google/uuid"
)

// ListAllActivities handles GET /activities, the activity overview across
// every trip. Supports ?page=, ?limit= (default 9), ?sort= and ?type=.
func (s *Server) ListAllActivities(w http.ResponseWriter, r *http.Request) {
	h := s.activities()
	h.pageSize = OverviewPageSize
	h.listFor(w, r, uuid.Nil)
}
