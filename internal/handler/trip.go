package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/api"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body api.TripRequest
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	created, err := s.deps.Trips.Create(r.Context(), body.ToDomain(uuid.Nil))
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, api.FromTrip(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	trips, total, err := s.deps.Trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}

	data := make([]api.Trip, len(trips))
	for i, t := range trips {
		data[i] = api.FromTrip(t)
	}
	writeJSON(w, http.StatusOK, api.List[api.Trip]{
		Data: data,
		Pagination: api.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	trip, err := s.deps.Trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, api.FromTrip(trip))
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	var body api.TripRequest
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	updated, err := s.deps.Trips.Update(r.Context(), body.ToDomain(id))
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, api.FromTrip(updated))
}

// DeleteTrip handles DELETE /trips/{tripId}. Everything the trip owns is
// removed with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	if err := s.deps.Trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
