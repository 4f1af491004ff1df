package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler returns an http.Handler with every route of s mounted on a new chi
// router.
func Handler(s *Server) http.Handler {
	return HandlerFromMux(s, chi.NewRouter())
}

// HandlerFromMux mounts the routes of s on r and returns r. Routes whose
// service is nil in Deps are not mounted.
func HandlerFromMux(s *Server, r chi.Router) http.Handler {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	if s.deps.Trips != nil {
		r.Get("/trips", s.ListTrips)
		r.Post("/trips", s.CreateTrip)
		r.Get("/trips/{tripId}", s.GetTrip)
		r.Put("/trips/{tripId}", s.UpdateTrip)
		r.Delete("/trips/{tripId}", s.DeleteTrip)
	}
	if s.deps.Activities != nil {
		s.activities().mount(r)
		r.Get("/activities", s.ListAllActivities)
	}
	if s.deps.Expenses != nil {
		s.expenses().mount(r)
		r.Get("/trips/{tripId}/budget", s.GetBudget)
	}
	if s.deps.PackingItems != nil {
		s.packingItems().mount(r)
	}
	if s.deps.Flights != nil {
		s.flights().mount(r)
	}
	if s.deps.Hotels != nil {
		s.hotels().mount(r)
	}

	r.HandleFunc("/chat", s.PostChat)
	r.Get("/currency", s.ListCurrencies)
	r.Get("/currency/convert", s.ConvertCurrency)
	r.Get("/weather", s.GetWeather)
	return r
}
