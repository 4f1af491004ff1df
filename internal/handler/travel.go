package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/travel"
)

// ListCurrencies handles GET /currency.
func (s *Server) ListCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.Currencies{Codes: travel.Currencies()})
}

// ConvertCurrency handles GET /currency/convert?amount=&from=&to=.
// from defaults to USD and to defaults to VND.
func (s *Server) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := domain.ParseAmount(q.Get("amount"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(domain.MsgInvalidAmount))
		return
	}
	from, to := "USD", "VND"
	if v := q.Get("from"); v != "" {
		from = v
	}
	if v := q.Get("to"); v != "" {
		to = v
	}

	conv, err := travel.Convert(amount, from, to)
	if err != nil {
		if errors.Is(err, travel.ErrUnknownCurrency) {
			writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
			return
		}
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, api.FromConversion(conv))
}

// GetWeather handles GET /weather?location=.
func (s *Server) GetWeather(w http.ResponseWriter, r *http.Request) {
	forecast, err := travel.Weather(r.URL.Query().Get("location"), s.deps.Now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("location is required"))
		return
	}
	writeJSON(w, http.StatusOK, api.FromForecast(forecast))
}
