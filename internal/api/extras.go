package api

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/travel"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Message string `json:"message"`
}

// Conversion is the body of GET /currency/convert.
type Conversion struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Result float64 `json:"result"`
}

func FromConversion(c travel.Conversion) Conversion {
	return Conversion{Amount: c.Amount, From: c.From, To: c.To, Rate: c.Rate, Result: c.Result}
}

// Currencies is the body of GET /currency.
type Currencies struct {
	Codes []string `json:"codes"`
}

// ForecastDay is one day of a weather forecast.
type ForecastDay struct {
	Date        openapi_types.Date `json:"date"`
	Temp        int                `json:"temp"`
	Description string             `json:"description"`
}

// Forecast is the body of GET /weather.
type Forecast struct {
	Location string        `json:"location"`
	Days     []ForecastDay `json:"days"`
}

func FromForecast(f travel.Forecast) Forecast {
	out := Forecast{Location: f.Location, Days: make([]ForecastDay, len(f.Days))}
	for i, d := range f.Days {
		out.Days[i] = ForecastDay{Date: toDate(d.Date), Temp: d.Temp, Description: d.Description}
	}
	return out
}
