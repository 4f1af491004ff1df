package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// filter maps a query parameter onto an equality filter on column.
type filter struct {
	column string
	parse  func(string) (any, error)
}

func stringFilter(column string) filter {
	return filter{column: column, parse: func(s string) (any, error) { return s, nil }}
}

// typeFilter is a string filter where "all" means no filtering.
func typeFilter(column string) filter {
	return filter{column: column, parse: func(s string) (any, error) {
		if strings.EqualFold(s, "all") {
			return nil, nil
		}
		return s, nil
	}}
}

func boolFilter(column string) filter {
	return filter{column: column, parse: func(s string) (any, error) { return strconv.ParseBool(s) }}
}

// resourceHandler serves the CRUD routes of one trip-owned entity type.
// D is the JSON shape of T and DP the JSON shape of its patch.
type resourceHandler[T any, P any, D interface{ ToDomain() T }, DP interface{ ToDomain() P }] struct {
	path     string // URL segment, e.g. "packing-items"
	notFound string
	svc      ResourceServicer[T, P]
	toJSON   func(T) D
	filters  map[string]filter
	// pageSize overrides the default page size when ?limit= is absent.
	// Zero keeps the API default.
	pageSize int
}

// mount registers the entity's routes:
//
//	GET    /trips/{tripId}/<path>
//	POST   /trips/{tripId}/<path>
//	GET    /<path>/{id}
//	PATCH  /<path>/{id}
//	DELETE /<path>/{id}
func (h *resourceHandler[T, P, D, DP]) mount(r chi.Router) {
	r.Get("/trips/{tripId}/"+h.path, h.list)
	r.Post("/trips/{tripId}/"+h.path, h.create)
	r.Get("/"+h.path+"/{id}", h.get)
	r.Patch("/"+h.path+"/{id}", h.update)
	r.Delete("/"+h.path+"/{id}", h.delete)
}

func (h *resourceHandler[T, P, D, DP]) list(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	h.listFor(w, r, tripID)
}

// listFor serves one page of entities, scoped to tripID unless it is uuid.Nil.
func (h *resourceHandler[T, P, D, DP]) listFor(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	page, err := pageParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	if h.pageSize > 0 && !r.URL.Query().Has("limit") {
		page.Limit = h.pageSize
	}
	orderBy, desc, err := sortParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	eq := map[string]any{}
	for name, f := range h.filters {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		v, err := f.parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, requestBody("invalid format for parameter "+name))
			return
		}
		if v == nil {
			continue
		}
		eq[f.column] = v
	}

	items, total, err := h.svc.List(r.Context(), tripID, service.ListParams{
		Page:    page,
		OrderBy: orderBy,
		Desc:    desc,
		Eq:      eq,
	})
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}

	data := make([]D, len(items))
	for i, item := range items {
		data[i] = h.toJSON(item)
	}
	writeJSON(w, http.StatusOK, api.List[D]{
		Data:       data,
		Pagination: api.Pagination{Page: page.Page, Limit: page.Limit, Total: int(total)},
	})
}

func (h *resourceHandler[T, P, D, DP]) create(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	var body D
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), tripID, body.ToDomain())
	if err != nil {
		writeError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, h.toJSON(created))
}

func (h *resourceHandler[T, P, D, DP]) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.notFound)
		return
	}
	writeJSON(w, http.StatusOK, h.toJSON(item))
}

func (h *resourceHandler[T, P, D, DP]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	var body DP
	if err := decodeBody(r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, body.ToDomain())
	if err != nil {
		writeError(w, r, err, h.notFound)
		return
	}
	writeJSON(w, http.StatusOK, h.toJSON(updated))
}

// delete always answers 204 on success; deleting an unknown id is not an error.
func (h *resourceHandler[T, P, D, DP]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, h.notFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivityPageSize is the page size of trip activity lists when the client
// does not ask for one.
const ActivityPageSize = 5

// OverviewPageSize is the page size of the cross-trip activity overview.
const OverviewPageSize = 9

func (s *Server) activities() *resourceHandler[domain.Activity, domain.ActivityPatch, api.Activity, api.ActivityPatch] {
	return &resourceHandler[domain.Activity, domain.ActivityPatch, api.Activity, api.ActivityPatch]{
		path:     "activities",
		notFound: "activity not found",
		svc:      s.deps.Activities,
		toJSON:   api.FromActivity,
		filters:  map[string]filter{"type": typeFilter("type"), "location": stringFilter("location")},
		pageSize: ActivityPageSize,
	}
}

func (s *Server) expenses() *resourceHandler[domain.Expense, domain.ExpensePatch, api.Expense, api.ExpensePatch] {
	return &resourceHandler[domain.Expense, domain.ExpensePatch, api.Expense, api.ExpensePatch]{
		path:     "expenses",
		notFound: "expense not found",
		svc:      s.deps.Expenses,
		toJSON:   api.FromExpense,
		filters:  map[string]filter{"category": stringFilter("category")},
	}
}

func (s *Server) packingItems() *resourceHandler[domain.PackingItem, domain.PackingItemPatch, api.PackingItem, api.PackingItemPatch] {
	return &resourceHandler[domain.PackingItem, domain.PackingItemPatch, api.PackingItem, api.PackingItemPatch]{
		path:     "packing-items",
		notFound: "packing item not found",
		svc:      s.deps.PackingItems,
		toJSON:   api.FromPackingItem,
		filters:  map[string]filter{"packed": boolFilter("packed")},
	}
}

func (s *Server) flights() *resourceHandler[domain.Flight, domain.FlightPatch, api.Flight, api.FlightPatch] {
	return &resourceHandler[domain.Flight, domain.FlightPatch, api.Flight, api.FlightPatch]{
		path:     "flights",
		notFound: "flight not found",
		svc:      s.deps.Flights,
		toJSON:   api.FromFlight,
		filters:  map[string]filter{"airline": stringFilter("airline")},
	}
}

func (s *Server) hotels() *resourceHandler[domain.Hotel, domain.HotelPatch, api.Hotel, api.HotelPatch] {
	return &resourceHandler[domain.Hotel, domain.HotelPatch, api.Hotel, api.HotelPatch]{
		path:     "hotels",
		notFound: "hotel not found",
		svc:      s.deps.Hotels,
		toJSON:   api.FromHotel,
	}
}
