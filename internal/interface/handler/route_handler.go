package handler

import (
	"errors"
	"net/http"

	"ferry-schedule-service/internal/usecase"
	"ferry-schedule-service/pkg/utils"

	"github.com/julienschmidt/httprouter"
)

// RouteDetail is a route summary with its normalized service window
type RouteDetail struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	FromCity              string `json:"fromCity"`
	ToCity                string `json:"toCity"`
	FirstDeparture        string `json:"firstDeparture"`
	LastDeparture         string `json:"lastDeparture"`
	FirstDepartureMinutes int    `json:"firstDepartureMinutes"`
	LastDepartureMinutes  int    `json:"lastDepartureMinutes"`
	IntervalMinutes       int    `json:"intervalMinutes"`
}

// ListRoutes handles GET /api/routes
func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.schedules.ListRoutes(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch routes", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch routes")
		return
	}

	h.writeJSON(w, http.StatusOK, routes)
}

// GetRoute handles GET /api/routes/:id
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	def, err := h.schedules.GetRouteDefinition(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRouteNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Route not found")
			return
		}
		h.logger.Error("Failed to fetch route", "routeID", id, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch route")
		return
	}

	h.writeJSON(w, http.StatusOK, RouteDetail{
		ID:                    def.ID,
		Name:                  def.Name,
		FromCity:              def.FromCity,
		ToCity:                def.ToCity,
		FirstDeparture:        utils.FormatTimeLabel(def.FirstDepartureMinutes),
		LastDeparture:         utils.FormatTimeLabel(def.LastDepartureMinutes),
		FirstDepartureMinutes: def.FirstDepartureMinutes,
		LastDepartureMinutes:  def.LastDepartureMinutes,
		IntervalMinutes:       def.IntervalMinutes,
	})
}
