package handler

import (
	"errors"
	"net/http"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/usecase"
	"ferry-schedule-service/pkg/utils"

	"github.com/julienschmidt/httprouter"
)

// GetSchedule handles GET /api/schedule/:id. The optional "at" query parameter
// (24-hour HH:MM) evaluates the schedule at that time of day instead of now.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	var (
		schedule *entity.ScheduleResult
		err      error
	)
	if at := r.URL.Query().Get("at"); at != "" {
		minutes, parseErr := utils.ParseClock(at)
		if parseErr != nil {
			h.errorResponse(w, http.StatusBadRequest, parseErr.Error())
			return
		}
		schedule, err = h.schedules.GetScheduleAt(r.Context(), id, minutes)
	} else {
		schedule, err = h.schedules.GetSchedule(r.Context(), id)
	}

	if err != nil {
		if errors.Is(err, usecase.ErrRouteNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Route not found")
			return
		}
		h.logger.Error("Schedule route error", "routeID", id, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build schedule")
		return
	}

	h.writeJSON(w, http.StatusOK, schedule)
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}
