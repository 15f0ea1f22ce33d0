package handler

import (
	"net/http"

	"cemdon/internal/bookings/service"
	httputil "cemdon/pkg/http"
	"cemdon/pkg/logger"
	"cemdon/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Areas(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Areas()); err != nil {
		h.log.Error("failed to write success response", "handler", "Areas", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) TimeSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.TimeSlots()); err != nil {
		h.log.Error("failed to write success response", "handler", "TimeSlots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Dates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.DateWindow()); err != nil {
		h.log.Error("failed to write success response", "handler", "Dates", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) StartSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	view, err := h.service.StartSession(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "StartSession", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, view); err != nil {
		h.log.Error("failed to write created response", "handler", "StartSession", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.service.GetSession(r.Context(), ps.ByName("token"))
	h.writeView(w, "GetSession", view, err)
}

func (h *BookingHandler) SelectArea(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.SelectAreaRequest
	if !h.decode(w, r, "SelectArea", &req) {
		return
	}
	view, err := h.service.SelectArea(r.Context(), ps.ByName("token"), &req)
	h.writeView(w, "SelectArea", view, err)
}

func (h *BookingHandler) SelectDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.SelectDateRequest
	if !h.decode(w, r, "SelectDate", &req) {
		return
	}
	view, err := h.service.SelectDate(r.Context(), ps.ByName("token"), &req)
	h.writeView(w, "SelectDate", view, err)
}

func (h *BookingHandler) SelectTime(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.SelectTimeRequest
	if !h.decode(w, r, "SelectTime", &req) {
		return
	}
	view, err := h.service.SelectTime(r.Context(), ps.ByName("token"), &req)
	h.writeView(w, "SelectTime", view, err)
}

func (h *BookingHandler) UpdateContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.ContactUpdate
	if !h.decode(w, r, "UpdateContact", &update) {
		return
	}
	view, err := h.service.UpdateContact(r.Context(), ps.ByName("token"), &update)
	h.writeView(w, "UpdateContact", view, err)
}

func (h *BookingHandler) Advance(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.service.Advance(r.Context(), ps.ByName("token"))
	h.writeView(w, "Advance", view, err)
}

func (h *BookingHandler) Retreat(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.service.Retreat(r.Context(), ps.ByName("token"))
	h.writeView(w, "Retreat", view, err)
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.service.Submit(r.Context(), ps.ByName("token"))
	h.writeView(w, "Submit", view, err)
}

func (h *BookingHandler) decode(w http.ResponseWriter, r *http.Request, handler string, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
		}
		return false
	}
	return true
}

func (h *BookingHandler) writeView(w http.ResponseWriter, handler string, view *model.SessionView, err error) {
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/booking/areas", h.Areas)
	router.GET("/api/v1/booking/time-slots", h.TimeSlots)
	router.GET("/api/v1/booking/dates", h.Dates)
	router.POST("/api/v1/booking/sessions", h.StartSession)
	router.GET("/api/v1/booking/sessions/:token", h.GetSession)
	router.PUT("/api/v1/booking/sessions/:token/area", h.SelectArea)
	router.PUT("/api/v1/booking/sessions/:token/date", h.SelectDate)
	router.PUT("/api/v1/booking/sessions/:token/time", h.SelectTime)
	router.PATCH("/api/v1/booking/sessions/:token/contact", h.UpdateContact)
	router.POST("/api/v1/booking/sessions/:token/advance", h.Advance)
	router.POST("/api/v1/booking/sessions/:token/retreat", h.Retreat)
	router.POST("/api/v1/booking/sessions/:token/submit", h.Submit)
}
