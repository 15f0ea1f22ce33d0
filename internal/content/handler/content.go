package handler

import (
	"net/http"
	"strconv"

	"cemdon/internal/content"
	apperrors "cemdon/pkg/errors"
	httputil "cemdon/pkg/http"
	"cemdon/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type ContentHandler struct {
	catalog *content.Catalog
	log     *logger.Logger
}

func NewContentHandler(catalog *content.Catalog, log *logger.Logger) *ContentHandler {
	return &ContentHandler{
		catalog: catalog,
		log:     log,
	}
}

func (h *ContentHandler) Specialties(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Specialties", h.catalog.Specialties())
}

func (h *ContentHandler) ProcessSteps(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "ProcessSteps", h.catalog.ProcessSteps())
}

// Staff serves the carousel window; ?index= selects the first visible card.
func (h *ContentHandler) Staff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	index, err := httputil.QueryInt(r, "index", 0)
	if err != nil {
		h.fail(w, "Staff", err)
		return
	}
	h.write(w, "Staff", h.catalog.StaffPage(index))
}

func (h *ContentHandler) Testimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Testimonials", h.catalog.Testimonials())
}

func (h *ContentHandler) Testimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	raw := ps.ByName("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.fail(w, "Testimonial", apperrors.InvalidInput("invalid testimonial index: "+raw))
		return
	}

	page, err := h.catalog.TestimonialPage(index)
	if err != nil {
		h.fail(w, "Testimonial", apperrors.NotFound("Testimonial"))
		return
	}
	h.write(w, "Testimonial", page)
}

func (h *ContentHandler) Articles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Articles", h.catalog.Articles())
}

func (h *ContentHandler) Notifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Notifications", h.catalog.Notifications())
}

func (h *ContentHandler) Clinic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Clinic", h.catalog.Clinic())
}

func (h *ContentHandler) write(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *ContentHandler) fail(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ContentHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/content/specialties", h.Specialties)
	router.GET("/api/v1/content/process", h.ProcessSteps)
	router.GET("/api/v1/content/staff", h.Staff)
	router.GET("/api/v1/content/testimonials", h.Testimonials)
	router.GET("/api/v1/content/testimonials/:index", h.Testimonial)
	router.GET("/api/v1/content/articles", h.Articles)
	router.GET("/api/v1/content/app-notifications", h.Notifications)
	router.GET("/api/v1/content/clinic", h.Clinic)
}
