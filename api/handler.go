package api

import (
	"net/http"

	"github.com/candidatos-info/diretorio/candidates"
	"github.com/labstack/echo"
)

// Handler serves the candidates of one store.
type Handler struct {
	store *candidates.Store
}

// ListCandidates handles GET /api/candidates?page=&limit=. Invalid
// parameters are clamped, never rejected.
func (h *Handler) ListCandidates(c echo.Context) error {
	if !h.store.Ready() {
		return unavailable(c)
	}
	page := candidates.ParsePage(c.QueryParam("page"))
	limit := candidates.ParseLimit(c.QueryParam("limit"))
	return writeJSON(c, http.StatusOK, h.store.Page(page, limit))
}

// Stats handles GET /api/stats
func (h *Handler) Stats(c echo.Context) error {
	if !h.store.Ready() {
		return unavailable(c)
	}
	return writeJSON(c, http.StatusOK, h.store.Stats())
}

func unavailable(c echo.Context) error {
	return writeJSON(c, http.StatusServiceUnavailable, errorResponse{Error: "Service unavailable"})
}
