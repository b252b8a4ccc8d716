package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/candidatos-info/diretorio/candidates"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	allowOrigin     = "*"
	allowMethods    = "GET,OPTIONS"
	allowHeaders    = "Content-Type"
)

// errorResponse is the body of every error answer
type errorResponse struct {
	Error string `json:"error"`
}

// New returns the HTTP server for the candidates on store. Only
// GET /api/candidates and GET /api/stats exist; OPTIONS on any path is a
// CORS preflight and everything else is a JSON 404.
func New(store *candidates.Store) *echo.Echo {
	h := &Handler{store: store}
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler
	e.Pre(preflight)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.GET("/api/candidates", h.ListCandidates)
	e.GET("/api/stats", h.Stats)
	return e
}

// preflight answers OPTIONS requests before routing so every path,
// known or not, gets the CORS headers.
func preflight(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodOptions {
			return next(c)
		}
		header := c.Response().Header()
		header.Set("Access-Control-Allow-Origin", allowOrigin)
		header.Set("Access-Control-Allow-Methods", allowMethods)
		header.Set("Access-Control-Allow-Headers", allowHeaders)
		return c.NoContent(http.StatusNoContent)
	}
}

// errorHandler turns unknown routes and unsupported methods into 404;
// any other error is a 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code = http.StatusNotFound
			message = "Not found"
		default:
			code = he.Code
			message = http.StatusText(code)
		}
	}
	if code == http.StatusInternalServerError {
		log.Printf("failed to handle [%s %s], error %v\n", c.Request().Method, c.Request().URL.Path, err)
	}
	if err := writeJSON(c, code, errorResponse{Error: message}); err != nil {
		log.Printf("failed to write error response, error %v\n", err)
	}
}

// writeJSON sends v with the content type and CORS origin every JSON
// answer carries.
func writeJSON(c echo.Context, code int, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.Response().Header().Set("Access-Control-Allow-Origin", allowOrigin)
	return c.Blob(code, contentTypeJSON, b)
}
