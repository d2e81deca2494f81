package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "lastseen/internal/delivery/api/middleware"
	"lastseen/internal/delivery/api/validator"
	deliverycontext "lastseen/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope is the decoded response body.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// route describes one request against a single handler.
type route struct {
	method  string
	pattern string
	target  string
	body    string
	viewer  uuid.UUID // uuid.Nil sends the request unauthenticated
	handler echo.HandlerFunc
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func serve(t *testing.T, r route) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := newTestEcho()
	e.Add(r.method, r.pattern, r.handler, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.viewer != uuid.Nil {
				deliverycontext.SetViewerID(c, r.viewer)
			}

			return next(c)
		}
	})

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

// errorFields returns the per-field validation details.
func errorFields(env envelope) map[string]any {
	if env.Error == nil {
		return nil
	}
	fields, _ := env.Error.Details.(map[string]any)

	return fields
}

func errorCode(env envelope) string {
	if env.Error == nil {
		return ""
	}

	return env.Error.Code
}

