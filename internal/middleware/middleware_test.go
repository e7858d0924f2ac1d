package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/gym-membership/internal/config"
	"github.com/deppfellow/gym-membership/internal/errs"
	"github.com/deppfellow/gym-membership/internal/server"
	"github.com/deppfellow/gym-membership/internal/sqlerr"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{Port: "8080"},
		},
		Logger: &logger,
	}
}

func TestRequestID(t *testing.T) {
	run := func(header string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(RequestIDHeader, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := RequestID()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		require.NoError(t, h(c))
		return c, rec
	}

	t.Run("Reuses", func(t *testing.T) {
		c, rec := run("abc-123")
		assert.Equal(t, "abc-123", GetRequestID(c))
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("Generates", func(t *testing.T) {
		c, rec := run("")
		assert.Len(t, GetRequestID(c), 36)
		assert.Equal(t, GetRequestID(c), rec.Header().Get(RequestIDHeader))
	})
}

func TestRequireIntParam(t *testing.T) {
	tests := map[string]bool{
		"1":                   true,
		"0":                   true,
		"007":                 true,
		"9223372036854775807": true,
		"9223372036854775808": false,
		"-1":                  false,
		"+1":                  false,
		"abc":                 false,
		"1.5":                 false,
		"":                    false,
	}

	for value, ok := range tests {
		t.Run(value, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/members/x", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(value)

			called := false
			err := RequireIntParam("id")(func(echo.Context) error {
				called = true
				return nil
			})(c)

			assert.Equal(t, ok, called)
			if ok {
				assert.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusNotFound, httpErr.Status)
		})
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"Route", echo.ErrNotFound, http.StatusNotFound, "Not found"},
		{"Method", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{"Unsupported", echo.ErrUnsupportedMediaType, http.StatusBadRequest, "Bad request"},
		{"RateLimited", echo.ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
		{"DriverFailure", sqlerr.Wrap("fetch member", errors.New("x")), http.StatusInternalServerError, "Database operation failed"},
		{"Constraint", sqlerr.Wrap("create member", &pgconn.PgError{Code: "23505"}), http.StatusInternalServerError, "Database operation failed"},
		{"Panic", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		{"Passthrough", errs.NewBadRequestError(nil), http.StatusBadRequest, "Bad request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := toHTTPError(tt.err)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.body, httpErr.Message)
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("WritesErrorBodyAndLogsCause", func(t *testing.T) {
		var buf bytes.Buffer
		global := NewGlobalMiddlewares(newTestServer(&buf))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/members", nil), rec)
		logger := zerolog.New(&buf)
		c.Set(LoggerKey, &logger)

		cause := sqlerr.Wrap("list members", &pgconn.PgError{Code: "42P01", TableName: "members"})
		global.GlobalErrorHandler(cause, c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Database operation failed"}`, rec.Body.String())
		assert.Contains(t, buf.String(), `"sql_state":"42P01"`)
		assert.Contains(t, buf.String(), `"db_operation":"list members"`)
	})

	t.Run("HeadHasNoBody", func(t *testing.T) {
		var buf bytes.Buffer
		global := NewGlobalMiddlewares(newTestServer(&buf))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/nowhere", nil), rec)

		global.GlobalErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	ce := NewContextEnhancer(newTestServer(&buf))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/members", nil), httptest.NewRecorder())
	c.Set(RequestIDKey, "req-1")

	h := ce.EnhanceContext()(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		GetLogger(c).Info().Msg("from handler")
		return nil
	})
	require.NoError(t, h(c))

	assert.Contains(t, buf.String(), `"message":"from service"`)
	assert.Contains(t, buf.String(), `"message":"from handler"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"request_id":"req-1"`)))
}
