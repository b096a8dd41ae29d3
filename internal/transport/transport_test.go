package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
	"github.com/ironsheep/thumbor-tools-mcp/internal/transport/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testServer = "https://img.example"
	testSource = "https://cdn.example/photo.jpg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(endpoint string, breakpoints []int, defaultLazy bool) *gin.Engine {
	h := NewImageHandler(render.New(endpoint, "", breakpoints), defaultLazy)
	return InitRoutes(h, zerolog.Nop(), time.Second)
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestURL(t *testing.T) {
	router := newRouter(testServer, nil, false)

	w := do(t, router, http.MethodPost, "/api/v1/url", `{
		"src": "https://cdn.example/photo.jpg?x=1",
		"options": {"size": {"width": 300}, "smart_crop": true, "filters": [{"name": "quality", "args": [80]}]}
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct{ URL string }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "https://img.example/unsafe/300x0/smart/filters:quality(80)/cdn.example/photo.jpg", got.URL)
}

func TestURL_MatchesCore(t *testing.T) {
	router := newRouter(testServer, nil, false)
	opts := thumbor.Options{
		FitIn:           true,
		Size:            thumbor.Size{Width: 64, Height: 64},
		HorizontalAlign: thumbor.AlignCenter,
		VerticalAlign:   thumbor.AlignMiddle,
		Filters:         []thumbor.Filter{thumbor.FillNamed("blur")},
	}
	body, err := json.Marshal(render.Props{Src: testSource, Options: opts})
	require.NoError(t, err)

	w := do(t, router, http.MethodPost, "/api/v1/url", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	want, err := thumbor.BuildURL(testServer, testSource, opts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"`+want+`"}`, w.Body.String())
}

func TestSrcset(t *testing.T) {
	router := newRouter(testServer, []int{320, 640}, false)

	w := do(t, router, http.MethodPost, "/api/v1/srcset", `{"src": "`+testSource+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got thumbor.ResponsiveSet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t,
		"https://img.example/unsafe/320x0/cdn.example/photo.jpg 320w,https://img.example/unsafe/640x0/cdn.example/photo.jpg 640w",
		got.CandidateSet)
	assert.Equal(t, "https://img.example/unsafe/640x0/cdn.example/photo.jpg", got.FallbackURL)
}

func TestImg(t *testing.T) {
	tests := []struct {
		name        string
		defaultLazy bool
		body        string
		wantLazy    bool
	}{
		{"eager", false, `{"src": "` + testSource + `"}`, false},
		{"configured lazy", true, `{"src": "` + testSource + `"}`, true},
		{"request overrides config", true, `{"src": "` + testSource + `", "lazy": false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(testServer, []int{160}, tt.defaultLazy)

			w := do(t, router, http.MethodPost, "/api/v1/img", tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

			html := w.Body.String()
			assert.True(t, strings.HasPrefix(html, "<img "), html)
			assert.Equal(t, tt.wantLazy, strings.Contains(html, `class="lazyload"`), html)
		})
	}
}

func TestImg_Attributes(t *testing.T) {
	router := newRouter(testServer, []int{160}, false)

	w := do(t, router, http.MethodPost, "/api/v1/img",
		`{"src": "`+testSource+`", "attributes": {"alt": "x", "src": "https://evil.example/a.jpg"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.Contains(t, html, `alt="x"`)
	assert.NotContains(t, html, "evil.example")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		path     string
		body     string
		wantErr  string
	}{
		{"malformed json", testServer, "/api/v1/url", `{"src":`, ""},
		{"missing endpoint", "", "/api/v1/url", `{"src": "` + testSource + `"}`, thumbor.ErrMissingEndpoint.Error()},
		{"relative source", testServer, "/api/v1/url", `{"src": "/photo.jpg"}`, thumbor.ErrMalformedSourceURL.Error()},
		{"empty ladder", testServer, "/api/v1/srcset", `{"src": "` + testSource + `", "breakpoints": []}`, thumbor.ErrEmptyBreakpointSet.Error()},
		{"negative width", testServer, "/api/v1/srcset", `{"src": "` + testSource + `", "breakpoints": [-1]}`, thumbor.ErrInvalidBreakpoint.Error()},
		{"bad attribute", testServer, "/api/v1/img", `{"src": "` + testSource + `", "attributes": {"on click": "x"}}`, render.ErrInvalidAttribute.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(tt.endpoint, nil, false)

			w := do(t, router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var got struct{ Error string }
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Error)
			assert.Contains(t, got.Error, tt.wantErr)
		})
	}
}

func TestBreakpoints(t *testing.T) {
	w := do(t, newRouter(testServer, nil, false), http.MethodGet, "/api/v1/breakpoints", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"breakpoints":[160,360,480,720,960,1024]}`, w.Body.String())

	w = do(t, newRouter(testServer, []int{100}, false), http.MethodGet, "/api/v1/breakpoints", "")
	assert.JSONEq(t, `{"breakpoints":[100]}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	w := do(t, newRouter("", nil, false), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	router := newRouter(testServer, nil, false)

	w := do(t, router, http.MethodGet, "/health", "")
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	h := NewImageHandler(render.New(testServer, "", nil), false)
	router := InitRoutes(h, zerolog.New(&buf), 0)

	do(t, router, http.MethodPost, "/api/v1/url", `{"src": "nope"}`)

	var evt map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &evt))
	assert.Equal(t, "warn", evt["level"])
	assert.Equal(t, float64(http.StatusBadRequest), evt["status"])
	assert.Equal(t, "/api/v1/url", evt["path"])
	assert.NotEmpty(t, evt["request_id"])
	assert.Contains(t, evt["error"], "malformed source image URL")
}
