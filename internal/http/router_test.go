package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type echoBody struct {
	Name string `json:"name" form:"name"`
}

func echoRoutes(r gin.IRoutes) {
	r.POST("/echo", func(c *gin.Context) {
		var body echoBody
		if err := c.ShouldBind(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	})
}

func newTestRouter(routes ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{
		Log:             logger.Nop(),
		Routes:          routes,
		MaxRequestBytes: 100 << 10,
	})
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUnmatchedRequestEchoesOriginalURL(t *testing.T) {
	r := newTestRouter()

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/nonexistent?x=1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"url":"/nonexistent?x=1 not found"}`, strings.TrimSpace(rec.Body.String()))
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestUnmatchedRequestKeepsRawTarget(t *testing.T) {
	r := newTestRouter()

	cases := []string{
		"/a/b/c",
		"/search?q=a&b=<c>",
		"/caf%C3%A9?x=%20",
		"/",
	}
	for _, target := range cases {
		rec := serve(r, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, `{"url":"`+target+` not found"}`, strings.TrimSpace(rec.Body.String()), target)
	}
}

func TestUnregisteredMethodFallsThroughTo404(t *testing.T) {
	r := newTestRouter(echoRoutes)

	rec := serve(r, httptest.NewRequest(http.MethodDelete, "/echo", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"url":"/echo not found"}`, strings.TrimSpace(rec.Body.String()))
}

func TestRegistrarsRunInOrder(t *testing.T) {
	var order []string
	first := func(r gin.IRoutes) { order = append(order, "first") }
	second := func(r gin.IRoutes) { order = append(order, "second") }

	newTestRouter(first, nil, second)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBodiesAreParsedAsJSONAndURLEncoded(t *testing.T) {
	r := newTestRouter(echoRoutes)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"json"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(r, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"name":"json"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(url.Values{"name": {"form"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = serve(r, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"name":"form"}`, rec.Body.String())
}

func TestOversizedBodyRejected(t *testing.T) {
	r := newTestRouter(echoRoutes)

	big := strings.Repeat("a", 200<<10)
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"`+big+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(r, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCrossOriginHeadersOnMatchedAndUnmatched(t *testing.T) {
	r := newTestRouter(echoRoutes)

	for _, target := range []string{"/echo", "/nowhere"} {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://elsewhere.example.org")
		rec := serve(r, req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
	}

	req := httptest.NewRequest(http.MethodOptions, "/nowhere", nil)
	req.Header.Set("Origin", "https://elsewhere.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := serve(r, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestResponsesCarryRequestIDs(t *testing.T) {
	r := newTestRouter()
	rec := serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRecoveryTurnsPanicsInto500(t *testing.T) {
	r := newTestRouter(func(r gin.IRoutes) {
		r.GET("/panic", func(c *gin.Context) { panic("boom") })
	})
	rec := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
