package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpMW "github.com/yungbote/vocab-builder/internal/http/middleware"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

// RouteRegistrar attaches a group of routes to the engine.
type RouteRegistrar func(r gin.IRoutes)

type RouterConfig struct {
	Log *logger.Logger

	// Routes are applied in order after the middleware chain is installed.
	Routes []RouteRegistrar

	// MaxRequestBytes caps request bodies; <= 0 disables the cap.
	MaxRequestBytes int64

	// TracingService enables otelgin spans under this service name when set.
	TracingService string
}

// NotFoundBody is the fallback response for unmatched requests.
type NotFoundBody struct {
	URL string `json:"url"`
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())
	r.Use(httpMW.BodyLimit(cfg.MaxRequestBytes))

	for _, register := range cfg.Routes {
		if register != nil {
			register(r)
		}
	}

	r.NoRoute(NotFound)
	return r
}

// NotFound echoes the request target exactly as received. PureJSON keeps
// characters like '<' and '&' unescaped.
func NotFound(c *gin.Context) {
	target := c.Request.RequestURI
	if target == "" {
		target = c.Request.URL.RequestURI()
	}
	c.PureJSON(http.StatusNotFound, NotFoundBody{URL: target + " not found"})
}
