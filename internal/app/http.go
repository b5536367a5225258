package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/vocab-builder/internal/http"
	httpH "github.com/yungbote/vocab-builder/internal/http/handlers"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Word   *httpH.WordHandler
}

func wireHandlers(log *logger.Logger, services Services, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(store),
		Word:   httpH.NewWordHandler(services.Word),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	log.Info("Wiring router...")
	tracing := ""
	if cfg.OTel.Enabled {
		tracing = cfg.OTel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:             log.With("component", "http"),
		MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
		TracingService:  tracing,
		Routes: []http.RouteRegistrar{
			handlers.Health.Register,
			handlers.Word.Register,
		},
	})
}
