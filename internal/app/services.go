package app

import (
	"github.com/yungbote/vocab-builder/internal/platform/logger"
	"github.com/yungbote/vocab-builder/internal/services"
)

type Services struct {
	Word services.WordService
}

func wireServices(log *logger.Logger, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	var cache services.WordCache
	if clients.WordCache != nil {
		cache = clients.WordCache
	}
	return Services{
		Word: services.NewWordService(log, repos.Word, cache),
	}
}
