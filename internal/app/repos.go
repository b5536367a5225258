package app

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/vocab-builder/internal/data/repos/vocab"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
)

type Repos struct {
	Word vocab.WordRepo
}

func wireRepos(db *mongo.Database, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Word: vocab.NewWordRepo(db, log),
	}
}
