package app

import (
	"github.com/yungbote/workload-backend/internal/data/db"
	"github.com/yungbote/workload-backend/internal/data/repos"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

func wireRepos(store *db.Service, log *logger.Logger) repos.Set {
	log.Info("Wiring repos...")
	return repos.NewSet(store.DB(), log)
}
