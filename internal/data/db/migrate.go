package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
)

const groupWorkloadTable = "group_workload"

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(staffing.AllModels()...)
}

// ResetSchema drops every table of the schema, join table included, and
// recreates it empty.
func ResetSchema(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasTable(groupWorkloadTable) {
		if err := m.DropTable(groupWorkloadTable); err != nil {
			return fmt.Errorf("drop %s: %w", groupWorkloadTable, err)
		}
	}
	models := staffing.AllModels()
	for i := len(models) - 1; i >= 0; i-- {
		if !m.HasTable(models[i]) {
			continue
		}
		if err := m.DropTable(models[i]); err != nil {
			return fmt.Errorf("drop %T: %w", models[i], err)
		}
	}
	return AutoMigrateAll(db)
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

// ResetSchema resets on dbc.Tx when set, so the reset commits or rolls back
// with the caller's transaction.
func (s *Service) ResetSchema(dbc dbctx.Context) error {
	s.log.Info("Resetting schema...")
	tx := dbc.Tx
	if tx == nil {
		tx = s.db
	}
	if dbc.Ctx != nil {
		tx = tx.WithContext(dbc.Ctx)
	}
	if err := ResetSchema(tx); err != nil {
		s.log.Error("Schema reset failed", "error", err)
		return err
	}
	return nil
}
