package gorm

import (
	"path/filepath"
	"testing"

	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/bornholm/taskbot/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		dsn := filepath.Join(t.TempDir(), "taskbot_test.sqlite")

		db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if err := db.Exec("PRAGMA foreign_keys=on").Error; err != nil {
			return nil, errors.WithStack(err)
		}

		return NewStore(db), nil
	})
}
