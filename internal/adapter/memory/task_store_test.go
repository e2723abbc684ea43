package memory

import (
	"testing"

	"github.com/bornholm/taskbot/internal/core/port"
	"github.com/bornholm/taskbot/internal/core/port/testsuite"
)

func TestTaskStore(t *testing.T) {
	testsuite.TestTaskStore(t, func(t *testing.T) (port.TaskStore, error) {
		return NewTaskStore(), nil
	})
}
