package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameCreatedTasks   = "created_tasks_total"
	NameCompletedTasks = "completed_tasks_total"
	NameDeletedTasks   = "deleted_tasks_total"
)

var CreatedTasks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameCreatedTasks,
		Help:      "Total created tasks",
		Namespace: Namespace,
	},
)

var CompletedTasks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameCompletedTasks,
		Help:      "Total completed tasks",
		Namespace: Namespace,
	},
)

var DeletedTasks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameDeletedTasks,
		Help:      "Total deleted tasks",
		Namespace: Namespace,
	},
)
