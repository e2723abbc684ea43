package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameReceipts    = "receipts_total"
	NameSubmissions = "submissions_total"
)

var Receipts = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameReceipts,
		Help:      "Total task receipts",
		Namespace: Namespace,
	},
)

var Submissions = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSubmissions,
		Help:      "Total task submissions",
		Namespace: Namespace,
	},
)
