package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(poolTasksTotal) }

var poolTasksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "worker_pool_tasks_total",
		Help: "Total number of worker pool tasks, labeled by outcome.",
	},
	[]string{"outcome"}, // 'completed', 'failed', 'dropped'
)

func IncPoolTask(outcome string) {
	poolTasksTotal.WithLabelValues(norm(outcome)).Inc()
}
