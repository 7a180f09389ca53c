package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	heartbeatsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worktime",
		Subsystem: "tracking",
		Name:      "heartbeats_total",
		Help:      "Heartbeats applied to work sessions.",
	})

	idleGapsDiscardedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worktime",
		Subsystem: "tracking",
		Name:      "idle_gaps_discarded_total",
		Help:      "Heartbeat gaps at or above the idle cutoff, credited as zero.",
	})

	payrollRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worktime",
		Subsystem: "payroll",
		Name:      "period_runs_total",
		Help:      "Payroll period generation runs.",
	})

	payrollSkipsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worktime",
		Subsystem: "payroll",
		Name:      "employees_skipped_total",
		Help:      "Employees skipped during payroll generation, e.g. missing compensation.",
	})
)

func init() {
	prometheus.MustRegister(heartbeatsTotal, idleGapsDiscardedTotal, payrollRunsTotal, payrollSkipsTotal)
}

func RecordHeartbeat(idleDiscarded bool) {
	heartbeatsTotal.Inc()
	if idleDiscarded {
		idleGapsDiscardedTotal.Inc()
	}
}

func RecordPayrollRun(skipped int) {
	payrollRunsTotal.Inc()
	payrollSkipsTotal.Add(float64(skipped))
}
