package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var httpDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	OrderOperationsTotal *prometheus.CounterVec

	RecurringRunsTotal      *prometheus.CounterVec
	RecurringOutcomesTotal  *prometheus.CounterVec
	RecurringInvoiceFailure prometheus.Counter
}

// NewMetrics creates the instruments and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "photoflow_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "photoflow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "route"}),
		OrderOperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "photoflow_order_operations_total",
			Help: "Order operations by name and result.",
		}, []string{"operation", "result"}),
		RecurringRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "photoflow_recurring_runs_total",
			Help: "Recurring order runs by trigger and result.",
		}, []string{"trigger", "result"}),
		RecurringOutcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "photoflow_recurring_workspace_outcomes_total",
			Help: "Per-workspace outcomes of recurring order runs.",
		}, []string{"outcome"}),
		RecurringInvoiceFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "photoflow_recurring_invoice_failures_total",
			Help: "Invoices that could not be requested for generated orders.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OrderOperationsTotal,
		m.RecurringRunsTotal,
		m.RecurringOutcomesTotal,
		m.RecurringInvoiceFailure,
	)

	return m
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordOrderOperation counts one use case call; result is "ok" or the error
// class the HTTP layer mapped it to.
func (m *Metrics) RecordOrderOperation(operation, result string) {
	m.OrderOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordRecurringRun counts a run and the outcome of every workspace in it.
func (m *Metrics) RecordRecurringRun(trigger string, err error, outcomes map[string]int, invoiceFailures int) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RecurringRunsTotal.WithLabelValues(trigger, result).Inc()
	for outcome, n := range outcomes {
		m.RecurringOutcomesTotal.WithLabelValues(outcome).Add(float64(n))
	}
	m.RecurringInvoiceFailure.Add(float64(invoiceFailures))
}
