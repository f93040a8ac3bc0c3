// Package metrics provides Prometheus instrumentation for feastbook.
//
// There is no /metrics endpoint: the console prints Snapshot() as its
// session summary, and the registry can still be handed to any Prometheus
// exporter by embedding code.
//
// Wire it up once at boot:
//
//	metrics.Bind() // subscribe to pkg/event
package metrics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"

	"github.com/shashiranjanraj/feastbook/pkg/event"
)

const namespace = "feastbook"

// ─────────────────────────────────────────────
// Built-in metrics
// ─────────────────────────────────────────────

var (
	// RegistryMutations counts successful creates and updates per registry.
	RegistryMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "mutations_total",
			Help:      "Successful registry mutations.",
		},
		[]string{"registry", "op"}, // op: "create" | "update"
	)

	// RegistryRecords is the record count after the last load or save.
	RegistryRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "records",
			Help:      "Records held by a registry after its last load or save.",
		},
		[]string{"registry"},
	)

	// OrderRejections counts orders refused by the order book.
	OrderRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "rejections_total",
			Help:      "Orders rejected by validation, by reason.",
		},
		[]string{"reason"},
	)

	// StoreOperations counts record store reads and writes by outcome.
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Record store operations.",
		},
		[]string{"kind", "op", "result"}, // op: "load" | "save"; result: "ok" | "missing" | "unreadable" | "corrupt" | "error"
	)

	// StoreDuration tracks record store latency.
	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "duration_seconds",
			Help:      "Duration of record store operations in seconds.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"op"},
	)
)

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by feastbook.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RegistryMutations,
		RegistryRecords,
		OrderRejections,
		StoreOperations,
		StoreDuration,
	)
}

// ─────────────────────────────────────────────
// Event wiring
// ─────────────────────────────────────────────

var bindOnce sync.Once

// Bind subscribes the counters to the registry events. Safe to call more
// than once; only the first call subscribes.
func Bind() {
	bindOnce.Do(func() {
		mutation := func(op string) event.Handler {
			return func(p interface{}) {
				if c, ok := p.(event.Change); ok {
					RegistryMutations.WithLabelValues(c.Registry, op).Inc()
				}
			}
		}
		event.Listen(event.CustomerCreated, mutation("create"))
		event.Listen(event.CustomerUpdated, mutation("update"))
		event.Listen(event.OrderPlaced, mutation("create"))
		event.Listen(event.OrderUpdated, mutation("update"))

		event.Listen(event.OrderRejected, func(p interface{}) {
			if r, ok := p.(event.Rejection); ok {
				OrderRejections.WithLabelValues(r.Reason).Inc()
			}
		})

		persisted := func(p interface{}) {
			if s, ok := p.(event.Persisted); ok {
				RegistryRecords.WithLabelValues(s.Registry).Set(float64(s.Count))
			}
		}
		event.Listen(event.RegistrySaved, persisted)
		event.Listen(event.RegistryLoaded, persisted)
	})
}

// ─────────────────────────────────────────────
// Helpers for app code
// ─────────────────────────────────────────────

// ObserveStore records one record store operation with a simple timer:
//
//	defer func() { metrics.ObserveStore("customers", "load", result, start) }()
func ObserveStore(kind, op, result string, start time.Time) {
	StoreOperations.WithLabelValues(kind, op, result).Inc()
	StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Sample is one feastbook series from the registry.
type Sample struct {
	Name   string
	Labels string // "op=create,registry=orders"
	Value  float64
}

func (s Sample) String() string {
	if s.Labels == "" {
		return s.Name
	}
	return s.Name + "{" + s.Labels + "}"
}

// Snapshot gathers every non-zero feastbook series, sorted by name and
// labels. Histograms report their observation count.
func Snapshot() ([]Sample, error) {
	families, err := DefaultRegistry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			v := value(mf.GetType(), m)
			if v == 0 {
				continue
			}
			out = append(out, Sample{Name: mf.GetName(), Labels: labels(m), Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}

func labels(m *dto.Metric) string {
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
	}
	return strings.Join(pairs, ",")
}
