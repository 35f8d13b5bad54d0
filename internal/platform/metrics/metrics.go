// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

/*
Package metrics exposes Prometheus instrumentation for the API.

Collectors live on a private registry owned by [Metrics] rather than the
global default registry, so tests can build as many instances as they need.

Exposed series:

  - vancommunity_group_searches_total
  - vancommunity_group_joins_total{outcome="joined|full|not_found"}
  - vancommunity_groups_created_total
  - vancommunity_http_request_duration_seconds{method,route,status}
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vancommunity"

// Metrics owns the registry and every collector of the process.
type Metrics struct {
	registry        *prometheus.Registry
	searches        prometheus.Counter
	searchResults   prometheus.Histogram
	joins           *prometheus.CounterVec
	groupsCreated   prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// New builds and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "group_searches_total",
			Help:      "Number of group searches served.",
		}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "group_search_results",
			Help:      "Number of groups returned per search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "group_joins_total",
			Help:      "Join attempts by outcome.",
		}, []string{"outcome"}),
		groupsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_created_total",
			Help:      "Number of groups created through the API.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.searches,
		m.searchResults,
		m.joins,
		m.groupsCreated,
		m.requestDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// SearchPerformed records one search returning n groups.
func (m *Metrics) SearchPerformed(n int) {
	m.searches.Inc()
	m.searchResults.Observe(float64(n))
}

// JoinAttempted records a join attempt by outcome.
func (m *Metrics) JoinAttempted(outcome string) {
	m.joins.WithLabelValues(outcome).Inc()
}

// GroupCreated records one group created through the API.
func (m *Metrics) GroupCreated() {
	m.groupsCreated.Inc()
}

// ObserveRequest records the latency of a finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
