// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestDuration tracks backend call latency by operation and outcome.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_backend_request_duration_seconds",
			Help:    "Portfolio backend request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"operation", "outcome"},
	)

	// requestErrors counts failed backend calls by operation and error class.
	requestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_backend_request_errors_total",
			Help: "Total number of failed portfolio backend requests",
		},
		[]string{"operation", "class"}, // class: transport, status, decode
	)
)

func observeRequest(operation string, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		requestErrors.WithLabelValues(operation, errorClass(err)).Inc()
	}
	requestDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

func errorClass(err error) string {
	switch {
	case IsTransport(err):
		return "transport"
	case isStatus(err):
		return "status"
	default:
		return "decode"
	}
}
