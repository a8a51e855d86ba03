// Package middleware provides HTTP middleware for the transform playground.
//
// This package includes:
//   - Prometheus metrics for requests and transforms
//   - OpenTelemetry tracing of requests and transform stages
//
// Both are plain func(http.Handler) http.Handler values and mount on a chi
// router with r.Use:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("jsx"))
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing(), m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// Labels use the chi route pattern, never the raw URL, so cardinality stays
// bounded.
package middleware
