package main

import (
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/topoview/pkg/health"
	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/metrics"
	"github.com/dd0wney/topoview/pkg/snapshot"
)

// staleAfter is how many missed refreshes make the snapshot stale.
const staleAfter = 3

func newHealthChecker(source *snapshot.FileSource, maxAge time.Duration) *health.Checker {
	status := func() (time.Time, error) {
		st := source.Status()
		return st.LastSuccess, st.LastError
	}

	checker := health.NewChecker()
	checker.RegisterCheck("snapshot", health.SnapshotCheck(status, maxAge))
	checker.RegisterCheck("memory", health.MemoryCheck(func() (uint64, uint64) {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return ms.Alloc, ms.Sys
	}))
	checker.RegisterReadinessCheck("loaded", health.LoadedCheck(func() bool {
		return !source.Status().LastSuccess.IsZero()
	}))
	checker.RegisterLivenessCheck("process", health.AliveCheck())
	return checker
}

// newRouter serves /metrics and the health endpoints.
func newRouter(registry *metrics.Registry, checker *health.Checker, logger logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	checker.Register(r)

	return r
}

func accessLog(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				logging.String("request_id", middleware.GetReqID(r.Context())),
				logging.String("method", r.Method),
				logging.Path(r.URL.Path),
				logging.Int("status", ww.Status()),
				logging.Latency(time.Since(start)))
		})
	}
}

// serveMetrics starts the listener on addr in the background.
func serveMetrics(addr string, registry *metrics.Registry, checker *health.Checker, logger logging.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(registry, checker, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener stopped", logging.Error(err))
		}
	}()
	logger.Info("serving metrics", logging.String("addr", addr))
	return srv
}
