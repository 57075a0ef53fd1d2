// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and health-check handlers.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// arrives, then drains in-flight requests within the shutdown timeout.
// Construction uses functional options (WithAddr, WithReadTimeout,
// WithLogger, ...) or NewFromConfig for env-driven setup.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler doubles as liveness probe (no dependency funcs) and
// readiness probe (each supplied func must succeed).
//
// Errors from Run are wrapped with ErrStart, shutdown errors with
// ErrShutdown; branch with errors.Is.
package httpserver
