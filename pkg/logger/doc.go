// Package logger builds configured slog.Logger instances with environment
// presets, static service attributes and context-driven attribute
// injection.
//
// Typical setup:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "socialauth"),
//	)
//	logger.SetAsDefault(log)
//
// Context extractors let middleware-scoped values such as request ids
// appear on every record logged with that context:
//
//	log := logger.New(
//		logger.WithContextValue("request_id", requestIDKey),
//	)
package logger
