// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a valid client-supplied "X-Request-ID" header or
// generates a UUIDv4, stores the id in the request context and echoes it
// back in the response. FromContext reads it anywhere downstream, and
// LoggerExtractor plugs into pkg/logger so the id appears on every log
// record written with the request context:
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	router.Use(requestid.Middleware)
package requestid
