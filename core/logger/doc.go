// Package logger provides structured logging utilities built on Go's standard
// slog package: environment-driven logger construction and a set of pre-built
// attribute helpers for common logging scenarios.
//
// Attribute helpers follow the empty-Attr pattern for nil safety, so callers
// never need explicit nil checks:
//
//	log.Info("request completed",
//		logger.Method("GET"),
//		logger.Path("/resumes/"),
//		logger.StatusCode(200),
//		logger.Error(err), // no-op when err is nil
//	)
//
// Construction reads level and format from the environment via core/config:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(cfg, logger.WithAttrs(logger.Component("resumeforge")))
package logger
