// Package logger provides a small factory around log/slog with consistent
// defaults across the kit: JSON output at INFO level for production, text at
// DEBUG for development, plus typed attribute helpers for common fields.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithService("deskctl"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("export finished", logger.Endpoint("/agents/export"))
package logger
