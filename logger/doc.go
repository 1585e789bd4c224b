// Package logger provides structured logging for demokit using zerolog.
//
// It supports JSON and console output formats, level configuration,
// and component-scoped loggers with structured fields. Runner
// telemetry goes through this package; demonstration output written
// by units does not (that is the product, not telemetry).
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("runner")
//	log.Info("unit finished", logger.Fields(logger.FieldUnit, "alpha"))
package logger
