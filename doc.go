// Package fiaaslog installs a process-wide log/slog handler that renders
// records the way FIAAS-hosted applications expect: a human-readable
// bracketed line for local development, and line-delimited JSON
// (@version/@timestamp/logger/thread/level/message/finn_app) for the dev
// and prod environments. Error-severity lines go to standard error, all
// other severities to standard output.
//
// Configuration is read from two environment variables:
//
//	LOG_LEVEL          minimum severity: error, warn, info, debug or trace
//	FIAAS_ENVIRONMENT  deployment environment: local, dev or prod
//
// Both variables are required and case-sensitive; a missing or
// unrecognized value is a fatal configuration error.
//
// A typical application initializes the facade once at startup:
//
//	fiaaslog.InitFromEnv("my-app")
//	slog.Info("started")
//
// At most one logger can be installed per process. Init and InitFromEnv
// terminate the process on a second installation attempt; callers that
// need to recover use TryInit.
package fiaaslog
