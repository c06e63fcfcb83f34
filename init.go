package fiaaslog

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/finn-no/fiaas-logging-go/errs"
)

var (
	activeMu sync.Mutex
	active   *Logger
)

// osExit is swapped out by tests exercising fatal paths.
var osExit = os.Exit

// TryInit installs a Logger with the given configuration as the sole
// process-wide sink and makes it the slog default. It fails with an
// already_initialized error if a logger has been installed before; the
// existing configuration is left untouched. Safe to call concurrently:
// exactly one attempt succeeds.
func TryInit(app string, env Environment, min Severity) error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return errs.New(errs.CodeAlreadyInitialized,
			errs.WithMessage("a process-wide logger is already installed"),
			errs.WithRemediation("initialize logging exactly once, at process start"))
	}
	l := New(app, env, min)
	active = l
	slog.SetDefault(slog.New(l.Handler()))
	return nil
}

// Init installs the logger like TryInit but terminates the process on
// failure: double initialization is a programmer error, never transient.
func Init(app string, env Environment, min Severity) {
	if err := TryInit(app, env, min); err != nil {
		fatal(err)
	}
}

// InitFromEnv derives the configuration from LOG_LEVEL and
// FIAAS_ENVIRONMENT and installs the logger. A missing or invalid variable,
// or a previously installed logger, terminates the process with a
// diagnostic on standard error.
func InitFromEnv(app string) {
	cfg, err := configFromEnv()
	if err != nil {
		fatal(err)
		return
	}
	Init(app, cfg.environment, cfg.minSeverity)
}

// Active returns the installed process-wide logger, or nil before
// initialization.
func Active() *Logger {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active
}

// Named returns a slog.Logger bound to the installed process-wide logger
// whose records carry the given target name. Before initialization it
// falls back to the slog default.
func Named(target string) *slog.Logger {
	l := Active()
	if l == nil {
		return slog.Default()
	}
	return l.Named(target)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "fiaas-logging: %v\n", err)
	osExit(1)
}
