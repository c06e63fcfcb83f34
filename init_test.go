package fiaaslog

import (
	"testing"

	"github.com/sourcegraph/conc"
	"go.uber.org/atomic"

	"github.com/finn-no/fiaas-logging-go/errs"
)

// resetActive clears the process-wide slot between tests. The production
// path never does this: one installation per process.
func resetActive() {
	activeMu.Lock()
	active = nil
	activeMu.Unlock()
}

func TestTryInitInstallsLogger(t *testing.T) {
	resetActive()
	t.Cleanup(resetActive)

	if err := TryInit("svc", EnvProd, SeverityInfo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := Active()
	if l == nil {
		t.Fatal("expected an installed logger")
	}
	if l.App() != "svc" || l.Environment() != EnvProd || l.MinSeverity() != SeverityInfo {
		t.Errorf("unexpected configuration: app=%s env=%s min=%s", l.App(), l.Environment(), l.MinSeverity())
	}
}

func TestTryInitSecondAttemptFailsAndKeepsFirstConfig(t *testing.T) {
	resetActive()
	t.Cleanup(resetActive)

	if err := TryInit("first", EnvLocal, SeverityWarn); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	err := TryInit("second", EnvProd, SeverityTrace)
	if err == nil {
		t.Fatal("expected the second init to fail")
	}
	if !errs.IsAlreadyInitialized(err) {
		t.Errorf("expected already_initialized, got %v", err)
	}

	l := Active()
	if l.App() != "first" || l.Environment() != EnvLocal || l.MinSeverity() != SeverityWarn {
		t.Errorf("second attempt altered the effective configuration: app=%s env=%s min=%s",
			l.App(), l.Environment(), l.MinSeverity())
	}
}

func TestTryInitConcurrentExactlyOneSucceeds(t *testing.T) {
	resetActive()
	t.Cleanup(resetActive)

	successes := atomic.NewInt32(0)
	var wg conc.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Go(func() {
			if TryInit("svc", EnvDev, SeverityInfo) == nil {
				successes.Inc()
			}
		})
	}
	wg.Wait()

	if got := successes.Load(); got != 1 {
		t.Errorf("expected exactly one successful init, got %d", got)
	}
}

func TestInitEscalatesDoubleInitToExit(t *testing.T) {
	resetActive()
	t.Cleanup(resetActive)

	exitCode := -1
	prevExit := osExit
	osExit = func(code int) { exitCode = code }
	t.Cleanup(func() { osExit = prevExit })

	Init("first", EnvLocal, SeverityInfo)
	if exitCode != -1 {
		t.Fatalf("first init must not exit, got code %d", exitCode)
	}
	Init("second", EnvLocal, SeverityInfo)
	if exitCode != 1 {
		t.Errorf("expected exit code 1 on double init, got %d", exitCode)
	}
}

func TestNamedFallsBackBeforeInit(t *testing.T) {
	resetActive()
	t.Cleanup(resetActive)

	if Named("anything") == nil {
		t.Error("expected a usable logger even before initialization")
	}
}
