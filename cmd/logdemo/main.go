// Command logdemo initializes the fiaas logging facade from the environment
// and emits sample records from several goroutines, demonstrating the
// local and hosted line formats and the stdout/stderr severity split.
//
// Run with, for example:
//
//	LOG_LEVEL=trace FIAAS_ENVIRONMENT=local go run ./cmd/logdemo
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sourcegraph/conc"

	fiaaslog "github.com/finn-no/fiaas-logging-go"
)

const workerCount = 3

func main() {
	fiaaslog.InitFromEnv("logdemo")

	slog.Info("logdemo starting", "pid", os.Getpid())

	var wg conc.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Go(func() {
			ctx := fiaaslog.WithGoroutineName(context.Background(), fmt.Sprintf("worker-%d", i))
			logger := fiaaslog.Named("logdemo.worker")
			logger.DebugContext(ctx, "picked up work item", "item", i)
			logger.InfoContext(ctx, "work item processed", "item", i)
		})
	}
	wg.Wait()

	slog.Log(context.Background(), fiaaslog.LevelTrace, "trace detail, emitted only at LOG_LEVEL=trace")
	slog.Warn("sample warning on stdout")
	slog.Error("sample error on stderr")
}
