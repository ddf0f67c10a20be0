// Package app implements the application layer for gradle.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	types  ports.TypeLoader
	infos  ports.TaskInfoStore
	logger ports.Logger
}

// New creates a new App instance.
func New(types ports.TypeLoader, infos ports.TaskInfoStore, logger ports.Logger) *App {
	return &App{
		types:  types,
		infos:  infos,
		logger: logger,
	}
}

// Inspect resolves every declared task type through the info store and
// writes a per-type action report to out. Types that fail validation are
// reported inline; the remaining types are still inspected before the
// failure is returned.
func (a *App) Inspect(ctx context.Context, manifestPath string, out io.Writer) error {
	// 1. Load the declared types
	declared, err := a.types.Load(manifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load type manifest")
	}

	// 2. Resolve each type through the info store
	invalid := 0
	for _, typ := range declared {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := a.infos.Get(typ)
		if err != nil {
			invalid++
			_, _ = fmt.Fprintf(out, "%s: %v\n", typ.Name, err)
			continue
		}

		_, _ = fmt.Fprintf(out, "%s", typ.Name)
		if info.Incremental() {
			_, _ = fmt.Fprint(out, " (incremental)")
		}
		_, _ = fmt.Fprintln(out)

		factories := info.ActionFactories()
		if len(factories) == 0 {
			_, _ = fmt.Fprintln(out, "  no actions")
		}
		for _, factory := range factories {
			_, _ = fmt.Fprintf(out, "  %s\n", factory().DisplayName())
		}
	}

	// 3. Report the outcome
	if invalid > 0 {
		return zerr.With(domain.ErrInspectionFailed, "invalid", invalid)
	}
	a.logger.Info(fmt.Sprintf("inspected %d task types", len(declared)))
	return nil
}
