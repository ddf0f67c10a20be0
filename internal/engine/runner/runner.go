// Package runner executes the resolved actions of task instances.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
)

// Execution pairs a task instance with the execution context handed to its
// context-aware actions.
type Execution struct {
	Task    domain.Task
	Context domain.ExecutionContext
}

// Runner resolves a task's actions through the info store and invokes them.
type Runner struct {
	infos  ports.TaskInfoStore
	store  ports.ArtifactStore
	logger ports.Logger
	tracer ports.Tracer
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(
	infos ports.TaskInfoStore,
	store ports.ArtifactStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *Runner {
	return &Runner{
		infos:  infos,
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// Run resolves the task's actions and executes them in declaration order.
// Each factory produces a fresh action. The first failing action ends the
// run and its error is returned unchanged. A successful run publishes a
// result entry to the artifact store; store failures are reported as
// warnings and never fail the run.
func (r *Runner) Run(ctx context.Context, exec Execution) error {
	task := exec.Task

	info, err := r.infos.Get(task.Type())
	if err != nil {
		return zerr.With(
			zerr.Wrap(err, "task actions could not be resolved"),
			"task", task.Name(),
		)
	}

	ctx, span := r.tracer.Start(ctx, task.Name())
	defer span.End()
	span.SetAttribute("gradle.type", task.Type().Name.String())
	span.SetAttribute("gradle.incremental", info.Incremental())
	span.SetAttribute("gradle.actions", info.ActionCount())

	executed := make([]string, 0, info.ActionCount())
	for _, factory := range info.ActionFactories() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return err
		}

		action := factory()
		if err := r.runAction(task, action, exec.Context); err != nil {
			span.RecordError(err)
			return err
		}
		executed = append(executed, action.DisplayName())
	}

	r.publish(ctx, task, info, executed)
	return nil
}

// runAction binds the execution context around a context-aware action for
// exactly the duration of its invocation.
func (r *Runner) runAction(
	task domain.Task,
	action domain.Action,
	execCtx domain.ExecutionContext,
) error {
	if aware, ok := action.(domain.ContextAwareAction); ok && execCtx != nil {
		aware.BindContext(execCtx)
		defer aware.ReleaseContext()
	}
	return action.Execute(task)
}

// publish writes the run's result entry to the remote build cache. The
// store is a collaborator that may fail transiently, so failures surface
// as warnings identifying the entry and the transport error.
func (r *Runner) publish(
	ctx context.Context,
	task domain.Task,
	info *domain.TaskClassInfo,
	actions []string,
) {
	entry := resultEntry{
		Task:        task.Name(),
		Type:        task.Type().Name.String(),
		Actions:     actions,
		Incremental: info.Incremental(),
		FinishedAt:  time.Now().UTC(),
	}

	artifact, err := json.Marshal(entry)
	if err != nil {
		r.logger.Error(zerr.Wrap(err, "could not encode build cache entry"))
		return
	}

	key := cacheKey(entry)
	if err := r.store.Put(ctx, key, artifact); err != nil {
		r.logger.Warn(fmt.Sprintf(
			"Could not store entry %s for task %s in the remote build cache.",
			key, task.Name(),
		))
		r.logger.Warn(fmt.Sprintf("The underlying transport error was: %v", err))
	}
}

// RunAll executes the given tasks with the specified parallelism. A
// non-positive parallelism falls back to the number of CPUs.
func (r *Runner) RunAll(ctx context.Context, execs []Execution, parallelism int) error {
	names := make([]string, len(execs))
	for i, exec := range execs {
		names[i] = exec.Task.Name()
	}
	r.tracer.EmitPlan(ctx, names)

	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, exec := range execs {
		g.Go(func() error {
			return r.Run(ctx, exec)
		})
	}
	return g.Wait()
}
