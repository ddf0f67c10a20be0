package runner_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/botzz826/gradle/internal/adapters/remotestore"
	"github.com/botzz826/gradle/internal/adapters/telemetry"
	"github.com/botzz826/gradle/internal/core/classload"
	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
	"github.com/botzz826/gradle/internal/core/ports/mocks"
	"github.com/botzz826/gradle/internal/engine/runner"
)

type runnerTestMocks struct {
	infos  *mocks.MockTaskInfoStore
	store  *mocks.MockArtifactStore
	logger *mocks.MockLogger
	tracer *mocks.MockTracer
	span   *mocks.MockSpan
}

// setupRunnerTest creates a runner and common mocks.
func setupRunnerTest(t *testing.T) (*runner.Runner, runnerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := runnerTestMocks{
		infos:  mocks.NewMockTaskInfoStore(ctrl),
		store:  mocks.NewMockArtifactStore(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		span:   mocks.NewMockSpan(ctrl),
	}

	// Default optimistic mocks to reduce noise in specific tests.
	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	// Start has variadic signature: Start(ctx, name, ...opts).
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()
	m.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()

	r := runner.NewRunner(m.infos, m.store, m.logger, m.tracer)
	return r, m
}

type stubTask struct {
	name string
	typ  *domain.Type
}

func (s stubTask) Name() string       { return s.name }
func (s stubTask) Type() *domain.Type { return s.typ }

func newStubTask(name, typeName string) stubTask {
	return stubTask{
		name: name,
		typ:  &domain.Type{Name: domain.NewInternedString(typeName)},
	}
}

// stubAction is a minimal action whose body is supplied by the test.
type stubAction struct {
	name string
	body func(domain.Task) error
}

func (a *stubAction) Execute(task domain.Task) error { return a.body(task) }
func (a *stubAction) Loader() *classload.Loader      { return classload.Bootstrap }
func (a *stubAction) ActionClassName() string        { return "Stub" }
func (a *stubAction) DisplayName() string            { return "Execute " + a.name }

// awareAction additionally records its context lifecycle.
type awareAction struct {
	stubAction
	mu     sync.Mutex
	events []string
}

func (a *awareAction) BindContext(domain.ExecutionContext) { a.event("bind") }
func (a *awareAction) ReleaseContext()                     { a.event("release") }

func (a *awareAction) event(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, name)
}

// orderRecorder collects action labels across concurrently running tasks.
type orderRecorder struct {
	mu    sync.Mutex
	order []string
}

func (r *orderRecorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

func (r *orderRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func recordingInfo(rec *orderRecorder, incremental bool, names ...string) *domain.TaskClassInfo {
	factories := make([]domain.ActionFactory, len(names))
	for i, name := range names {
		factories[i] = func() domain.Action {
			return &stubAction{name: name, body: func(domain.Task) error {
				rec.add(name)
				return nil
			}}
		}
	}
	return domain.NewTaskClassInfo(incremental, factories)
}

// warnMatcher matches a warning message containing every substring.
type warnMatcher struct {
	substrings []string
}

func (m warnMatcher) Matches(x any) bool {
	msg, ok := x.(string)
	if !ok {
		return false
	}
	for _, s := range m.substrings {
		if !strings.Contains(msg, s) {
			return false
		}
	}
	return true
}

func (m warnMatcher) String() string {
	return "warning containing " + strings.Join(m.substrings, " and ")
}

func warnContaining(substrings ...string) gomock.Matcher {
	return warnMatcher{substrings: substrings}
}

func TestRunner_ExecutesActionsInOrder(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Compile")

	rec := &orderRecorder{}
	info := recordingInfo(rec, false, "compile", "link", "package")
	m.infos.EXPECT().Get(task.typ).Return(info, nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := r.Run(context.Background(), runner.Execution{Task: task})
	require.NoError(t, err)
	require.Equal(t, []string{"compile", "link", "package"}, rec.snapshot())
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Compile")

	failure := errors.New("compiler crashed")
	var order []string
	factories := []domain.ActionFactory{
		func() domain.Action {
			return &stubAction{name: "compile", body: func(domain.Task) error {
				order = append(order, "compile")
				return nil
			}}
		},
		func() domain.Action {
			return &stubAction{name: "link", body: func(domain.Task) error {
				return failure
			}}
		},
		func() domain.Action {
			return &stubAction{name: "package", body: func(domain.Task) error {
				order = append(order, "package")
				return nil
			}}
		},
	}
	m.infos.EXPECT().Get(task.typ).Return(domain.NewTaskClassInfo(false, factories), nil)

	// The failing action's error comes back unchanged and nothing is stored.
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := r.Run(context.Background(), runner.Execution{Task: task})
	require.Same(t, failure, err)
	require.Equal(t, []string{"compile"}, order)
}

func TestRunner_ResolutionFailureCarriesTaskName(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Broken")

	m.infos.EXPECT().Get(task.typ).Return(nil, domain.ErrStaticActionMethod)

	err := r.Run(context.Background(), runner.Execution{Task: task})
	require.ErrorIs(t, err, domain.ErrStaticActionMethod)
	require.ErrorIs(t, err, domain.ErrInvalidActionDeclaration)
	require.Contains(t, err.Error(), "task actions could not be resolved")
}

func TestRunner_StoreFailureDoesNotFailRun(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Compile")

	rec := &orderRecorder{}
	m.infos.EXPECT().Get(task.typ).Return(recordingInfo(rec, false, "compile"), nil)

	transportErr := errors.New("connection reset by peer")
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(transportErr)

	entryWarning := m.logger.EXPECT().Warn(warnContaining(
		"Could not store entry",
		"for task build",
		"remote build cache",
	)).Times(1)
	m.logger.EXPECT().Warn(warnContaining(
		"transport error",
		"connection reset by peer",
	)).Times(1).After(entryWarning)

	err := r.Run(context.Background(), runner.Execution{Task: task})
	require.NoError(t, err)
	require.Equal(t, []string{"compile"}, rec.snapshot())
}

func TestRunner_PublishesResultEntry(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Compile")

	m.infos.EXPECT().Get(task.typ).Return(recordingInfo(&orderRecorder{}, true, "process"), nil)

	var storedKey string
	var storedEntry map[string]any
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, artifact []byte) error {
			storedKey = key
			return json.Unmarshal(artifact, &storedEntry)
		},
	)

	err := r.Run(context.Background(), runner.Execution{Task: task})
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), storedKey)
	require.Equal(t, "build", storedEntry["task"])
	require.Equal(t, "Compile", storedEntry["type"])
	require.Equal(t, []any{"Execute process"}, storedEntry["actions"])
	require.Equal(t, true, storedEntry["incremental"])
	require.NotEmpty(t, storedEntry["finished_at"])
}

func TestRunner_BindsContextAroundAwareAction(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Incremental")

	action := &awareAction{}
	action.name = "process"
	action.body = func(domain.Task) error {
		action.event("execute")
		return nil
	}
	factories := []domain.ActionFactory{func() domain.Action { return action }}
	m.infos.EXPECT().Get(task.typ).Return(domain.NewTaskClassInfo(true, factories), nil)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	execCtx := fakeExecutionContext{}
	err := r.Run(context.Background(), runner.Execution{Task: task, Context: execCtx})
	require.NoError(t, err)
	require.Equal(t, []string{"bind", "execute", "release"}, action.events)
}

func TestRunner_ReleasesContextOnFailure(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Incremental")

	failure := errors.New("boom")
	action := &awareAction{}
	action.name = "process"
	action.body = func(domain.Task) error {
		action.event("execute")
		return failure
	}
	factories := []domain.ActionFactory{func() domain.Action { return action }}
	m.infos.EXPECT().Get(task.typ).Return(domain.NewTaskClassInfo(true, factories), nil)

	err := r.Run(context.Background(), runner.Execution{Task: task, Context: fakeExecutionContext{}})
	require.Same(t, failure, err)
	require.Equal(t, []string{"bind", "execute", "release"}, action.events)
}

func TestRunner_CancelledContextStopsRun(t *testing.T) {
	r, m := setupRunnerTest(t)
	task := newStubTask("build", "Compile")

	rec := &orderRecorder{}
	m.infos.EXPECT().Get(task.typ).Return(recordingInfo(rec, false, "compile"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, runner.Execution{Task: task})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, rec.snapshot())
}

func TestRunner_RunAllExecutesEveryTask(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r, m := setupRunnerTest(t)

		rec := &orderRecorder{}
		first := newStubTask("compile", "Compile")
		second := newStubTask("test", "Test")
		m.infos.EXPECT().Get(first.typ).Return(recordingInfo(rec, false, "compile"), nil)
		m.infos.EXPECT().Get(second.typ).Return(recordingInfo(rec, false, "test"), nil)
		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		execs := []runner.Execution{{Task: first}, {Task: second}}
		err := r.RunAll(context.Background(), execs, 2)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"compile", "test"}, rec.snapshot())
	})
}

func TestRunner_RunAllPropagatesFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r, m := setupRunnerTest(t)

		failure := errors.New("boom")
		good := newStubTask("compile", "Compile")
		bad := newStubTask("test", "Test")
		m.infos.EXPECT().Get(good.typ).Return(recordingInfo(&orderRecorder{}, false, "compile"), nil).AnyTimes()
		m.infos.EXPECT().Get(bad.typ).Return(domain.NewTaskClassInfo(false, []domain.ActionFactory{
			func() domain.Action {
				return &stubAction{name: "test", body: func(domain.Task) error { return failure }}
			},
		}), nil)
		m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		execs := []runner.Execution{{Task: good}, {Task: bad}}
		err := r.RunAll(context.Background(), execs, 1)
		require.ErrorIs(t, err, failure)
	})
}

// A remote cache whose connection drops mid-write yields the warning pair
// and the run still reports success.
func TestRunner_RemoteStoreConnectionDrop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			_ = conn.Close()
		}
	}))
	defer srv.Close()

	store, err := remotestore.NewHTTPStore(srv.URL)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	infos := mocks.NewMockTaskInfoStore(ctrl)
	log := mocks.NewMockLogger(ctrl)

	task := newStubTask("build", "Compile")
	rec := &orderRecorder{}
	infos.EXPECT().Get(task.typ).Return(recordingInfo(rec, false, "compile"), nil)

	entryWarning := log.EXPECT().Warn(warnContaining("Could not store entry", "for task build")).Times(1)
	log.EXPECT().Warn(warnContaining("transport error")).Times(1).After(entryWarning)

	r := runner.NewRunner(infos, store, log, telemetry.NewNoOpTracer())
	err = r.Run(context.Background(), runner.Execution{Task: task})
	require.NoError(t, err)
	require.Equal(t, []string{"compile"}, rec.snapshot())
}

// fakeExecutionContext satisfies domain.ExecutionContext for bind tests.
type fakeExecutionContext struct{}

func (fakeExecutionContext) ArtifactState() domain.ArtifactState { return nil }
