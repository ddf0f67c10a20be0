package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/botzz826/gradle/internal/adapters/config"
	"github.com/botzz826/gradle/internal/adapters/marker"
	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports/mocks"
	"github.com/botzz826/gradle/internal/engine/taskfactory"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
loaders:
  - name: core
  - name: plugin
    parent: core
types:
  - name: DefaultTask
    loader: core
    methods:
      - name: cleanup
        annotations: [TaskAction]
  - name: SourceTask
    parent: DefaultTask
    loader: core
  - name: Compile
    parent: SourceTask
    loader: plugin
    methods:
      - name: compile
        annotations: [TaskAction]
        params: [InputChanges]
      - name: helper
        static: true
`
	types, err := newLoader(t).Load(writeManifest(t, content))
	require.NoError(t, err)
	require.Len(t, types, 3)

	// Declaration order is preserved.
	require.Equal(t, "DefaultTask", types[0].Name.String())
	require.Equal(t, "SourceTask", types[1].Name.String())
	require.Equal(t, "Compile", types[2].Name.String())

	// Ancestry walks from the declared type to the root.
	var ancestry []string
	for typ := range types[2].Ancestry() {
		ancestry = append(ancestry, typ.Name.String())
	}
	require.Equal(t, []string{"Compile", "SourceTask", "DefaultTask"}, ancestry)

	// Loaders resolve to the declared hierarchy.
	require.Equal(t, "plugin", types[2].OwningLoader().Name())
	require.Equal(t, "core", types[2].OwningLoader().Parent().Name())
	require.Same(t, types[0].OwningLoader(), types[2].OwningLoader().Parent())

	// Method declarations carry through.
	compile := types[2].Methods[0]
	require.Equal(t, "compile", compile.Name.String())
	require.True(t, compile.HasAnnotation(domain.AnnotationTaskAction))
	require.Equal(t, []domain.ParamType{domain.ParamInputChanges}, compile.Params)

	helper := types[2].Methods[1]
	require.True(t, helper.Static)
	require.False(t, helper.HasAnnotation(domain.AnnotationTaskAction))
}

type declaredTask struct {
	name string
	typ  *domain.Type
}

func (d declaredTask) Name() string       { return d.name }
func (d declaredTask) Type() *domain.Type { return d.typ }

// Manifest types are declarations only. Their actions resolve but cannot
// be invoked.
func TestLoad_DeclaredMethodsAreNotCallable(t *testing.T) {
	content := `
types:
  - name: DefaultTask
    methods:
      - name: cleanup
        annotations: [TaskAction]
`
	types, err := newLoader(t).Load(writeManifest(t, content))
	require.NoError(t, err)
	require.Len(t, types, 1)

	info, err := taskfactory.NewScanner(marker.NewAnnotationMarker()).Scan(types[0])
	require.NoError(t, err)
	require.Equal(t, 1, info.ActionCount())

	action := info.ActionFactories()[0]()
	require.Equal(t, "Execute cleanup", action.DisplayName())

	err = action.Execute(declaredTask{name: "clean", typ: types[0]})
	require.ErrorIs(t, err, domain.ErrMethodNotCallable)
}

func TestLoad_InvalidManifests(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "duplicate type",
			content: `
types:
  - name: Compile
  - name: Compile
`,
			wantErr: config.ErrDuplicateType,
		},
		{
			name: "duplicate loader",
			content: `
loaders:
  - name: core
  - name: core
`,
			wantErr: config.ErrDuplicateLoader,
		},
		{
			name: "parent declared after child",
			content: `
types:
  - name: Compile
    parent: DefaultTask
  - name: DefaultTask
`,
			wantErr: config.ErrUnknownParent,
		},
		{
			name: "type extends itself",
			content: `
types:
  - name: Compile
    parent: Compile
`,
			wantErr: config.ErrUnknownParent,
		},
		{
			name: "type references unknown loader",
			content: `
types:
  - name: Compile
    loader: plugin
`,
			wantErr: config.ErrUnknownLoader,
		},
		{
			name: "loader references unknown parent",
			content: `
loaders:
  - name: plugin
    parent: core
`,
			wantErr: config.ErrUnknownLoader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeManifest(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read type manifest")
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := newLoader(t).Load(writeManifest(t, "types: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse type manifest")
}
