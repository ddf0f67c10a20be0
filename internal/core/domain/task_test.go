package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/botzz826/gradle/internal/core/classload"
	"github.com/botzz826/gradle/internal/core/domain"
)

func TestType_Ancestry_MostDerivedFirst(t *testing.T) {
	base := &domain.Type{Name: domain.NewInternedString("DefaultTask")}
	middle := &domain.Type{Name: domain.NewInternedString("SourceTask"), Parent: base}
	leaf := &domain.Type{Name: domain.NewInternedString("Compile"), Parent: middle}

	var names []string
	for cur := range leaf.Ancestry() {
		names = append(names, cur.Name.String())
	}

	require.Equal(t, []string{"Compile", "SourceTask", "DefaultTask"}, names)
}

func TestType_Ancestry_StopsEarly(t *testing.T) {
	base := &domain.Type{Name: domain.NewInternedString("DefaultTask")}
	leaf := &domain.Type{Name: domain.NewInternedString("Compile"), Parent: base}

	var count int
	for range leaf.Ancestry() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestType_OwningLoader(t *testing.T) {
	plugin := classload.NewLoader("plugin", nil)

	owned := &domain.Type{Name: domain.NewInternedString("Owned"), Loader: plugin}
	orphan := &domain.Type{Name: domain.NewInternedString("Orphan")}

	require.Same(t, plugin, owned.OwningLoader())
	require.Same(t, classload.Bootstrap, orphan.OwningLoader())
}

func TestMethod_HasAnnotation(t *testing.T) {
	m := domain.Method{
		Name:        domain.NewInternedString("run"),
		Annotations: []string{"Internal", domain.AnnotationTaskAction},
	}

	require.True(t, m.HasAnnotation(domain.AnnotationTaskAction))
	require.False(t, m.HasAnnotation("Inject"))
	require.False(t, domain.Method{}.HasAnnotation(domain.AnnotationTaskAction))
}

func TestFileChanges(t *testing.T) {
	changes := domain.NewFileChanges(true,
		domain.FileChange{Path: domain.NewInternedString("a.txt"), Kind: domain.ChangeAdded},
		domain.FileChange{Path: domain.NewInternedString("b.txt"), Kind: domain.ChangeRemoved},
	)

	require.True(t, changes.Incremental())

	var paths []string
	for change := range changes.Changes() {
		paths = append(paths, change.Path.String())
	}
	require.Equal(t, []string{"a.txt", "b.txt"}, paths)
}

func TestFileChanges_NonIncremental(t *testing.T) {
	changes := domain.NewFileChanges(false)
	require.False(t, changes.Incremental())

	var count int
	for range changes.Changes() {
		count++
	}
	require.Zero(t, count)
}

func TestChangeKind_String(t *testing.T) {
	require.Equal(t, "added", domain.ChangeAdded.String())
	require.Equal(t, "modified", domain.ChangeModified.String())
	require.Equal(t, "removed", domain.ChangeRemoved.String())
	require.Equal(t, "unknown", domain.ChangeKind(42).String())
}

func TestTaskClassInfo_FactoriesAreCopied(t *testing.T) {
	factory := domain.ActionFactory(func() domain.Action { return nil })
	factories := []domain.ActionFactory{factory}

	info := domain.NewTaskClassInfo(true, factories)

	// Mutating the source slice must not affect the info.
	factories[0] = nil
	require.NotNil(t, info.ActionFactories()[0])

	// Mutating the returned slice must not affect subsequent reads.
	got := info.ActionFactories()
	got[0] = nil
	require.NotNil(t, info.ActionFactories()[0])

	require.True(t, info.Incremental())
	require.Equal(t, 1, info.ActionCount())
}
