// Package config loads declarative task type manifests.
package config

import (
	"fmt"
	"os"
	"slices"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/botzz826/gradle/internal/core/classload"
	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
)

var (
	// ErrDuplicateLoader indicates two loader declarations share a name.
	ErrDuplicateLoader = zerr.New("duplicate loader name")
	// ErrDuplicateType indicates two type declarations share a name.
	ErrDuplicateType = zerr.New("duplicate type name")
	// ErrUnknownLoader indicates a reference to an undeclared loader.
	ErrUnknownLoader = zerr.New("unknown loader")
	// ErrUnknownParent indicates a type extends an undeclared type. Parents
	// must be declared before the types that extend them, which also rules
	// out ancestry cycles.
	ErrUnknownParent = zerr.New("unknown parent type")
)

// Loader implements ports.TypeLoader using a YAML manifest.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new manifest loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads a type manifest from the given path and materializes its
// declared types. The manifest carries declarations only, so the methods
// of loaded types have no bound implementations.
func (l *Loader) Load(path string) ([]*domain.Type, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read type manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse type manifest")
	}

	types, err := materialize(manifest)
	if err != nil {
		return nil, err
	}

	l.logger.Info(fmt.Sprintf("loaded %d task types from %s", len(types), path))
	return types, nil
}

// materialize builds loaders first, then types. Both passes resolve
// references against what was already declared.
func materialize(manifest Manifest) ([]*domain.Type, error) {
	loaders, err := materializeLoaders(manifest.Loaders)
	if err != nil {
		return nil, err
	}

	types := make([]*domain.Type, 0, len(manifest.Types))
	byName := make(map[string]*domain.Type, len(manifest.Types))
	for _, dto := range manifest.Types {
		if _, exists := byName[dto.Name]; exists {
			return nil, zerr.With(ErrDuplicateType, "type", dto.Name)
		}

		var parent *domain.Type
		if dto.Parent != "" {
			p, ok := byName[dto.Parent]
			if !ok {
				return nil, zerr.With(zerr.With(ErrUnknownParent, "type", dto.Name), "parent", dto.Parent)
			}
			parent = p
		}

		var loader *classload.Loader
		if dto.Loader != "" {
			owner, ok := loaders[dto.Loader]
			if !ok {
				return nil, zerr.With(zerr.With(ErrUnknownLoader, "type", dto.Name), "loader", dto.Loader)
			}
			loader = owner
		}

		t := &domain.Type{
			Name:    domain.NewInternedString(dto.Name),
			Parent:  parent,
			Loader:  loader,
			Methods: materializeMethods(dto.Methods),
		}
		byName[dto.Name] = t
		types = append(types, t)
	}

	return types, nil
}

func materializeLoaders(dtos []LoaderDTO) (map[string]*classload.Loader, error) {
	loaders := make(map[string]*classload.Loader, len(dtos))
	for _, dto := range dtos {
		if _, exists := loaders[dto.Name]; exists {
			return nil, zerr.With(ErrDuplicateLoader, "loader", dto.Name)
		}

		var parent *classload.Loader
		if dto.Parent != "" {
			p, ok := loaders[dto.Parent]
			if !ok {
				return nil, zerr.With(zerr.With(ErrUnknownLoader, "loader", dto.Name), "parent", dto.Parent)
			}
			parent = p
		}

		loaders[dto.Name] = classload.NewLoader(dto.Name, parent)
	}
	return loaders, nil
}

// materializeMethods converts method declarations. Parameter types are
// carried through verbatim so invalid ones surface as validation errors
// when the type is scanned, not here.
func materializeMethods(dtos []MethodDTO) []domain.Method {
	methods := make([]domain.Method, len(dtos))
	for i, dto := range dtos {
		params := make([]domain.ParamType, len(dto.Params))
		for j, p := range dto.Params {
			params[j] = domain.ParamType(p)
		}
		methods[i] = domain.Method{
			Name:        domain.NewInternedString(dto.Name),
			Static:      dto.Static,
			Params:      params,
			Annotations: slices.Clone(dto.Annotations),
		}
	}
	return methods
}
