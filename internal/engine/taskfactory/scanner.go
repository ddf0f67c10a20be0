package taskfactory

import (
	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
)

// Scanner discovers the executable actions declared across a task type's
// ancestry.
type Scanner struct {
	validator Validator
}

// NewScanner creates a Scanner recognizing actions via the given marker.
func NewScanner(marker ports.ActionMarker) *Scanner {
	return &Scanner{validator: NewValidator(marker)}
}

// Scan folds over the type's ancestry, most derived first, collecting one
// action factory per distinct action method name. A name claimed by a
// derived type suppresses the ancestor's declaration, but the incremental
// flag is still updated for every valid input-changes declaration,
// suppressed or not. The first violation aborts the scan.
func (s *Scanner) Scan(t *domain.Type) (*domain.TaskClassInfo, error) {
	if t == nil {
		return nil, domain.ErrNilTaskType
	}

	var (
		factories   []domain.ActionFactory
		incremental bool
	)
	processed := make(map[domain.InternedString]struct{})

	for declaring := range t.Ancestry() {
		for _, m := range declaring.Methods {
			cand, err := s.validator.Validate(declaring, m, incremental)
			if err != nil {
				return nil, err
			}
			if !cand.Eligible {
				continue
			}
			if cand.InputChanges {
				incremental = true
			}
			if _, seen := processed[m.Name]; seen {
				continue
			}
			processed[m.Name] = struct{}{}
			factories = append(factories, newActionFactory(t, declaring, m, cand.InputChanges))
		}
	}

	return domain.NewTaskClassInfo(incremental, factories), nil
}
