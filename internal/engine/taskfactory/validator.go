// Package taskfactory resolves task types to their executable actions:
// it validates declared action methods, scans type ancestries, memoizes
// the results, and manufactures the action instances tasks execute.
package taskfactory

import (
	"go.trai.ch/zerr"

	"github.com/botzz826/gradle/internal/core/domain"
	"github.com/botzz826/gradle/internal/core/ports"
)

// Candidate is the Validator's verdict on one declared method.
type Candidate struct {
	// Eligible reports whether the method is an executable action.
	Eligible bool
	// InputChanges reports whether the action receives incremental input
	// changes.
	InputChanges bool
}

// Validator applies the action eligibility rules to declared methods. It is
// stateless and safe for concurrent use.
type Validator struct {
	marker ports.ActionMarker
}

// NewValidator creates a Validator recognizing actions via the given
// marker.
func NewValidator(marker ports.ActionMarker) Validator {
	return Validator{marker: marker}
}

// Validate checks one method declared on a type. incrementalSeen reports
// whether an input-changes action was already found on a more derived type.
// Rules apply in priority order; the first violation wins and unmarked
// methods are skipped silently.
func (v Validator) Validate(declaring *domain.Type, m domain.Method, incrementalSeen bool) (Candidate, error) {
	if !v.marker.IsAction(declaring, m) {
		return Candidate{}, nil
	}
	if m.Static {
		return Candidate{}, declarationError(domain.ErrStaticActionMethod, declaring, m)
	}
	if len(m.Params) > 1 {
		return Candidate{}, declarationError(domain.ErrTooManyActionParameters, declaring, m)
	}
	if len(m.Params) == 0 {
		return Candidate{Eligible: true}, nil
	}
	if m.Params[0] != domain.ParamInputChanges {
		return Candidate{}, zerr.With(
			declarationError(domain.ErrInvalidActionParameter, declaring, m),
			"parameter", string(m.Params[0]),
		)
	}
	if incrementalSeen {
		return Candidate{}, declarationError(domain.ErrMultipleIncrementalActions, declaring, m)
	}
	return Candidate{Eligible: true, InputChanges: true}, nil
}

// declarationError attaches the offending declaration site to a validation
// sentinel.
func declarationError(err error, declaring *domain.Type, m domain.Method) error {
	err = zerr.With(err, "type", declaring.Name.String())
	return zerr.With(err, "method", m.Name.String())
}
