package usecase

import (
	"github.com/dd2482/submitcheck/pkg/domain/interfaces"
	"github.com/dd2482/submitcheck/pkg/domain/types"
)

// UseCase validates submission pull requests and reports verdicts back to
// the forge
type UseCase struct {
	forge     interfaces.ForgeClient
	courseOrg string
	baseLabel string
}

// Option configures the use case
type Option func(*UseCase)

// WithCourseOrg sets the course organization login. Repository references
// owned by it are ignored during extraction since they point at the course
// repository itself.
func WithCourseOrg(org string) Option {
	return func(uc *UseCase) {
		uc.courseOrg = org
	}
}

// WithBaseLabel overrides the label attached to every validated pull request
func WithBaseLabel(label string) Option {
	return func(uc *UseCase) {
		uc.baseLabel = label
	}
}

// New creates a use case backed by the given forge client
func New(forge interfaces.ForgeClient, opts ...Option) *UseCase {
	uc := &UseCase{
		forge:     forge,
		baseLabel: types.BaseLabel,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
