package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSDKOrdering          = errors.New("sdk version ordering violation")
	ErrInvalidApplicationID = errors.New("invalid application id")
	ErrInvalidNamespace     = errors.New("invalid namespace")
	ErrMissingSigningConfig = errors.New("missing signing config")
	ErrUnknownBuildType     = errors.New("unknown build type")
	ErrUnmanagedDependency  = errors.New("dependency has no version and no preceding bill-of-materials")
	ErrDuplicateDependency  = errors.New("duplicate dependency")
	ErrInvalidVersion       = errors.New("invalid version")
	ErrJVMTargetMismatch    = errors.New("jvm target does not match target compatibility")
)

// Issue is a single structural problem found in a descriptor. It wraps one
// of the sentinel errors above.
type Issue struct {
	Kind   error
	Detail string
}

func (i *Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}

func (i *Issue) Unwrap() error {
	return i.Kind
}

// ValidationError aggregates every issue found by Validate.
type ValidationError struct {
	Issues []*Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.Error()
	}
	return fmt.Sprintf("descriptor validation failed:\n- %s", strings.Join(msgs, "\n- "))
}

// Unwrap exposes the issues to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Issues))
	for i, issue := range e.Issues {
		errs[i] = issue
	}
	return errs
}
