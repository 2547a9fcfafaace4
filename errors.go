package enranda

import "github.com/pkg/errors"

// Error kinds from the generator's version gate and allocation paths,
// wrapped with github.com/pkg/errors at each call site so a stack trace
// accompanies every return.
var (
	// ErrVersionMismatch is returned by Init when the caller's expected
	// break/feature counts are incompatible with this build.
	ErrVersionMismatch = errors.New("enranda: version mismatch")

	// ErrAllocation names the failure to reserve working memory. No
	// function in this module returns it; allocation failures surface
	// as Go runtime panics.
	ErrAllocation = errors.New("enranda: allocation failure")

	// ErrOverflow names a derived buffer size exceeding the host address
	// space. No function in this module returns it.
	ErrOverflow = errors.New("enranda: size overflow")

	// ErrNumericDegenerate names a genuinely ill-defined metric result.
	// No function in this module returns it: the dyspoissometer metric
	// functions return plain values and yield 0 for degenerate inputs.
	ErrNumericDegenerate = errors.New("enranda: numeric degenerate input")
)
