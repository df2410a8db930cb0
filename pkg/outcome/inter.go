package outcome

// AnyResult is the type-erased view of a Result, independent of its type
// arguments. Only values built by this package satisfy it; the unexported
// marker keeps structurally similar foreign types out.
type AnyResult interface {
	// IsOk reports whether the value is a success
	IsOk() bool
	// IsErr reports whether the value is a failure
	IsErr() bool
	// HasValue reports whether a success carries a payload
	HasValue() bool
	// Payload returns the active case's payload, untyped
	Payload() any

	isResult()
}
