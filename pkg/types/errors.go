package types

import "errors"

// Access and inspection errors. Every operation except Describe returns them
// unchanged (possibly wrapped) to the caller; use errors.Is to test.
var (
	ErrAccessDenied          = errors.New("access denied")
	ErrMissingOwner          = errors.New("instance member has no owner")
	ErrIllegalNullAssignment = errors.New("cannot assign nil to a non-nullable slot")
	ErrNullInspection        = errors.New("cannot inspect a nil value")
	ErrPrimitiveInspection   = errors.New("cannot inspect a primitive value")
	ErrFormat                = errors.New("invalid input format")
)

// Errors for composite values and registration.
var (
	ErrUnsupportedInput = errors.New("value does not accept text input")
	ErrElementGone      = errors.New("element no longer present")
	ErrInvalidMember    = errors.New("invalid member")
	ErrDuplicateMember  = errors.New("member already registered")
)

// errorKinds maps each sentinel to the name a driver shows the user.
var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrAccessDenied, "AccessDenied"},
	{ErrMissingOwner, "MissingOwner"},
	{ErrIllegalNullAssignment, "IllegalNullAssignment"},
	{ErrNullInspection, "NullInspection"},
	{ErrPrimitiveInspection, "PrimitiveInspection"},
	{ErrFormat, "FormatError"},
	{ErrUnsupportedInput, "UnsupportedInput"},
	{ErrElementGone, "ElementGone"},
	{ErrInvalidMember, "InvalidMember"},
	{ErrDuplicateMember, "DuplicateMember"},
}

// ErrorKind returns the taxonomy name of err, or "" if err does not wrap one
// of the errors in this package.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
