package keyspan

import "errors"

var (
	// ErrInvalidKey is returned when a key fails validation: a malformed
	// UUID, a character outside the alphanumeric alphabet, a string longer
	// than its configured maximum length, or arithmetic that leaves the
	// key's value space.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidRange is returned when a range operation requires
	// start < end and the bounds are not in order.
	ErrInvalidRange = errors.New("range start must be less than range end")

	// ErrTooManyCheckpoints is returned when more checkpoints are requested
	// than there are integer positions between the bounds.
	ErrTooManyCheckpoints = errors.New("too many partitions requested for this key range")

	// ErrUnsupported is returned for arithmetic a key variant does not
	// implement, such as adding an offset other than one to an
	// alphanumeric key.
	ErrUnsupported = errors.New("unsupported operation")
)
