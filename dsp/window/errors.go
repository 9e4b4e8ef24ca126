package window

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by [ParseType] for unsupported window names.
var ErrUnknownType = errors.New("unknown window type")

func unknownTypeError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}
