package vec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by Insert when the index lands beyond the
// live prefix (index > Len()).
var ErrOutOfRange = errors.New("vec: index out of range")

// CapacityError reports a mutation that would need more live slots than
// the vector's fixed capacity. It is always detected before any element
// is moved or written, so a failed operation leaves the vector exactly
// as it was.
type CapacityError struct {
	Cap  int // fixed capacity of the vector
	Need int // live slots the operation would have required
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("vec: capacity exceeded (need %d slots, capacity %d)", e.Need, e.Cap)
}
