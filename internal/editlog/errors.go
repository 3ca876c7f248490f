package editlog

import (
	"fmt"

	"github.com/bethropolis/hollow/internal/logger"
)

// ContractViolation is the panic value raised when a caller breaks one of
// the log's usage rules (wrong identifier count for a record kind, a
// multiframe edit opened twice, ...). These are programming errors, not
// runtime conditions, so they are never returned as errors.
type ContractViolation struct {
	Op     string
	Reason string
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("editlog: %s: %s", c.Op, c.Reason)
}

func violate(op, format string, args ...interface{}) {
	v := &ContractViolation{Op: op, Reason: fmt.Sprintf(format, args...)}
	logger.Errorf("%v", v)
	panic(v)
}
