package editlog

import (
	"fmt"

	"github.com/bethropolis/hollow/internal/types"
)

// callLog is a Document that only records the selection and free-draw calls
// it receives. Any other call panics through the nil embedded interface.
type callLog struct {
	Document
	calls []string
}

func (c *callLog) SelectEntity(id types.ID) { c.add("select %d", id) }
func (c *callLog) DeselectEntity(id types.ID) { c.add("deselect %d", id) }
func (c *callLog) InsertSubtractee(id types.ID) {
	c.add("subtractee+ %d", id)
}
func (c *callLog) RemoveSubtractee(id types.ID) {
	c.add("subtractee- %d", id)
}
func (c *callLog) InsertFreeDrawPoint(index int, p types.Vec2) {
	c.add("point+ %d", index)
}
func (c *callLog) DeleteFreeDrawPoint(index int) {
	c.add("point- %d", index)
}

func (c *callLog) add(format string, args ...interface{}) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *callLog) take() []string {
	out := c.calls
	c.calls = nil
	return out
}
