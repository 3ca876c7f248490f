package editlog

// TargetMode is what the active tool edits.
type TargetMode uint8

const (
	TargetOther TargetMode = iota
	TargetDraw
	TargetBrushFreeDraw
	TargetThing
	TargetVertexes
	TargetSides
	TargetSubtractees
	TargetPath
	TargetPathFreeDraw
)

var targetNames = [...]string{"other", "draw", "brush free draw", "thing", "vertexes", "sides", "subtractees", "path", "path free draw"}

func (m TargetMode) String() string {
	if int(m) < len(targetNames) {
		return targetNames[m]
	}
	return "unknown"
}

// FreeDrawStatus is the progress of a brush free-draw gesture.
type FreeDrawStatus uint8

const (
	FreeDrawInactive FreeDrawStatus = iota
	FreeDrawPolygon
)

// Target is the editing target of the active tool.
type Target struct {
	Mode     TargetMode
	FreeDraw FreeDrawStatus
}

// freeDrawExit reports whether going from prev to next only abandons a
// free-draw gesture.
func freeDrawExit(prev, next Target) bool {
	switch {
	case prev.Mode == TargetBrushFreeDraw && next.Mode == TargetDraw:
		return true
	case prev.Mode == TargetBrushFreeDraw && next.Mode == TargetBrushFreeDraw:
		return prev.FreeDraw == FreeDrawPolygon && next.FreeDraw == FreeDrawInactive
	case prev.Mode == TargetPathFreeDraw && next.Mode == TargetPath:
		return true
	}
	return false
}

// RequiresToolPurge reports whether switching from prev to next makes the
// tool-scoped records produced under prev meaningless.
func RequiresToolPurge(prev, next Target) bool {
	if freeDrawExit(prev, next) {
		return true
	}
	if prev.Mode == TargetOther {
		return false
	}
	if next.Mode == TargetBrushFreeDraw && (prev.Mode == TargetDraw || prev.Mode == TargetBrushFreeDraw) {
		return false
	}
	return prev.Mode != next.Mode
}
