package editlog

import "github.com/bethropolis/hollow/internal/types"

// Document is the live state the log replays records against.
//
// Swap-style methods install the given value and return the one they
// replaced. Records keep whatever is returned, which is what makes a record
// valid for the opposite direction after each application. Implementations
// may assume the identifiers they receive exist and are in the state the
// record expects.
type Document interface {
	SelectEntity(id types.ID)
	DeselectEntity(id types.ID)
	InsertSubtractee(id types.ID)
	RemoveSubtractee(id types.ID)

	SpawnBrush(id types.ID, data types.BrushData, kind types.BrushKind)
	DespawnBrush(id types.ID, kind types.BrushKind) types.BrushData
	SwapPolygon(id types.ID, p types.Polygon) types.Polygon
	MoveBrush(id types.ID, delta types.Vec2, moveTexture bool)
	FlipBrush(id types.ID, flip types.Flip, flipTexture bool)
	SetCollision(id types.ID, enabled bool) bool

	InsertFreeDrawPoint(index int, p types.Vec2)
	DeleteFreeDrawPoint(index int)

	InsertVertex(id types.ID, index int, v types.Vertex)
	DeleteVertex(id types.ID, index int)
	MoveVertexes(id types.ID, indexes []int, delta types.Vec2)
	ToggleVertex(id types.ID, index int)

	SetPath(id types.ID, p types.Path)
	RemovePath(id types.ID) types.Path
	InsertPathNode(id types.ID, index int, n types.Node)
	DeletePathNode(id types.ID, index int)
	MovePathNodes(id types.ID, indexes []int, delta types.Vec2)
	TogglePathNode(id types.ID, index int)
	SetPathNodeMovement(id types.ID, index int, field types.MovementField, value float64) float64

	Attach(owner, attached types.ID)
	Detach(owner, attached types.ID)

	SpawnThing(id types.ID, data types.ThingInstance, drawn bool)
	DespawnThing(id types.ID, drawn bool) types.ThingInstance
	MoveThing(id types.ID, delta types.Vec2)
	SetThingKind(id types.ID, kind types.ThingKind) types.ThingKind
	SetThingHeight(id types.ID, height int8) int8
	SetThingAngle(id types.ID, angle float64) float64

	// SetTexture assigns a texture by name. It returns the previous name and
	// false when the entity had no texture before.
	SetTexture(id types.ID, name string) (prev string, had bool)
	// SwapTextureSettings replaces the whole texture of an entity. Nil
	// removes it.
	SwapTextureSettings(id types.ID, s *types.TextureSettings) *types.TextureSettings
	SetTextureField(id types.ID, field types.TextureField, value float64) float64
	ShiftTextureField(id types.ID, field types.TextureField, delta float64)
	SetTextureHeight(id types.ID, height int8) int8
	SwapSprite(id types.ID, enabled bool, offsetX, offsetY float64) (bool, float64, float64)
	FlipTexture(id types.ID, vertical bool)

	SwapAnimation(target types.AnimationTarget, a types.Animation) types.Animation
	EditAnimation(target types.AnimationTarget, edit func(a *types.Animation))

	SetProperty(id types.ID, key string, value types.Value) types.Value
}
