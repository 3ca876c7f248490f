package editlog

import (
	"slices"

	"github.com/bethropolis/hollow/internal/types"
)

// Typed push helpers. Each one builds the record for a mutation that was
// just applied live and pushes it. Arguments named prev carry the state
// from before the mutation. Slices and payloads are copied, so callers may
// reuse their buffers.

func (l *Log) EntitySelection(ids ...types.ID) {
	l.PushIfAny(&selectRecord{kind: KindEntitySelection}, ids)
}

func (l *Log) EntityDeselection(ids ...types.ID) {
	l.PushIfAny(&selectRecord{kind: KindEntityDeselection}, ids)
}

func (l *Log) SubtracteeSelection(ids ...types.ID) {
	l.PushIfAny(&selectRecord{kind: KindSubtracteeSelection}, ids)
}

func (l *Log) SubtracteeDeselection(ids ...types.ID) {
	l.PushIfAny(&selectRecord{kind: KindSubtracteeDeselection}, ids)
}

// VertexesSelection records toggled vertex selections.
func (l *Log) VertexesSelection(id types.ID, indexes []int) {
	if len(indexes) == 0 {
		return
	}
	l.Push(&toggleRecord{kind: KindVertexesSelection, indexes: slices.Clone(indexes)}, id)
}

// PathNodesSelection records toggled path node selections.
func (l *Log) PathNodesSelection(id types.ID, indexes []int) {
	if len(indexes) == 0 {
		return
	}
	l.Push(&toggleRecord{kind: KindPathNodesSelection, indexes: slices.Clone(indexes)}, id)
}

// BrushDraw records a brush spawned by the drawing tool.
func (l *Log) BrushDraw(id types.ID) {
	l.Push(&brushRecord{kind: KindBrushDraw}, id)
}

// DrawnBrushDespawn records the despawn of a brush still owned by the drawing tool.
func (l *Log) DrawnBrushDespawn(id types.ID, data types.BrushData) {
	data = data.Clone()
	l.Push(&brushRecord{kind: KindDrawnBrushDespawn, data: &data}, id)
}

func (l *Log) BrushSpawn(id types.ID, selected bool) {
	l.Push(&brushRecord{kind: KindBrushSpawn, selected: selected}, id)
}

func (l *Log) BrushDespawn(id types.ID, data types.BrushData, selected bool) {
	data = data.Clone()
	l.Push(&brushRecord{kind: KindBrushDespawn, data: &data, selected: selected}, id)
}

func (l *Log) PolygonEdit(id types.ID, prev types.Polygon) {
	l.Push(&polygonRecord{polygon: prev.Clone()}, id)
}

func (l *Log) BrushMove(ids []types.ID, delta types.Vec2, moveTexture bool) {
	l.PushIfAny(&moveRecord{kind: KindBrushMove, delta: delta, moveTexture: moveTexture}, ids)
}

func (l *Log) Flip(ids []types.ID, flip types.Flip, flipTexture bool) {
	l.PushIfAny(&flipRecord{flip: flip, flipTexture: flipTexture}, ids)
}

func (l *Log) Collision(id types.ID, prev bool) {
	l.Push(&collisionRecord{enabled: prev}, id)
}

func (l *Log) FreeDrawPointInsertion(p types.Vec2, index int) {
	l.Push(&freeDrawRecord{kind: KindFreeDrawPointInsertion, point: p, index: index})
}

func (l *Log) FreeDrawPointDeletion(p types.Vec2, index int) {
	l.Push(&freeDrawRecord{kind: KindFreeDrawPointDeletion, point: p, index: index})
}

func (l *Log) VertexInsertion(id types.ID, index int, v types.Vertex) {
	l.Push(&vertexInsertRecord{index: index, vertex: v}, id)
}

// VertexesDeletion records removed vertexes. vxs must be in ascending
// index order, each index as it was before any removal.
func (l *Log) VertexesDeletion(id types.ID, vxs []IndexedVertex) {
	l.Push(&vertexesDeletionRecord{kind: KindVertexesDeletion, vertexes: slices.Clone(vxs)}, id)
}

// SidesDeletion is VertexesDeletion for the sides tool.
func (l *Log) SidesDeletion(id types.ID, vxs []IndexedVertex) {
	l.Push(&vertexesDeletionRecord{kind: KindSidesDeletion, vertexes: slices.Clone(vxs)}, id)
}

func (l *Log) VertexesMove(id types.ID, moves []IndexedMove) {
	l.Push(&indexedMoveRecord{kind: KindVertexesMove, moves: cloneMoves(moves)}, id)
}

func (l *Log) VertexesSnap(id types.ID, moves []IndexedMove) {
	l.Push(&indexedMoveRecord{kind: KindVertexesSnap, moves: cloneMoves(moves)}, id)
}

func cloneMoves(moves []IndexedMove) []IndexedMove {
	out := slices.Clone(moves)
	for i := range out {
		out[i].Indexes = slices.Clone(out[i].Indexes)
	}
	return out
}

func (l *Log) PathCreation(id types.ID) {
	l.Push(&pathRecord{kind: KindPathCreation}, id)
}

func (l *Log) PathDeletion(id types.ID, path types.Path) {
	path = path.Clone()
	l.Push(&pathRecord{kind: KindPathDeletion, path: &path}, id)
}

func (l *Log) PathNodeInsertion(id types.ID, index int, n types.Node) {
	l.Push(&nodeInsertRecord{index: index, node: n}, id)
}

func (l *Log) PathNodesMove(id types.ID, moves []IndexedMove) {
	l.Push(&indexedMoveRecord{kind: KindPathNodesMove, moves: cloneMoves(moves)}, id)
}

func (l *Log) PathNodesSnap(id types.ID, moves []IndexedMove) {
	l.Push(&indexedMoveRecord{kind: KindPathNodesSnap, moves: cloneMoves(moves)}, id)
}

// PathNodesDeletion records removed nodes in ascending index order.
func (l *Log) PathNodesDeletion(id types.ID, nodes []IndexedNode) {
	l.Push(&nodesDeletionRecord{nodes: slices.Clone(nodes)}, id)
}

// PathNodesMovement records edits of one movement parameter. prev holds the
// values from before the edit.
func (l *Log) PathNodesMovement(id types.ID, field types.MovementField, prev []NodeValue) {
	if len(prev) == 0 {
		return
	}
	movementKind(field)
	l.Push(&movementRecord{field: field, values: slices.Clone(prev)}, id)
}

func (l *Log) Anchor(owner, attached types.ID) {
	l.Push(&anchorRecord{kind: KindAnchor, attached: attached}, owner)
}

func (l *Log) Disanchor(owner, attached types.ID) {
	l.Push(&anchorRecord{kind: KindDisanchor, attached: attached}, owner)
}

// ThingDraw records a thing placed by the thing tool.
func (l *Log) ThingDraw(id types.ID) {
	l.Push(&thingRecord{kind: KindThingDraw}, id)
}

func (l *Log) DrawnThingDespawn(id types.ID, data types.ThingInstance) {
	data = data.Clone()
	l.Push(&thingRecord{kind: KindDrawnThingDespawn, data: &data}, id)
}

func (l *Log) ThingSpawn(id types.ID) {
	l.Push(&thingRecord{kind: KindThingSpawn}, id)
}

func (l *Log) ThingDespawn(id types.ID, data types.ThingInstance) {
	data = data.Clone()
	l.Push(&thingRecord{kind: KindThingDespawn, data: &data}, id)
}

func (l *Log) ThingMove(ids []types.ID, delta types.Vec2) {
	l.PushIfAny(&moveRecord{kind: KindThingMove, delta: delta}, ids)
}

func (l *Log) ThingChange(id types.ID, prev types.ThingKind) {
	l.Push(&thingValueRecord{kind: KindThingChange, thing: prev}, id)
}

func (l *Log) ThingHeight(id types.ID, prev int8) {
	l.Push(&thingValueRecord{kind: KindThingHeight, height: prev}, id)
}

func (l *Log) ThingAngle(id types.ID, prev float64) {
	l.Push(&thingValueRecord{kind: KindThingAngle, angle: prev}, id)
}

// Texture records a texture assignment. prev is nil when the entity had
// no texture.
func (l *Log) Texture(id types.ID, prev *string) {
	if prev != nil {
		p := *prev
		prev = &p
	}
	l.Push(&textureRecord{name: prev}, id)
}

func (l *Log) TextureRemoval(id types.ID, prev types.TextureSettings) {
	prev = prev.Clone()
	l.Push(&settingsRecord{kind: KindTextureRemoval, settings: &prev}, id)
}

func (l *Log) TextureReset(id types.ID, prev types.TextureSettings) {
	prev = prev.Clone()
	l.Push(&settingsRecord{kind: KindTextureReset, settings: &prev}, id)
}

func (l *Log) Sprite(id types.ID, prevEnabled bool, prevOffsetX, prevOffsetY float64) {
	l.Push(&spriteRecord{enabled: prevEnabled, offsetX: prevOffsetX, offsetY: prevOffsetY}, id)
}

// TextureFlip records a texture flip of many entities along one axis.
func (l *Log) TextureFlip(ids []types.ID, vertical bool) {
	l.PushIfAny(&textureFlipRecord{kind: KindTextureFlip, scaleX: !vertical, scaleY: vertical}, ids)
}

// TextureScaleFlip records sign flips of the scale of one entity.
func (l *Log) TextureScaleFlip(id types.ID, x, y bool) {
	if !x && !y {
		return
	}
	l.Push(&textureFlipRecord{kind: KindTextureScaleFlip, scaleX: x, scaleY: y}, id)
}

func (l *Log) TextureScaleDelta(ids []types.ID, delta types.Vec2) {
	l.PushIfAny(&textureDeltaRecord{kind: KindTextureScaleDelta, delta: delta}, ids)
}

func (l *Log) TextureMove(ids []types.ID, delta types.Vec2) {
	l.PushIfAny(&textureDeltaRecord{kind: KindTextureMove, delta: delta}, ids)
}

func (l *Log) TextureAngleDelta(ids []types.ID, delta float64) {
	l.PushIfAny(&textureDeltaRecord{kind: KindTextureAngleDelta, delta: types.V(delta, 0)}, ids)
}

// TextureField records a change of one float texture parameter.
func (l *Log) TextureField(id types.ID, field types.TextureField, prev float64) {
	l.Push(&textureFieldRecord{field: field, value: prev}, id)
}

func (l *Log) TextureHeight(id types.ID, prev int8) {
	l.Push(&textureHeightRecord{height: prev}, id)
}

// Animation records the replacement of an entity's animation.
func (l *Log) Animation(id types.ID, prev types.Animation) {
	l.Push(&animationRecord{kind: KindAnimation, animation: prev.Clone()}, id)
}

func (l *Log) AnimationMoveUp(ids []types.ID, index int) {
	l.PushIfAny(&frameMoveRecord{kind: KindAnimationMoveUp, index: index}, ids)
}

func (l *Log) AnimationMoveDown(ids []types.ID, index int) {
	l.PushIfAny(&frameMoveRecord{kind: KindAnimationMoveDown, index: index}, ids)
}

// ListAnimationNewFrame records a frame appended at index.
func (l *Log) ListAnimationNewFrame(ids []types.ID, index int, frame types.Frame) {
	l.PushIfAny(&frameRecord{kind: KindListAnimationNewFrame, index: index, frame: frame}, ids)
}

func (l *Log) ListAnimationFrameRemoval(ids []types.ID, index int, frame types.Frame) {
	l.PushIfAny(&frameRecord{kind: KindListAnimationFrameRemoval, index: index, frame: frame}, ids)
}

func (l *Log) ListAnimationTexture(ids []types.ID, index int, prev string) {
	l.PushIfAny(&frameValueRecord{kind: KindListAnimationTexture, index: index, name: prev}, ids)
}

func (l *Log) ListAnimationTime(ids []types.ID, index int, prev float64) {
	l.PushIfAny(&frameValueRecord{kind: KindListAnimationTime, index: index, time: prev}, ids)
}

func (l *Log) AtlasAnimationX(id types.ID, prev uint32) {
	l.Push(&atlasRecord{kind: KindAtlasAnimationX, n: prev}, id)
}

func (l *Log) AtlasAnimationY(id types.ID, prev uint32) {
	l.Push(&atlasRecord{kind: KindAtlasAnimationY, n: prev}, id)
}

func (l *Log) AtlasAnimationLen(id types.ID, prev int) {
	l.Push(&atlasRecord{kind: KindAtlasAnimationLen, length: prev}, id)
}

func (l *Log) AtlasAnimationTiming(id types.ID, prev types.Timing) {
	l.Push(&atlasRecord{kind: KindAtlasAnimationTiming, timing: prev.Clone()}, id)
}

func (l *Log) AtlasAnimationUniformTime(id types.ID, prev float64) {
	l.Push(&atlasRecord{kind: KindAtlasAnimationUniformTime, time: prev}, id)
}

func (l *Log) AtlasAnimationFrameTime(id types.ID, index int, prev float64) {
	l.Push(&frameValueRecord{kind: KindAtlasAnimationFrameTime, index: index, time: prev}, id)
}

// DefaultAnimationEdits returns the push helpers for the default animation
// of texture.
func (l *Log) DefaultAnimationEdits(texture string) DefaultAnimationLog {
	return DefaultAnimationLog{log: l, texture: texture}
}

// DefaultAnimationLog pushes records that edit the default animation of one
// texture.
type DefaultAnimationLog struct {
	log     *Log
	texture string
}

func (d DefaultAnimationLog) Animation(prev types.Animation) {
	d.log.Push(&animationRecord{kind: KindDefaultAnimation, texture: d.texture, animation: prev.Clone()})
}

func (d DefaultAnimationLog) MoveUp(index int) {
	d.log.Push(&frameMoveRecord{kind: KindDefaultAnimationMoveUp, texture: d.texture, index: index})
}

func (d DefaultAnimationLog) MoveDown(index int) {
	d.log.Push(&frameMoveRecord{kind: KindDefaultAnimationMoveDown, texture: d.texture, index: index})
}

func (d DefaultAnimationLog) NewFrame(index int, frame types.Frame) {
	d.log.Push(&frameRecord{kind: KindDefaultListAnimationNewFrame, texture: d.texture, index: index, frame: frame})
}

func (d DefaultAnimationLog) FrameRemoval(index int, frame types.Frame) {
	d.log.Push(&frameRecord{kind: KindDefaultListAnimationFrameRemoval, texture: d.texture, index: index, frame: frame})
}

func (d DefaultAnimationLog) FrameTexture(index int, prev string) {
	d.log.Push(&frameValueRecord{kind: KindDefaultListAnimationTexture, texture: d.texture, index: index, name: prev})
}

func (d DefaultAnimationLog) FrameTime(index int, prev float64) {
	d.log.Push(&frameValueRecord{kind: KindDefaultListAnimationTime, texture: d.texture, index: index, time: prev})
}

func (d DefaultAnimationLog) AtlasX(prev uint32) {
	d.log.Push(&atlasRecord{kind: KindDefaultAtlasAnimationX, texture: d.texture, n: prev})
}

func (d DefaultAnimationLog) AtlasY(prev uint32) {
	d.log.Push(&atlasRecord{kind: KindDefaultAtlasAnimationY, texture: d.texture, n: prev})
}

func (d DefaultAnimationLog) AtlasLen(prev int) {
	d.log.Push(&atlasRecord{kind: KindDefaultAtlasAnimationLen, texture: d.texture, length: prev})
}

func (d DefaultAnimationLog) AtlasTiming(prev types.Timing) {
	d.log.Push(&atlasRecord{kind: KindDefaultAtlasAnimationTiming, texture: d.texture, timing: prev.Clone()})
}

func (d DefaultAnimationLog) AtlasUniformTime(prev float64) {
	d.log.Push(&atlasRecord{kind: KindDefaultAtlasAnimationUniformTime, texture: d.texture, time: prev})
}

func (d DefaultAnimationLog) AtlasFrameTime(index int, prev float64) {
	d.log.Push(&frameValueRecord{kind: KindDefaultAtlasAnimationFrameTime, texture: d.texture, index: index, time: prev})
}

// PropertyChange is the value a property had on one entity before an edit.
type PropertyChange struct {
	ID   types.ID
	Prev types.Value
}

// PushProperty records an edit of property key on every entity in changes.
// Every entity gets its own record so each keeps its own previous value.
func (l *Log) PushProperty(key string, changes []PropertyChange) {
	for _, c := range changes {
		l.Push(&propertyRecord{key: key, value: c.Prev}, c.ID)
	}
}
