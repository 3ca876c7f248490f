package editlog

import "strconv"

// Kind identifies the mutation a Record undoes and redoes.
type Kind uint8

const (
	KindEntitySelection Kind = iota
	KindEntityDeselection
	KindSubtracteeSelection
	KindSubtracteeDeselection
	KindVertexesSelection
	KindPathNodesSelection

	KindBrushDraw
	KindDrawnBrushDespawn
	KindBrushSpawn
	KindBrushDespawn
	KindPolygonEdit
	KindBrushMove
	KindFlip
	KindCollision

	KindFreeDrawPointInsertion
	KindFreeDrawPointDeletion

	KindVertexInsertion
	KindVertexesDeletion
	KindSidesDeletion
	KindVertexesMove
	KindVertexesSnap

	KindPathCreation
	KindPathDeletion
	KindPathNodeInsertion
	KindPathNodesMove
	KindPathNodesDeletion
	KindPathNodesSnap
	KindPathNodeStandby
	KindPathNodeAccel
	KindPathNodeDecel
	KindPathNodeMaxSpeed
	KindPathNodeMinSpeed

	KindAnchor
	KindDisanchor

	KindThingDraw
	KindDrawnThingDespawn
	KindThingSpawn
	KindThingDespawn
	KindThingMove
	KindThingChange
	KindThingHeight
	KindThingAngle

	KindTexture
	KindTextureRemoval
	KindTextureReset
	KindSprite
	KindTextureFlip
	KindTextureScaleDelta
	KindTextureScaleX
	KindTextureScaleY
	KindTextureScaleFlip
	KindTextureOffsetX
	KindTextureOffsetY
	KindTextureScrollX
	KindTextureScrollY
	KindTextureParallaxX
	KindTextureParallaxY
	KindTextureMove
	KindTextureAngle
	KindTextureAngleDelta
	KindTextureHeight

	KindAnimation
	KindAnimationMoveUp
	KindAnimationMoveDown
	KindListAnimationNewFrame
	KindListAnimationTexture
	KindListAnimationTime
	KindListAnimationFrameRemoval
	KindAtlasAnimationX
	KindAtlasAnimationY
	KindAtlasAnimationLen
	KindAtlasAnimationTiming
	KindAtlasAnimationUniformTime
	KindAtlasAnimationFrameTime

	// Default animations of a texture, addressed by texture name.
	KindDefaultAnimation
	KindDefaultAnimationMoveUp
	KindDefaultAnimationMoveDown
	KindDefaultListAnimationNewFrame
	KindDefaultListAnimationTexture
	KindDefaultListAnimationTime
	KindDefaultListAnimationFrameRemoval
	KindDefaultAtlasAnimationX
	KindDefaultAtlasAnimationY
	KindDefaultAtlasAnimationLen
	KindDefaultAtlasAnimationTiming
	KindDefaultAtlasAnimationUniformTime
	KindDefaultAtlasAnimationFrameTime

	KindProperty

	kindCount
)

// Arity is the number of entity identifiers a record of a kind takes.
type Arity uint8

const (
	// ArityNone records act on editor state that has no entity.
	ArityNone Arity = iota
	// AritySingle records act on exactly one entity.
	AritySingle
	// ArityMany records act on one or more entities.
	ArityMany
)

func (a Arity) accepts(n int) bool {
	switch a {
	case ArityNone:
		return n == 0
	case AritySingle:
		return n == 1
	default:
		return n >= 1
	}
}

func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "no identifiers"
	case AritySingle:
		return "exactly one identifier"
	default:
		return "at least one identifier"
	}
}

// Scope flags classify a kind for the group predicates and the purges.
type Scope uint8

const (
	// ScopeTool kinds only make sense while the tool that produced them is active.
	ScopeTool Scope = 1 << iota
	// ScopeTexture kinds reference the texture catalog.
	ScopeTexture
	// ScopeObject kinds reference the things catalog.
	ScopeObject
	// ScopeFreeDraw kinds edit the in-progress free-draw shape.
	ScopeFreeDraw
	// ScopeSelection kinds only change what is selected.
	ScopeSelection
	// ScopeEntitySelection kinds only change which entities are selected.
	ScopeEntitySelection
)

type kindInfo struct {
	tag   string
	arity Arity
	scope Scope
}

const (
	toolSelection = ScopeTool | ScopeSelection
	entitySelect  = ScopeSelection | ScopeEntitySelection
	freeDraw      = ScopeTool | ScopeFreeDraw
	toolThing     = ScopeTool | ScopeObject
)

var kinds = [kindCount]kindInfo{
	KindEntitySelection:       {"Entity Selection", ArityMany, entitySelect},
	KindEntityDeselection:     {"Entity Deselection", ArityMany, entitySelect},
	KindSubtracteeSelection:   {"Subtractee Selection", ArityMany, toolSelection},
	KindSubtracteeDeselection: {"Subtractee Deselection", ArityMany, toolSelection},
	KindVertexesSelection:     {"Vertexes Selection", AritySingle, toolSelection},
	KindPathNodesSelection:    {"Path Nodes Selection", AritySingle, toolSelection},

	KindBrushDraw:         {"Brush Draw", AritySingle, ScopeTool},
	KindDrawnBrushDespawn: {"Drawn Brush Despawn", AritySingle, ScopeTool},
	KindBrushSpawn:        {"Brush Spawn", AritySingle, 0},
	KindBrushDespawn:      {"Brush Despawn", AritySingle, 0},
	KindPolygonEdit:       {"Polygon Edit", AritySingle, 0},
	KindBrushMove:         {"Brush Move", ArityMany, 0},
	KindFlip:              {"Flip", ArityMany, 0},
	KindCollision:         {"Collision", AritySingle, 0},

	KindFreeDrawPointInsertion: {"Free Draw Point Insertion", ArityNone, freeDraw},
	KindFreeDrawPointDeletion:  {"Free Draw Point Deletion", ArityNone, freeDraw},

	KindVertexInsertion:  {"Vertex Insertion", AritySingle, 0},
	KindVertexesDeletion: {"Vertexes Deletion", AritySingle, 0},
	KindSidesDeletion:    {"Sides Deletion", AritySingle, 0},
	KindVertexesMove:     {"Vertexes Move", AritySingle, 0},
	KindVertexesSnap:     {"Vertexes Snap", AritySingle, 0},

	KindPathCreation:      {"Path Creation", AritySingle, 0},
	KindPathDeletion:      {"Path Deletion", AritySingle, 0},
	KindPathNodeInsertion: {"Path Node Insertion", AritySingle, 0},
	KindPathNodesMove:     {"Path Nodes Move", AritySingle, 0},
	KindPathNodesDeletion: {"Path Nodes Deletion", AritySingle, 0},
	KindPathNodesSnap:     {"Path Nodes Snap", AritySingle, 0},
	KindPathNodeStandby:   {"Path Node Standby", AritySingle, 0},
	KindPathNodeAccel:     {"Path Node Acceleration", AritySingle, 0},
	KindPathNodeDecel:     {"Path Node Deceleration", AritySingle, 0},
	KindPathNodeMaxSpeed:  {"Path Node Max Speed", AritySingle, 0},
	KindPathNodeMinSpeed:  {"Path Node Min Speed", AritySingle, 0},

	KindAnchor:    {"Anchor", AritySingle, 0},
	KindDisanchor: {"Disanchor", AritySingle, 0},

	KindThingDraw:         {"Thing Draw", AritySingle, toolThing},
	KindDrawnThingDespawn: {"Drawn Thing Despawn", AritySingle, toolThing},
	KindThingSpawn:        {"Thing Spawn", AritySingle, ScopeObject},
	KindThingDespawn:      {"Thing Despawn", AritySingle, ScopeObject},
	KindThingMove:         {"Thing Move", ArityMany, ScopeObject},
	KindThingChange:       {"Thing Change", AritySingle, ScopeObject},
	KindThingHeight:       {"Thing Height", AritySingle, ScopeObject},
	KindThingAngle:        {"Thing Angle", AritySingle, ScopeObject},

	KindTexture:           {"Texture", AritySingle, ScopeTexture},
	KindTextureRemoval:    {"Texture Removal", AritySingle, ScopeTexture},
	KindTextureReset:      {"Texture Reset", AritySingle, ScopeTexture},
	KindSprite:            {"Sprite", AritySingle, ScopeTexture},
	KindTextureFlip:       {"Texture Flip", ArityMany, ScopeTexture},
	KindTextureScaleDelta: {"Texture Scale", ArityMany, ScopeTexture},
	KindTextureScaleX:     {"Texture Scale X", AritySingle, ScopeTexture},
	KindTextureScaleY:     {"Texture Scale Y", AritySingle, ScopeTexture},
	KindTextureScaleFlip:  {"Texture Scale Flip", AritySingle, ScopeTexture},
	KindTextureOffsetX:    {"Texture Offset X", AritySingle, ScopeTexture},
	KindTextureOffsetY:    {"Texture Offset Y", AritySingle, ScopeTexture},
	KindTextureScrollX:    {"Texture Scroll X", AritySingle, ScopeTexture},
	KindTextureScrollY:    {"Texture Scroll Y", AritySingle, ScopeTexture},
	KindTextureParallaxX:  {"Texture Parallax X", AritySingle, ScopeTexture},
	KindTextureParallaxY:  {"Texture Parallax Y", AritySingle, ScopeTexture},
	KindTextureMove:       {"Texture Move", ArityMany, ScopeTexture},
	KindTextureAngle:      {"Texture Angle", AritySingle, ScopeTexture},
	KindTextureAngleDelta: {"Texture Rotation", ArityMany, ScopeTexture},
	KindTextureHeight:     {"Texture Height", AritySingle, ScopeTexture},

	KindAnimation:                 {"Animation", AritySingle, ScopeTexture},
	KindAnimationMoveUp:           {"Animation Frame Move Up", ArityMany, ScopeTexture},
	KindAnimationMoveDown:         {"Animation Frame Move Down", ArityMany, ScopeTexture},
	KindListAnimationNewFrame:     {"List Animation New Frame", ArityMany, ScopeTexture},
	KindListAnimationTexture:      {"List Animation Frame Texture", ArityMany, ScopeTexture},
	KindListAnimationTime:         {"List Animation Frame Time", ArityMany, ScopeTexture},
	KindListAnimationFrameRemoval: {"List Animation Frame Removal", ArityMany, ScopeTexture},
	KindAtlasAnimationX:           {"Atlas Animation X", AritySingle, ScopeTexture},
	KindAtlasAnimationY:           {"Atlas Animation Y", AritySingle, ScopeTexture},
	KindAtlasAnimationLen:         {"Atlas Animation Length", AritySingle, ScopeTexture},
	KindAtlasAnimationTiming:      {"Atlas Animation Timing", AritySingle, ScopeTexture},
	KindAtlasAnimationUniformTime: {"Atlas Animation Uniform Time", AritySingle, ScopeTexture},
	KindAtlasAnimationFrameTime:   {"Atlas Animation Frame Time", AritySingle, ScopeTexture},

	KindDefaultAnimation:                 {"Texture Animation", ArityNone, 0},
	KindDefaultAnimationMoveUp:           {"Texture Animation Frame Move Up", ArityNone, 0},
	KindDefaultAnimationMoveDown:         {"Texture Animation Frame Move Down", ArityNone, 0},
	KindDefaultListAnimationNewFrame:     {"Texture List Animation New Frame", ArityNone, 0},
	KindDefaultListAnimationTexture:      {"Texture List Animation Frame Texture", ArityNone, 0},
	KindDefaultListAnimationTime:         {"Texture List Animation Frame Time", ArityNone, 0},
	KindDefaultListAnimationFrameRemoval: {"Texture List Animation Frame Removal", ArityNone, 0},
	KindDefaultAtlasAnimationX:           {"Texture Atlas Animation X", ArityNone, 0},
	KindDefaultAtlasAnimationY:           {"Texture Atlas Animation Y", ArityNone, 0},
	KindDefaultAtlasAnimationLen:         {"Texture Atlas Animation Length", ArityNone, 0},
	KindDefaultAtlasAnimationTiming:      {"Texture Atlas Animation Timing", ArityNone, 0},
	KindDefaultAtlasAnimationUniformTime: {"Texture Atlas Animation Uniform Time", ArityNone, 0},
	KindDefaultAtlasAnimationFrameTime:   {"Texture Atlas Animation Frame Time", ArityNone, 0},

	KindProperty: {"Property Change", AritySingle, 0},
}

func init() {
	for k, info := range kinds {
		if info.tag == "" {
			panic("editlog: kind " + strconv.Itoa(k) + " has no table entry")
		}
	}
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kindInfo{tag: "Unknown"}
	}
	return kinds[k]
}

// String returns the human readable tag shown in the history panel.
func (k Kind) String() string { return k.info().tag }

// Arity returns how many identifiers a record of this kind takes.
func (k Kind) Arity() Arity { return k.info().arity }

// Scope returns the classification flags of the kind.
func (k Kind) Scope() Scope { return k.info().scope }

func (k Kind) is(s Scope) bool { return k.info().scope&s != 0 }

// ToolScoped reports whether the kind is only meaningful while the
// producing tool stays active.
func (k Kind) ToolScoped() bool { return k.is(ScopeTool) }

// TextureScoped reports whether the kind references the texture catalog.
func (k Kind) TextureScoped() bool { return k.is(ScopeTexture) }

// ObjectScoped reports whether the kind references the things catalog.
func (k Kind) ObjectScoped() bool { return k.is(ScopeObject) }

// FreeDraw reports whether the kind edits the free-draw shape.
func (k Kind) FreeDraw() bool { return k.is(ScopeFreeDraw) }

// Selection reports whether the kind only changes a selection.
func (k Kind) Selection() bool { return k.is(ScopeSelection) }

// EntitySelection reports whether the kind only changes entity selection.
func (k Kind) EntitySelection() bool { return k.is(ScopeEntitySelection) }
