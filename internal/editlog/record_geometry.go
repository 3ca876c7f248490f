package editlog

import "github.com/bethropolis/hollow/internal/types"

// IndexedVertex is a vertex together with the index it occupies.
type IndexedVertex struct {
	Index  int
	Vertex types.Vertex
}

// IndexedNode is a path node together with the index it occupies.
type IndexedNode struct {
	Index int
	Node  types.Node
}

// IndexedMove is a displacement applied to a set of vertex or node indexes.
type IndexedMove struct {
	Indexes []int
	Delta   types.Vec2
}

// NodeValue is the movement value of the node at Index.
type NodeValue struct {
	Index int
	Value float64
}

type vertexInsertRecord struct {
	index  int
	vertex types.Vertex
	undone bool
}

func (r *vertexInsertRecord) Kind() Kind { return KindVertexInsertion }

func (r *vertexInsertRecord) apply(doc Document, ids []types.ID) {
	if r.undone {
		doc.InsertVertex(ids[0], r.index, r.vertex)
	} else {
		doc.DeleteVertex(ids[0], r.index)
	}
	r.undone = !r.undone
}

// vertexesDeletionRecord holds the removed vertexes in ascending index order.
type vertexesDeletionRecord struct {
	kind     Kind
	vertexes []IndexedVertex
	undone   bool
}

func (r *vertexesDeletionRecord) Kind() Kind { return r.kind }

func (r *vertexesDeletionRecord) apply(doc Document, ids []types.ID) {
	if r.undone {
		for i := len(r.vertexes) - 1; i >= 0; i-- {
			doc.DeleteVertex(ids[0], r.vertexes[i].Index)
		}
	} else {
		for _, v := range r.vertexes {
			doc.InsertVertex(ids[0], v.Index, v.Vertex)
		}
	}
	r.undone = !r.undone
}

// indexedMoveRecord covers vertex and path node moves and snaps.
type indexedMoveRecord struct {
	kind  Kind
	moves []IndexedMove
}

func (r *indexedMoveRecord) Kind() Kind { return r.kind }

func (r *indexedMoveRecord) apply(doc Document, ids []types.ID) {
	nodes := r.kind == KindPathNodesMove || r.kind == KindPathNodesSnap
	for i := len(r.moves) - 1; i >= 0; i-- {
		m := &r.moves[i]
		m.Delta = m.Delta.Neg()
		if nodes {
			doc.MovePathNodes(ids[0], m.Indexes, m.Delta)
		} else {
			doc.MoveVertexes(ids[0], m.Indexes, m.Delta)
		}
	}
}

// pathRecord creates or deletes a whole path. A nil path means the path is
// live on the entity.
type pathRecord struct {
	kind Kind
	path *types.Path
}

func (r *pathRecord) Kind() Kind { return r.kind }

func (r *pathRecord) apply(doc Document, ids []types.ID) {
	if r.path == nil {
		p := doc.RemovePath(ids[0])
		r.path = &p
		return
	}
	doc.SetPath(ids[0], *r.path)
	r.path = nil
}

type nodeInsertRecord struct {
	index  int
	node   types.Node
	undone bool
}

func (r *nodeInsertRecord) Kind() Kind { return KindPathNodeInsertion }

func (r *nodeInsertRecord) apply(doc Document, ids []types.ID) {
	if r.undone {
		doc.InsertPathNode(ids[0], r.index, r.node)
	} else {
		doc.DeletePathNode(ids[0], r.index)
	}
	r.undone = !r.undone
}

type nodesDeletionRecord struct {
	nodes  []IndexedNode
	undone bool
}

func (r *nodesDeletionRecord) Kind() Kind { return KindPathNodesDeletion }

func (r *nodesDeletionRecord) apply(doc Document, ids []types.ID) {
	if r.undone {
		for i := len(r.nodes) - 1; i >= 0; i-- {
			doc.DeletePathNode(ids[0], r.nodes[i].Index)
		}
	} else {
		for _, n := range r.nodes {
			doc.InsertPathNode(ids[0], n.Index, n.Node)
		}
	}
	r.undone = !r.undone
}

var movementKinds = map[types.MovementField]Kind{
	types.MovementStandby:  KindPathNodeStandby,
	types.MovementAccel:    KindPathNodeAccel,
	types.MovementDecel:    KindPathNodeDecel,
	types.MovementMaxSpeed: KindPathNodeMaxSpeed,
	types.MovementMinSpeed: KindPathNodeMinSpeed,
}

type movementRecord struct {
	field  types.MovementField
	values []NodeValue
}

func (r *movementRecord) Kind() Kind { return movementKind(r.field) }

func movementKind(f types.MovementField) Kind {
	k, ok := movementKinds[f]
	if !ok {
		violate("PathNodesMovement", "unknown movement field %d", f)
	}
	return k
}

func (r *movementRecord) apply(doc Document, ids []types.ID) {
	for i := range r.values {
		v := &r.values[i]
		v.Value = doc.SetPathNodeMovement(ids[0], v.Index, r.field, v.Value)
	}
}
