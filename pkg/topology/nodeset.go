package topology

import (
	"slices"

	"github.com/dd0wney/topoview/pkg/geometry"
)

// NodeSet is the complete vertex set for one snapshot, keyed by id.
type NodeSet struct {
	nodes map[NodeID]*NetworkNode
}

// NewNodeSet returns an empty set.
func NewNodeSet() *NodeSet {
	return &NodeSet{nodes: make(map[NodeID]*NetworkNode)}
}

// Insert adds n, replacing any node with the same id. It reports whether a
// node was replaced. Children are not updated; call RebuildChildren once all
// nodes are in.
func (s *NodeSet) Insert(n *NetworkNode) (replaced bool) {
	_, replaced = s.nodes[n.ID]
	s.nodes[n.ID] = n
	return replaced
}

// Get returns the node with id, if present.
func (s *NodeSet) Get(id NodeID) (*NetworkNode, bool) {
	if s == nil {
		return nil, false
	}
	n, ok := s.nodes[id]
	return n, ok
}

// Contains reports whether id is in the set.
func (s *NodeSet) Contains(id NodeID) bool {
	_, ok := s.Get(id)
	return ok
}

// Len returns the number of nodes.
func (s *NodeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// IDs returns every id in ascending order.
func (s *NodeSet) IDs() []NodeID {
	if s == nil {
		return nil
	}
	ids := make([]NodeID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, CompareIDs)
	return ids
}

// Nodes returns every node ordered by id.
func (s *NodeSet) Nodes() []*NetworkNode {
	ids := s.IDs()
	out := make([]*NetworkNode, len(ids))
	for i, id := range ids {
		out[i] = s.nodes[id]
	}
	return out
}

// Parent returns the node's parent when its ParentID resolves inside the set.
func (s *NodeSet) Parent(n *NetworkNode) (*NetworkNode, bool) {
	if n.ParentID == nil {
		return nil, false
	}
	return s.Get(*n.ParentID)
}

// IsRoot reports whether n has no parent in the set: either no ParentID or
// one that dangles.
func (s *NodeSet) IsRoot(n *NetworkNode) bool {
	_, ok := s.Parent(n)
	return !ok
}

// Roots returns every root ordered by id.
func (s *NodeSet) Roots() []*NetworkNode {
	var roots []*NetworkNode
	for _, n := range s.Nodes() {
		if s.IsRoot(n) {
			roots = append(roots, n)
		}
	}
	return roots
}

// RebuildChildren recomputes every Children list from ParentID links in a
// single pass. Links to parents outside the set create no entry. Child lists
// are ordered by id so layout does not depend on insertion order.
func (s *NodeSet) RebuildChildren() {
	for _, n := range s.nodes {
		n.Children = n.Children[:0]
	}
	for _, n := range s.Nodes() {
		if parent, ok := s.Parent(n); ok {
			parent.Children = append(parent.Children, n.ID)
		}
	}
}

// Positions snapshots every node's position.
func (s *NodeSet) Positions() map[NodeID]geometry.Position {
	out := make(map[NodeID]geometry.Position, s.Len())
	for id, n := range s.nodes {
		out[id] = n.Position
	}
	return out
}
