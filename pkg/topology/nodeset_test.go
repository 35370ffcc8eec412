package topology

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareIDs(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	assert.Negative(t, CompareIDs(a, b))
	assert.Positive(t, CompareIDs(b, a))
	assert.Zero(t, CompareIDs(a, a))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "AccessPoint - Online", DeviceKind{Type: AccessPoint, State: Online}.String())
	assert.Equal(t, "Switch - Offline", DeviceKind{Type: Switch, State: Offline}.String())
	assert.Equal(t, "Other - Other", DeviceKind{}.String())
	assert.Equal(t, "Wireless", ClientKind{Type: Wireless}.String())
	assert.Equal(t, "Vpn", ClientKind{Type: VPN}.String())

	assert.True(t, IsDevice(DeviceKind{}))
	assert.False(t, IsDevice(ClientKind{}))
}

func TestDisplayName(t *testing.T) {
	n := &NetworkNode{ID: id("x")}
	assert.Equal(t, PlaceholderName, n.DisplayName())
	assert.Empty(t, n.Name, "placeholder must not be stored")

	n.Name = "Lobby AP"
	assert.Equal(t, "Lobby AP", n.DisplayName())
}

func TestNodeSet_InsertAndGet(t *testing.T) {
	s := NewNodeSet()
	n := &NetworkNode{ID: id("a"), Name: "first", Kind: DeviceKind{}}

	assert.False(t, s.Insert(n))
	assert.True(t, s.Insert(&NetworkNode{ID: id("a"), Name: "second", Kind: DeviceKind{}}))
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(id("a"))
	require.True(t, ok)
	assert.Equal(t, "second", got.Name)

	_, ok = s.Get(id("missing"))
	assert.False(t, ok)
}

func TestNodeSet_NilSafe(t *testing.T) {
	var s *NodeSet
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
	assert.False(t, s.Contains(id("a")))
}

func TestNodeSet_IDsSorted(t *testing.T) {
	s := NewNodeSet()
	for _, name := range []string{"c", "a", "b", "d", "e"} {
		s.Insert(&NetworkNode{ID: id(name), Kind: DeviceKind{}})
	}

	ids := s.IDs()
	require.Len(t, ids, 5)
	for i := 1; i < len(ids); i++ {
		assert.Negative(t, CompareIDs(ids[i-1], ids[i]))
	}
}

func TestNodeSet_RebuildChildren(t *testing.T) {
	s := NewNodeSet()
	root := &NetworkNode{ID: id("root"), Kind: DeviceKind{}}
	s.Insert(root)

	p := root.ID
	for _, name := range []string{"c1", "c2", "c3"} {
		s.Insert(&NetworkNode{ID: id(name), Kind: ClientKind{}, ParentID: &p})
	}
	ghost := id("ghost")
	orphan := &NetworkNode{ID: id("orphan"), Kind: ClientKind{}, ParentID: &ghost}
	s.Insert(orphan)

	s.RebuildChildren()
	assert.Len(t, root.Children, 3)
	assert.ElementsMatch(t, []NodeID{id("c1"), id("c2"), id("c3")}, root.Children)

	// Idempotent.
	s.RebuildChildren()
	assert.Len(t, root.Children, 3)

	assert.True(t, s.IsRoot(root))
	assert.True(t, s.IsRoot(orphan), "dangling parent is a root")
	assert.True(t, orphan.HasParentLink())

	roots := s.Roots()
	assert.Len(t, roots, 2)
}

func TestNodeSet_ChildEntryRequiresParentLink(t *testing.T) {
	s := NewNodeSet()
	a := &NetworkNode{ID: id("a"), Kind: DeviceKind{}}
	b := &NetworkNode{ID: id("b"), Kind: DeviceKind{}}
	pa := a.ID
	b.ParentID = &pa
	s.Insert(a)
	s.Insert(b)
	s.RebuildChildren()

	for _, n := range s.Nodes() {
		for _, cid := range n.Children {
			child, ok := s.Get(cid)
			require.True(t, ok)
			require.NotNil(t, child.ParentID)
			assert.Equal(t, n.ID, *child.ParentID)
		}
	}
}
