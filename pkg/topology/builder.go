package topology

import (
	"slices"

	"github.com/dd0wney/topoview/pkg/logging"
)

// BuildStats summarises one Build call.
type BuildStats struct {
	Devices         int
	Clients         int
	SkippedClients  int
	Duplicates      int
	DanglingParents int
}

// Builder converts snapshots into node sets.
type Builder struct {
	logger logging.Logger
}

// NewBuilder creates a builder. A nil logger discards output.
func NewBuilder(logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Builder{logger: logger.With(logging.Component("builder"))}
}

// ClassifyDevice derives a device type from its capability tags. An access
// point capability wins over switching; neither yields DeviceOther.
func ClassifyDevice(features []string) DeviceType {
	switch {
	case slices.Contains(features, FeatureAccessPoint):
		return AccessPoint
	case slices.Contains(features, FeatureSwitching):
		return Switch
	default:
		return DeviceOther
	}
}

// Build turns devices and clients into a NodeSet with children resolved.
// Clients that are neither wired nor wireless are skipped. Duplicate ids keep
// the last record seen. Parent links that point outside the set are kept on
// the node, which then lays out as a root.
func (b *Builder) Build(snap Snapshot) (*NodeSet, BuildStats) {
	set := NewNodeSet()
	var stats BuildStats

	for _, d := range snap.Devices {
		node := &NetworkNode{
			ID:   d.ID,
			Name: d.Name,
			Kind: DeviceKind{Type: ClassifyDevice(d.Features), State: d.State},
		}
		if uplink, ok := snap.Uplinks[d.ID]; ok {
			parent := uplink
			node.ParentID = &parent
		}
		b.insert(set, node, &stats)
		stats.Devices++
	}

	for _, c := range snap.Clients {
		var ct ClientType
		switch c.Connection {
		case ConnectionWireless:
			ct = Wireless
		case ConnectionWired:
			ct = Wired
		default:
			stats.SkippedClients++
			b.logger.Debug("skipping client",
				logging.NodeID(c.ID), logging.String("connection", string(c.Connection)))
			continue
		}

		parent := c.UplinkDeviceID
		b.insert(set, &NetworkNode{
			ID:       c.ID,
			Name:     c.Name,
			Kind:     ClientKind{Type: ct},
			ParentID: &parent,
		}, &stats)
		stats.Clients++
	}

	set.RebuildChildren()

	for _, n := range set.Nodes() {
		if n.ParentID != nil && !set.Contains(*n.ParentID) {
			stats.DanglingParents++
			b.logger.Debug("uplink not in snapshot, treating as root",
				logging.NodeID(n.ID), logging.ParentID(*n.ParentID))
		}
	}

	if stats.Duplicates > 0 || stats.DanglingParents > 0 {
		b.logger.Warn("snapshot has inconsistent references",
			logging.Int("duplicates", stats.Duplicates),
			logging.Int("dangling_parents", stats.DanglingParents))
	}

	return set, stats
}

func (b *Builder) insert(set *NodeSet, n *NetworkNode, stats *BuildStats) {
	if set.Insert(n) {
		stats.Duplicates++
		b.logger.Warn("duplicate node id, keeping latest record", logging.NodeID(n.ID))
	}
}
