package topology

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/dd0wney/topoview/pkg/geometry"
)

// NodeID identifies a device or client across snapshots.
type NodeID = uuid.UUID

// CompareIDs orders ids bytewise; it is the tie-breaker used wherever a
// deterministic order is needed.
func CompareIDs(a, b NodeID) int {
	return bytes.Compare(a[:], b[:])
}

// DeviceType classifies infrastructure devices.
type DeviceType int

const (
	DeviceOther DeviceType = iota
	AccessPoint
	Switch
	Gateway
)

func (t DeviceType) String() string {
	switch t {
	case AccessPoint:
		return "AccessPoint"
	case Switch:
		return "Switch"
	case Gateway:
		return "Gateway"
	default:
		return "Other"
	}
}

// DeviceState is the controller-reported state of a device.
type DeviceState int

const (
	StateOther DeviceState = iota
	Online
	Offline
)

func (s DeviceState) String() string {
	switch s {
	case Online:
		return "Online"
	case Offline:
		return "Offline"
	default:
		return "Other"
	}
}

// ClientType classifies client connections.
type ClientType int

const (
	Wireless ClientType = iota
	Wired
	VPN
)

func (t ClientType) String() string {
	switch t {
	case Wireless:
		return "Wireless"
	case Wired:
		return "Wired"
	case VPN:
		return "Vpn"
	default:
		return fmt.Sprintf("ClientType(%d)", int(t))
	}
}

// Kind is either DeviceKind or ClientKind.
type Kind interface {
	isKind()
	fmt.Stringer
}

// DeviceKind marks a node as network infrastructure.
type DeviceKind struct {
	Type  DeviceType
	State DeviceState
}

// ClientKind marks a node as an end client.
type ClientKind struct {
	Type ClientType
}

func (DeviceKind) isKind() {}
func (ClientKind) isKind() {}

func (k DeviceKind) String() string { return k.Type.String() + " - " + k.State.String() }
func (k ClientKind) String() string { return k.Type.String() }

// IsDevice reports whether k is a DeviceKind.
func IsDevice(k Kind) bool {
	_, ok := k.(DeviceKind)
	return ok
}

// NetworkNode is one vertex of the map.
type NetworkNode struct {
	ID       NodeID
	Name     string
	Kind     Kind
	Position geometry.Position
	ParentID *NodeID

	// Children is derived from ParentID links on rebuild; never authoritative.
	Children []NodeID
}

// PlaceholderName is shown for nodes whose name is empty.
const PlaceholderName = "Unknown"

// DisplayName returns the name to render, substituting a placeholder for
// empty names without altering the stored one.
func (n *NetworkNode) DisplayName() string {
	if n.Name == "" {
		return PlaceholderName
	}
	return n.Name
}

// HasParentLink reports whether the node declares an uplink at all,
// resolved or not.
func (n *NetworkNode) HasParentLink() bool {
	return n.ParentID != nil
}
