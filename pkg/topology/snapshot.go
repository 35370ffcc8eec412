package topology

// Capability tags a controller reports for a device.
const (
	FeatureAccessPoint = "accessPoint"
	FeatureSwitching   = "switching"
)

// ConnectionType is the controller's client subtype.
type ConnectionType string

const (
	ConnectionWired    ConnectionType = "WIRED"
	ConnectionWireless ConnectionType = "WIRELESS"
	ConnectionVPN      ConnectionType = "VPN"
	ConnectionTeleport ConnectionType = "TELEPORT"
)

// DeviceOverview is one device as delivered by the refresh cycle.
type DeviceOverview struct {
	ID       NodeID
	Name     string
	Model    string
	State    DeviceState
	Features []string
}

// ClientOverview is one client as delivered by the refresh cycle. Wired and
// wireless clients always declare the device they are uplinked to.
type ClientOverview struct {
	ID             NodeID
	Name           string
	Connection     ConnectionType
	UplinkDeviceID NodeID
}

// Snapshot is everything one refresh delivers. Uplinks maps a device id to
// the id of the device it is uplinked to.
type Snapshot struct {
	Devices []DeviceOverview
	Clients []ClientOverview
	Uplinks map[NodeID]NodeID
}
