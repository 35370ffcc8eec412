// Package topology defines the vertices of the network map and builds them
// from controller snapshots.
//
// # Node Model
//
// NetworkNode is one device or client. Its Kind is a closed sum type:
// either DeviceKind (access point, switch, gateway or other, with an
// online state) or ClientKind (wireless, wired or vpn). Switch over the
// concrete type; no other implementations exist.
//
// # Parent Links
//
// ParentID records the uplink a node is connected through. It is a layout
// and rendering edge, not ownership, and may point at an id that is not in
// the current NodeSet. Such a node is a root. Children are derived by
// inverting parent links whenever the set is rebuilt and never reference a
// node outside the set.
//
// # Building
//
// Build turns devices, clients and an uplink lookup into a NodeSet. The set
// is rebuilt wholesale for every snapshot; there is no incremental patching.
package topology
