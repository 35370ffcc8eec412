package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/topoview/pkg/metrics"
	"github.com/dd0wney/topoview/pkg/topology"
)

var (
	gatewayID = uuid.MustParse("9b1f6c1e-3a41-4c1c-9d5e-0a1b2c3d4e01")
	switchID  = uuid.MustParse("9b1f6c1e-3a41-4c1c-9d5e-0a1b2c3d4e02")
	apID      = uuid.MustParse("9b1f6c1e-3a41-4c1c-9d5e-0a1b2c3d4e03")
)

func TestFileSource_LoadFixture(t *testing.T) {
	reg := metrics.NewRegistry()
	src := NewFileSource(filepath.Join("testdata", "site.yaml"), nil, reg)

	snap, err := src.Load()
	require.NoError(t, err)

	require.Len(t, snap.Devices, 3)
	require.Len(t, snap.Clients, 4)

	assert.Equal(t, topology.Online, snap.Devices[0].State)
	assert.Equal(t, topology.Offline, snap.Devices[2].State)
	assert.Equal(t, map[topology.NodeID]topology.NodeID{
		switchID: gatewayID,
		apID:     switchID,
	}, snap.Uplinks)

	assert.Equal(t, topology.ConnectionVPN, snap.Clients[2].Connection)
	assert.Equal(t, uuid.Nil, snap.Clients[2].UplinkDeviceID)

	var m dto.Metric
	counter, err := reg.SnapshotLoadsTotal.GetMetricWithLabelValues("success")
	require.NoError(t, err)
	require.NoError(t, counter.Write(&m))
	assert.Equal(t, 1.0, m.Counter.GetValue())
}

func TestFileSource_FixtureBuilds(t *testing.T) {
	snap, err := NewFileSource(filepath.Join("testdata", "site.yaml"), nil, nil).Load()
	require.NoError(t, err)

	set, stats := topology.NewBuilder(nil).Build(snap)

	assert.Equal(t, 6, set.Len(), "the vpn client is not drawn")
	assert.Equal(t, 1, stats.SkippedClients)
	assert.Equal(t, 1, stats.DanglingParents)

	ap, ok := set.Get(apID)
	require.True(t, ok)
	assert.Equal(t, topology.DeviceKind{Type: topology.AccessPoint, State: topology.Offline}, ap.Kind)
	assert.Len(t, ap.Children, 1)

	sw, _ := set.Get(switchID)
	assert.Len(t, sw.Children, 2)
}

func TestFileSource_MissingFile(t *testing.T) {
	reg := metrics.NewRegistry()
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml"), nil, reg).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read snapshot")

	var m dto.Metric
	counter, _ := reg.SnapshotLoadsTotal.GetMetricWithLabelValues("error")
	require.NoError(t, counter.Write(&m))
	assert.Equal(t, 1.0, m.Counter.GetValue())
}

func TestFileSource_StatusTracksLastGoodLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	fixture, err := os.ReadFile(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, fixture, 0o600))

	src := NewFileSource(path, nil, nil)
	assert.Equal(t, path, src.Path())
	assert.True(t, src.Status().LastSuccess.IsZero())

	_, err = src.Load()
	require.NoError(t, err)
	good := src.Status()
	assert.False(t, good.LastSuccess.IsZero())
	assert.NoError(t, good.LastError)

	require.NoError(t, os.WriteFile(path, []byte("devices: [oops"), 0o600))
	_, err = src.Load()
	require.Error(t, err)

	bad := src.Status()
	assert.Error(t, bad.LastError)
	assert.Equal(t, good.LastSuccess, bad.LastSuccess)
}

func TestDecode_JSON(t *testing.T) {
	data := []byte(`{
		"devices": [{"id": "9b1f6c1e-3a41-4c1c-9d5e-0a1b2c3d4e01", "name": "gw", "state": "online"}],
		"clients": [{"id": "4c7e2a90-5b11-4e8f-a1c2-7d3e4f5a6b01", "type": "WIRED",
		             "uplink_device_id": "9b1f6c1e-3a41-4c1c-9d5e-0a1b2c3d4e01"}]
	}`)
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	snap, err := NewFileSource(path, nil, nil).Load()
	require.NoError(t, err)
	require.Len(t, snap.Devices, 1)
	assert.Equal(t, topology.Online, snap.Devices[0].State, "state matching ignores case")
	assert.Equal(t, gatewayID, snap.Clients[0].UplinkDeviceID)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("site.yaml", []byte("devices: {"))
	assert.Error(t, err)

	_, err = Decode("site.json", []byte("{"))
	assert.Error(t, err)
}

func TestSnapshot_Validation(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		contains string
	}{
		{
			name:     "missing device id",
			file:     File{Devices: []Device{{Name: "gw"}}},
			contains: "Devices[0].ID: field is required",
		},
		{
			name:     "device id not a uuid",
			file:     File{Devices: []Device{{ID: "gw-1"}}},
			contains: "is not a UUID",
		},
		{
			name:     "unknown client type",
			file:     File{Clients: []Client{{ID: uuid.NewString(), Type: "CARRIER_PIGEON"}}},
			contains: "is not one of",
		},
		{
			name:     "wired client without uplink",
			file:     File{Clients: []Client{{ID: uuid.NewString(), Type: "WIRED"}}},
			contains: "field is required when",
		},
		{
			name:     "bad ip",
			file:     File{Devices: []Device{{ID: uuid.NewString(), IP: "999.0.0.1"}}},
			contains: "not an IP address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Snapshot()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid snapshot")
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSnapshot_VPNNeedsNoUplink(t *testing.T) {
	f := File{Clients: []Client{{ID: uuid.NewString(), Type: "VPN"}}}
	snap, err := f.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Clients, 1)
}

func TestParseState(t *testing.T) {
	assert.Equal(t, topology.Online, ParseState("ONLINE"))
	assert.Equal(t, topology.Offline, ParseState("offline"))
	assert.Equal(t, topology.StateOther, ParseState("ADOPTING"))
	assert.Equal(t, topology.StateOther, ParseState(""))
}
