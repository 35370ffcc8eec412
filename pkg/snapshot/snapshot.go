// Package snapshot reads controller snapshots from disk. It stands in for
// the periodic poll of a network controller: each Load returns a complete,
// validated topology.Snapshot.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/metrics"
	"github.com/dd0wney/topoview/pkg/topology"
	"github.com/dd0wney/topoview/pkg/validation"
)

// Device is one device record as written in a snapshot file.
type Device struct {
	ID       string   `yaml:"id" json:"id" validate:"required,uuid"`
	Name     string   `yaml:"name" json:"name"`
	Model    string   `yaml:"model" json:"model"`
	MAC      string   `yaml:"mac" json:"mac" validate:"omitempty,mac"`
	IP       string   `yaml:"ip" json:"ip" validate:"omitempty,ip"`
	State    string   `yaml:"state" json:"state"`
	Features []string `yaml:"features" json:"features"`
	Uplink   string   `yaml:"uplink_device_id" json:"uplink_device_id" validate:"omitempty,uuid"`
}

// Client is one client record as written in a snapshot file.
type Client struct {
	ID     string `yaml:"id" json:"id" validate:"required,uuid"`
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type" json:"type" validate:"required,oneof=WIRED WIRELESS VPN TELEPORT"`
	MAC    string `yaml:"mac" json:"mac" validate:"omitempty,mac"`
	IP     string `yaml:"ip" json:"ip" validate:"omitempty,ip"`
	Uplink string `yaml:"uplink_device_id" json:"uplink_device_id" validate:"required_if=Type WIRED,required_if=Type WIRELESS,omitempty,uuid"`
}

// File is the on-disk layout of a snapshot.
type File struct {
	Devices []Device `yaml:"devices" json:"devices" validate:"dive"`
	Clients []Client `yaml:"clients" json:"clients" validate:"dive"`
}

// Decode parses data as JSON when name ends in .json and as YAML otherwise.
func Decode(name string, data []byte) (*File, error) {
	var f File
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode JSON snapshot: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode YAML snapshot: %w", err)
		}
	}
	return &f, nil
}

// Snapshot validates f and converts it for the graph builder.
func (f *File) Snapshot() (topology.Snapshot, error) {
	if err := validation.Struct(f); err != nil {
		return topology.Snapshot{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	snap := topology.Snapshot{
		Devices: make([]topology.DeviceOverview, 0, len(f.Devices)),
		Clients: make([]topology.ClientOverview, 0, len(f.Clients)),
		Uplinks: make(map[topology.NodeID]topology.NodeID),
	}

	// IDs were validated above, so MustParse cannot panic.
	for _, d := range f.Devices {
		id := uuid.MustParse(d.ID)
		snap.Devices = append(snap.Devices, topology.DeviceOverview{
			ID:       id,
			Name:     d.Name,
			Model:    d.Model,
			State:    ParseState(d.State),
			Features: d.Features,
		})
		if d.Uplink != "" {
			snap.Uplinks[id] = uuid.MustParse(d.Uplink)
		}
	}

	for _, c := range f.Clients {
		co := topology.ClientOverview{
			ID:         uuid.MustParse(c.ID),
			Name:       c.Name,
			Connection: topology.ConnectionType(c.Type),
		}
		if c.Uplink != "" {
			co.UplinkDeviceID = uuid.MustParse(c.Uplink)
		}
		snap.Clients = append(snap.Clients, co)
	}

	return snap, nil
}

// ParseState maps a controller state string to a DeviceState.
func ParseState(s string) topology.DeviceState {
	switch strings.ToUpper(s) {
	case "ONLINE":
		return topology.Online
	case "OFFLINE":
		return topology.Offline
	default:
		return topology.StateOther
	}
}

// FileSource loads snapshots from one file.
type FileSource struct {
	path    string
	logger  logging.Logger
	metrics *metrics.Registry

	mu       sync.Mutex
	lastGood time.Time
	lastErr  error
}

// LoadStatus describes the most recent Load attempts.
type LoadStatus struct {
	LastSuccess time.Time
	LastError   error
}

// NewFileSource creates a source for path. logger and registry may be nil.
func NewFileSource(path string, logger logging.Logger, registry *metrics.Registry) *FileSource {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &FileSource{
		path:    path,
		logger:  logger.With(logging.Component("snapshot"), logging.Path(path)),
		metrics: registry,
	}
}

// Path returns the file the source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads, decodes and validates the file.
func (s *FileSource) Load() (topology.Snapshot, error) {
	start := time.Now()
	snap, err := s.load()
	elapsed := time.Since(start)

	s.mu.Lock()
	s.lastErr = err
	if err == nil {
		s.lastGood = start
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.RecordSnapshotLoad("error", elapsed)
		s.logger.Error("snapshot load failed", logging.Error(err))
		return topology.Snapshot{}, err
	}

	s.metrics.RecordSnapshotLoad("success", elapsed)
	s.logger.Debug("snapshot loaded",
		logging.Int("devices", len(snap.Devices)),
		logging.Int("clients", len(snap.Clients)),
		logging.Latency(elapsed))
	return snap, nil
}

// Status reports when the file last loaded cleanly and the error from the
// latest attempt, if it failed. Safe to call while Load runs.
func (s *FileSource) Status() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LoadStatus{LastSuccess: s.lastGood, LastError: s.lastErr}
}

func (s *FileSource) load() (topology.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return topology.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	f, err := Decode(s.path, data)
	if err != nil {
		return topology.Snapshot{}, err
	}
	return f.Snapshot()
}
