// Package keymap maps physical keys to points on the unified display
// geometry.
package keymap

import (
	"io"
	"log/slog"

	"kbtrackpad/internal/display"
	"kbtrackpad/internal/keys"
)

// DefaultTolerance absorbs floating-point noise between geometry queries.
const DefaultTolerance = 1.0

// Options configures a Mapper.
type Options struct {
	// Tolerance is the per-component difference below which two geometry
	// snapshots are treated as equal. Zero selects DefaultTolerance.
	Tolerance float64
	Logger    *slog.Logger
}

// Mapper resolves key codes to screen points. The table is built on first
// use and rebuilt whenever the display geometry changes. Mapper is not safe
// for concurrent use; events are handled one at a time.
type Mapper struct {
	provider  display.Provider
	tolerance float64
	logger    *slog.Logger

	table    map[keys.KeyCode]display.Point
	snapshot display.Rect
	built    bool
	rebuilds int
}

// New creates a Mapper reading geometry from provider.
func New(provider display.Provider, opts Options) *Mapper {
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Mapper{
		provider:  provider,
		tolerance: tolerance,
		logger:    logger,
	}
}

// Resolve returns the screen point for key. The second result is false for
// keys outside the fixed layout.
func (m *Mapper) Resolve(key keys.KeyCode) (display.Point, bool) {
	m.refresh()
	p, ok := m.table[key]
	return p, ok
}

// Rebuilds returns how many times the table has been built.
func (m *Mapper) Rebuilds() int {
	return m.rebuilds
}

// Snapshot returns the geometry the current table was built from.
func (m *Mapper) Snapshot() display.Rect {
	return m.snapshot
}

// refresh rebuilds the table when the current geometry no longer matches
// the snapshot. A failed geometry query keeps the existing table.
func (m *Mapper) refresh() {
	current, err := display.Unified(m.provider)
	if err != nil {
		m.logger.Warn("geometry query failed", "error", err, "have_table", m.built)
		return
	}
	if m.built && display.ApproxEqual(current, m.snapshot, m.tolerance) {
		return
	}
	m.rebuild(current)
}

func (m *Mapper) rebuild(geometry display.Rect) {
	table := buildTable(geometry)

	previous := m.snapshot
	m.table = table
	m.snapshot = geometry
	m.built = true
	m.rebuilds++

	m.logger.Debug("position table rebuilt",
		"geometry", geometry.String(),
		"previous", previous.String(),
		"keys", len(table),
		"rebuilds", m.rebuilds,
	)
}
