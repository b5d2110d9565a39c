// Package displaytest provides an in-memory display.Provider for tests.
package displaytest

import (
	"kbtrackpad/internal/display"
)

// Provider serves a fixed, mutable display arrangement and counts queries.
type Provider struct {
	Displays     []display.Display
	Main         display.Display
	Err          error
	ActiveCalls  int
	PrimaryCalls int
}

// Single returns a provider with one display that is also the primary.
func Single(bounds display.Rect) *Provider {
	d := display.Display{ID: 1, Bounds: bounds}
	return &Provider{Displays: []display.Display{d}, Main: d}
}

func (p *Provider) Active() ([]display.Display, error) {
	p.ActiveCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]display.Display, len(p.Displays))
	copy(out, p.Displays)
	return out, nil
}

func (p *Provider) Primary() (display.Display, error) {
	p.PrimaryCalls++
	if p.Err != nil {
		return display.Display{}, p.Err
	}
	return p.Main, nil
}

// Resize replaces the bounds of every display with bounds. Used to simulate
// a resolution change on a single-display setup.
func (p *Provider) Resize(bounds display.Rect) {
	for i := range p.Displays {
		p.Displays[i].Bounds = bounds
	}
	p.Main.Bounds = bounds
}
