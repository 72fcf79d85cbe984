package model

import "github.com/ashwm/ashwm/internal/change"

func clampLayer(l int) int {
	switch {
	case l < MinLayer:
		return MinLayer
	case l > MaxLayer:
		return MaxLayer
	default:
		return l
	}
}

func (m *Model) setLayer(c *Client, layer int) {
	layer = clampLayer(layer)
	if layer == c.Layer {
		return
	}
	c.Layer = layer
	m.emit(change.LayerChange(c.Window, layer))
}

// UpLayer, DownLayer move w one layer toward MaxLayer/MinLayer,
// clamping at the bound. No-op (no event) if w is already at the
// bound, or unknown.
func (m *Model) UpLayer(w change.Window) {
	if c, ok := m.clients[w]; ok {
		m.setLayer(c, c.Layer+1)
	}
}

func (m *Model) DownLayer(w change.Window) {
	if c, ok := m.clients[w]; ok {
		m.setLayer(c, c.Layer-1)
	}
}

// SetLayer pins w to an absolute layer, clamped to [MinLayer,
// MaxLayer]. No-op if the clamped value equals the current layer.
func (m *Model) SetLayer(w change.Window, layer int) {
	if c, ok := m.clients[w]; ok {
		m.setLayer(c, layer)
	}
}
