package stream

import "github.com/gogpu/asciicam"

// Message types.
const (
	TypeFrame    = "frame"
	TypeSettings = "settings"
	TypeFreeze   = "freeze"
	TypeReset    = "reset"
)

// FrameMessage carries one rendered grid to browser clients. Lines holds
// the grid rows with empty cells as spaces.
type FrameMessage struct {
	Type       string   `json:"type"`
	Cols       int      `json:"cols"`
	Rows       int      `json:"rows"`
	CellWidth  float64  `json:"cellWidth"`
	CellHeight float64  `json:"cellHeight"`
	FontSize   float64  `json:"fontSize"`
	GlowRadius float64  `json:"glowRadius"`
	Lines      []string `json:"lines"`
}

// NewFrameMessage builds the wire form of g.
func NewFrameMessage(g *asciicam.Grid) FrameMessage {
	return FrameMessage{
		Type:       TypeFrame,
		Cols:       g.Cols,
		Rows:       g.Rows,
		CellWidth:  g.CellWidth,
		CellHeight: g.CellHeight,
		FontSize:   g.FontSize,
		GlowRadius: g.GlowRadius,
		Lines:      g.Lines(),
	}
}

// ControlMessage is sent by clients to change the live settings. Nil fields
// are left unchanged.
type ControlMessage struct {
	Type      string   `json:"type"`
	Contrast  *float64 `json:"contrast,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
	Glow      *float64 `json:"glow,omitempty"`
	FontSize  *float64 `json:"fontSize,omitempty"`
	Step      *int     `json:"step,omitempty"`
	Outline   *bool    `json:"outline,omitempty"`
	Charset   *string  `json:"charset,omitempty"`
	Phrase    *string  `json:"phrase,omitempty"`
}

// Apply copies the non-nil fields of a settings message onto s.
func (m ControlMessage) Apply(s *asciicam.Settings) {
	if m.Contrast != nil {
		s.Contrast = *m.Contrast
	}
	if m.Threshold != nil {
		s.Threshold = *m.Threshold
	}
	if m.Glow != nil {
		s.Glow = *m.Glow
	}
	if m.FontSize != nil {
		s.FontSize = *m.FontSize
	}
	if m.Step != nil {
		s.Step = *m.Step
	}
	if m.Outline != nil {
		s.OutlineMode = *m.Outline
	}
	if m.Charset != nil {
		s.CharsetMode = asciicam.CharsetMode(*m.Charset)
	}
	if m.Phrase != nil {
		s.WordPhrase = *m.Phrase
	}
}
