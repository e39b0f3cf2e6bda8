package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingSink remembers every sound command.
type recordingSink struct {
	plays   []audio.SoundID
	volumes map[audio.SoundID]float64
	loops   []audio.SoundID
	stops   []audio.SoundID
}

func newRecordingSink() *recordingSink {
	return &recordingSink{volumes: make(map[audio.SoundID]float64)}
}

func (r *recordingSink) Play(id audio.SoundID)                 { r.plays = append(r.plays, id) }
func (r *recordingSink) SetVolume(id audio.SoundID, v float64) { r.volumes[id] = v }
func (r *recordingSink) Loop(id audio.SoundID)                 { r.loops = append(r.loops, id) }
func (r *recordingSink) Stop(id audio.SoundID)                 { r.stops = append(r.stops, id) }

func (r *recordingSink) count(id audio.SoundID) int {
	n := 0
	for _, p := range r.plays {
		if p == id {
			n++
		}
	}
	return n
}

// drawOp is one recorded Surface call.
type drawOp struct {
	kind   string // blit, text, hline, panel
	sprite *core.Sprite
	rect   core.Rect
	text   string
	y      int
	alpha  uint8
}

// recordingSurface remembers every draw call in order.
type recordingSurface struct {
	ops []drawOp
}

func (r *recordingSurface) Blit(s *core.Sprite, rect core.Rect) {
	r.ops = append(r.ops, drawOp{kind: "blit", sprite: s, rect: rect})
}

func (r *recordingSurface) Text(text string, x, y int, _ core.Align, _ core.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", text: text, rect: core.NewRect(x, y, 0, 0)})
}

func (r *recordingSurface) HLine(y int, _ core.Color, alpha uint8) {
	r.ops = append(r.ops, drawOp{kind: "hline", y: y, alpha: alpha})
}

func (r *recordingSurface) Panel(rect core.Rect) {
	r.ops = append(r.ops, drawOp{kind: "panel", rect: rect})
}

func (r *recordingSurface) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

func (r *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

var _ Surface = (*recordingSurface)(nil)
var _ Surface = (*core.Canvas)(nil)
var _ audio.Sink = (*recordingSink)(nil)

func newTestSession(t *testing.T, seed int64) (*Session, *recordingSink) {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	sink := newRecordingSink()
	return NewSession(cfg, DefaultAssets(cfg), sink, rand.New(rand.NewSource(seed))), sink
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}
