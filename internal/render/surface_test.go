package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/vovakirdan/zombie-survival/internal/core"
	"github.com/vovakirdan/zombie-survival/internal/games/survival"
)

func playingSnapshot() survival.Snapshot {
	return survival.Snapshot{
		Phase:  survival.PhasePlaying,
		Field:  core.V(800, 600),
		Player: core.V(400, 300),
		Health: 90,
		Score:  7,
		Enemies: []survival.EnemyView{
			{Kind: survival.KindBasic, Pos: core.V(100, 500)},
			{Kind: survival.KindFast, Pos: core.V(700, 500)},
		},
	}
}

// anyLit reports whether any pixel in the rectangle is not black.
func anyLit(s *Surface, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if s.Image().RGBAAt(x, y) != (color.RGBA{}) {
				return true
			}
		}
	}
	return false
}

func TestNewSurface(t *testing.T) {
	s := NewSurface(800, 600)
	if s.Width() != 800 || s.Height() != 600 {
		t.Fatalf("size = %dx%d, expected 800x600", s.Width(), s.Height())
	}
	if len(s.Pixels()) != 800*600*4 {
		t.Errorf("len(Pixels()) = %d, expected %d", len(s.Pixels()), 800*600*4)
	}
	for i, b := range s.Pixels() {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected a black surface", i, b)
		}
	}
}

func TestFillRect(t *testing.T) {
	s := NewSurface(20, 10)
	s.FillRect(2, 3, 5, 5, PlayerColor)

	// Row-major RGBA: pixel (2,3) starts at (3*20+2)*4.
	idx := (3*20 + 2) * 4
	if got := s.Pixels()[idx : idx+4]; !bytes.Equal(got, []byte{0x00, 0xFF, 0x00, 0xFF}) {
		t.Errorf("pixel (2,3) = %v, expected green", got)
	}
	if s.Image().RGBAAt(6, 7) != PlayerColor {
		t.Error("bottom-right corner of the rect not filled")
	}
	if s.Image().RGBAAt(7, 7) != (color.RGBA{}) || s.Image().RGBAAt(6, 8) != (color.RGBA{}) {
		t.Error("rect spilled past its 5x5 bounds")
	}
}

func TestFillRectClips(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		lit  int
	}{
		{"inside", 5, 5, 25},
		{"past right edge", 18, 0, 10},
		{"past bottom-right corner", 18, 8, 4},
		{"negative origin", -3, -3, 4},
		{"fully outside", 40, 40, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSurface(20, 10)
			s.FillRect(tc.x, tc.y, 5, 5, BasicColor)

			lit := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 20; x++ {
					if s.Image().RGBAAt(x, y) == BasicColor {
						lit++
					}
				}
			}
			if lit != tc.lit {
				t.Errorf("lit pixels = %d, expected %d", lit, tc.lit)
			}
		})
	}
}

func TestClear(t *testing.T) {
	s := NewSurface(10, 10)
	s.FillRect(0, 0, 10, 10, TextColor)
	s.Clear()
	if anyLit(s, 0, 0, 10, 10) {
		t.Error("Clear left pixels lit")
	}
}

func TestDrawPlaying(t *testing.T) {
	s := NewSurface(800, 600)
	s.Draw(playingSnapshot())

	img := s.Image()
	if img.RGBAAt(400, 300) != PlayerColor || img.RGBAAt(404, 304) != PlayerColor {
		t.Error("player square not drawn at (400,300)")
	}
	if img.RGBAAt(100, 500) != BasicColor {
		t.Error("basic zombie not drawn red")
	}
	if img.RGBAAt(700, 500) != FastColor {
		t.Error("fast zombie not drawn blue")
	}

	// Health and score text in the top-left corner.
	if !anyLit(s, 10, 10, 120, 23) {
		t.Error("health text missing")
	}
	if !anyLit(s, 10, 40, 120, 53) {
		t.Error("score text missing")
	}
	// Nothing drawn in the centre text area.
	if anyLit(s, 340, 320, 390, 350) {
		t.Error("game over text drawn while playing")
	}
}

func TestDrawGameOver(t *testing.T) {
	snap := playingSnapshot()
	snap.Phase = survival.PhaseGameOver

	s := NewSurface(800, 600)
	s.Draw(snap)

	img := s.Image()
	if img.RGBAAt(400, 300) == PlayerColor || img.RGBAAt(100, 500) == BasicColor {
		t.Error("entities drawn on the game over frame")
	}
	if anyLit(s, 10, 10, 120, 53) {
		t.Error("HUD drawn on the game over frame")
	}
	if !anyLit(s, 340, 300, 420, 313) {
		t.Error("game over text missing")
	}
	if !anyLit(s, 340, 340, 420, 353) {
		t.Error("final score missing")
	}
}

func TestDrawClearsPreviousFrame(t *testing.T) {
	s := NewSurface(800, 600)
	s.Draw(playingSnapshot())

	next := playingSnapshot()
	next.Player = core.V(10, 500)
	s.Draw(next)

	if s.Image().RGBAAt(400, 300) != (color.RGBA{}) {
		t.Error("previous player position still drawn")
	}
}

func TestPNGPresenter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPNGPresenter(800, 600, &buf)

	if err := p.Present(playingSnapshot()); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("image bounds = %v, expected 800x600", b)
	}
	r, g, _, _ := img.At(402, 302).RGBA()
	if r != 0 || g != 0xFFFF {
		t.Errorf("player pixel in PNG = (%d,%d), expected green", r, g)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPNGPresenterWrapsErrors(t *testing.T) {
	p := NewPNGPresenter(800, 600, failingWriter{})

	err := p.Present(playingSnapshot())
	if !errors.Is(err, ErrPresentation) {
		t.Fatalf("Present() error = %v, expected ErrPresentation", err)
	}
}

func TestSurfaceIsPresenter(t *testing.T) {
	var p Presenter = NewSurface(800, 600)
	if err := p.Present(playingSnapshot()); err != nil {
		t.Errorf("Present() error = %v", err)
	}
}
