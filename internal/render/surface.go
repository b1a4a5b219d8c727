// Package render draws survival snapshots onto an RGBA pixel surface.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/zombie-survival/internal/games/survival"
)

// ErrPresentation is wrapped by every failure to show a frame.
var ErrPresentation = errors.New("render: presentation failed")

// Presenter shows one snapshot per tick.
type Presenter interface {
	Present(snap survival.Snapshot) error
}

// Entity size in pixels
const entitySize = 5

// Colors used on the surface
var (
	PlayerColor = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	BasicColor  = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	FastColor   = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	TextColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Text overlay positions, relative to the top-left of the text line
const (
	hudX         = 10
	healthY      = 10
	scoreY       = 40
	gameOverDX   = -60
	gameOverGapY = 40
)

// Surface is a width×height RGBA frame: 4 bytes per pixel, row-major,
// origin top-left.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a black surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Pixels returns the raw RGBA bytes. The slice aliases the surface.
func (s *Surface) Pixels() []byte {
	return s.img.Pix
}

// Image returns the surface as an image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear zeroes every byte.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// FillRect fills a rectangle with c. Parts outside the surface are dropped.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			s.img.SetRGBA(px, py, c)
		}
	}
}

// DrawText draws text with its top-left corner at (x, y).
func (s *Surface) DrawText(x, y int, text string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(TextColor),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// Draw clears the surface and paints snap onto it.
func (s *Surface) Draw(snap survival.Snapshot) {
	s.Clear()

	if snap.GameOver() {
		cx, cy := s.Width()/2+gameOverDX, s.Height()/2
		s.DrawText(cx, cy, "Game Over")
		s.DrawText(cx, cy+gameOverGapY, fmt.Sprintf("Score: %d", snap.Score))
		return
	}

	s.fillEntity(snap.Player.X, snap.Player.Y, PlayerColor)
	for _, e := range snap.Enemies {
		c := BasicColor
		if e.Kind == survival.KindFast {
			c = FastColor
		}
		s.fillEntity(e.Pos.X, e.Pos.Y, c)
	}

	s.DrawText(hudX, healthY, fmt.Sprintf("Health: %d", snap.Health))
	s.DrawText(hudX, scoreY, fmt.Sprintf("Score: %d", snap.Score))
}

func (s *Surface) fillEntity(x, y float64, c color.RGBA) {
	s.FillRect(int(x), int(y), entitySize, entitySize, c)
}

// Present draws snap. Drawing into memory cannot fail.
func (s *Surface) Present(snap survival.Snapshot) error {
	s.Draw(snap)
	return nil
}

// PNGPresenter draws each snapshot and writes it to Out as a PNG image.
type PNGPresenter struct {
	Surface *Surface
	Out     io.Writer
}

// NewPNGPresenter creates a presenter writing field-sized frames to out.
func NewPNGPresenter(width, height int, out io.Writer) *PNGPresenter {
	return &PNGPresenter{Surface: NewSurface(width, height), Out: out}
}

// Present draws snap and encodes the frame.
func (p *PNGPresenter) Present(snap survival.Snapshot) error {
	p.Surface.Draw(snap)
	if err := png.Encode(p.Out, p.Surface.Image()); err != nil {
		return fmt.Errorf("%w: encode png: %w", ErrPresentation, err)
	}
	return nil
}
