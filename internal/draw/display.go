package draw

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/physics"
)

// ringSegments is the number of edges used to approximate circles.
const ringSegments = 24

type textItem struct {
	col, row int
	text     string
	color    Color
}

// Terminal draws logical-resolution frames onto an ANSI terminal. The logical
// play field keeps its aspect ratio and is centred in the terminal; a border
// fills the rest.
type Terminal struct {
	out      io.Writer
	cw       *ChunkWriter
	canvas   *Canvas
	sizeFunc TermSizeFunc

	logicalW float64
	logicalH float64
	termW    int
	termH    int
	force    bool

	texts     []textItem
	prevTexts []textItem
}

// NewTerminal prepares w for drawing a logicalW×logicalH play field: the
// cursor is hidden, mouse reporting enabled and the screen cleared.
func NewTerminal(w io.Writer, logicalW, logicalH int, sizeFunc TermSizeFunc) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	t := &Terminal{
		out:      w,
		cw:       NewChunkWriter(w, 0, 0),
		canvas:   NewScaledCanvas(1, 1, float64(logicalW), float64(logicalH)),
		sizeFunc: sizeFunc,
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		force:    true,
	}
	enterGameScreen(w)
	return t
}

// Close restores the terminal.
func (t *Terminal) Close() {
	leaveGameScreen(t.out)
}

// Begin starts a frame. It picks up terminal resizes and clears the canvas.
func (t *Terminal) Begin() error {
	w, h, err := t.sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if w != t.termW || h != t.termH {
		t.layout(w, h)
	}
	t.canvas.Clear()
	t.texts = t.texts[:0]
	return nil
}

// layout fits the play field into a w×h terminal without distorting it.
// Each cell holds two square-ish sub-pixels stacked vertically.
func (t *Terminal) layout(w, h int) {
	t.termW, t.termH = w, h

	cols, rows := w, h
	aspect := t.logicalW / t.logicalH
	if float64(w) > aspect*float64(2*h) {
		cols = int(math.Round(aspect * float64(2*h)))
	} else {
		rows = int(math.Round(float64(w) / aspect / 2))
	}
	cols = max(1, min(cols, w))
	rows = max(1, min(rows, h))

	offCol := (w - cols) / 2
	offRow := (h - rows) / 2
	t.canvas.Resize(cols, rows)
	t.canvas.SetOffset(offCol, offRow)
	t.cw.SetOffset(offCol, offRow)
	t.force = true
}

// DrawSprite draws every outline of s centred at pos and rotated to heading.
func (t *Terminal) DrawSprite(s asset.Sprite, pos, heading physics.Vec2) {
	for _, path := range s.Paths {
		points := t.canvas.BorrowPoints(len(path))
		for i, p := range path {
			q := s.Transform(p, pos, heading)
			points[i] = Point{X: q.X, Y: q.Y}
		}
		if len(points) < 3 {
			for i := 0; i+1 < len(points); i++ {
				t.canvas.DrawLine(points[i], points[i+1])
			}
			continue
		}
		t.canvas.DrawPolygon(points, s.Filled)
	}
}

// DrawRing draws a circle outline.
func (t *Terminal) DrawRing(center physics.Vec2, radius float64) {
	points := t.canvas.BorrowPoints(ringSegments)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / ringSegments
		points[i] = Point{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
	}
	t.canvas.DrawPolygon(points, false)
}

// DrawLine draws a straight line.
func (t *Terminal) DrawLine(from, to physics.Vec2) {
	t.canvas.DrawLine(Point{X: from.X, Y: from.Y}, Point{X: to.X, Y: to.Y})
}

// DrawPoint sets a single sub-pixel.
func (t *Terminal) DrawPoint(p physics.Vec2) {
	t.canvas.SetFloat(p.X, p.Y)
}

// DrawText queues text for the frame and returns the logical rectangle it
// covers, for hit testing mouse clicks.
func (t *Terminal) DrawText(text string, at physics.Vec2, style TextStyle) physics.Rect {
	n := utf8.RuneCountInString(text)
	col, row := t.canvas.LogicalToTerminal(at.X, at.Y)
	if style.Anchor == AnchorCenter {
		col -= n / 2
	}
	col = max(1, col)
	row = max(1, min(row, t.canvas.TerminalHeight()))
	if room := t.canvas.TerminalWidth() - col + 1; n > room {
		text = truncate(text, max(0, room))
		n = utf8.RuneCountInString(text)
	}

	t.texts = append(t.texts, textItem{col: col, row: row, text: text, color: style.Color})
	t.canvas.Reserve(col, row, n)

	x0, y0 := t.cellOrigin(col, row)
	x1, y1 := t.cellOrigin(col+n, row+1)
	return physics.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// cellOrigin returns the logical coordinates of the top-left corner of a cell.
func (t *Terminal) cellOrigin(col, row int) (float64, float64) {
	cx, cy := t.canvas.TerminalToLogical(col, row)
	hw, hh := t.cellSize()
	return cx - hw/2, cy - hh/2
}

func (t *Terminal) cellSize() (float64, float64) {
	x0, y0 := t.canvas.TerminalToLogical(1, 1)
	x1, y1 := t.canvas.TerminalToLogical(2, 2)
	return x1 - x0, y1 - y0
}

// ToLogical converts a 1-based terminal cell, as reported by mouse clicks, to
// logical coordinates. ok is false outside the play field.
func (t *Terminal) ToLogical(col, row int) (p physics.Vec2, ok bool) {
	col -= t.canvas.OffsetCol()
	row -= t.canvas.OffsetRow()
	if col < 1 || row < 1 || col > t.canvas.TerminalWidth() || row > t.canvas.TerminalHeight() {
		return physics.Vec2{}, false
	}
	x, y := t.canvas.TerminalToLogical(col, row)
	return physics.Vec2{X: x, Y: y}, true
}

// Present writes the frame: changed canvas cells first, then the text overlay.
func (t *Terminal) Present() error {
	if t.force {
		t.cw.WriteString(seqClear)
		t.canvas.ForceRedraw()
		t.canvas.RenderBorder(t.cw)
		t.prevTexts = t.prevTexts[:0]
		t.force = false
	}

	t.canvas.Render(t.cw)

	for _, item := range t.texts {
		if containsText(t.prevTexts, item) {
			continue
		}
		t.cw.Text(item.col, item.row, item.text, item.color)
	}
	t.prevTexts = append(t.prevTexts[:0], t.texts...)

	return t.cw.Flush()
}

func containsText(items []textItem, item textItem) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
