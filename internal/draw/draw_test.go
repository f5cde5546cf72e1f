package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomz197/destroyds/internal/physics"
)

func TestCanvasRendersOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[1;1H▀") {
		t.Fatalf("first render = %q, want upper half block at 1;1", buf.String())
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unchanged render wrote %q", buf.String())
	}

	c.Clear()
	c.Render(&buf)
	if buf.String() != "\033[1;1H " {
		t.Fatalf("render after clear = %q", buf.String())
	}
}

func TestCanvasReserveSkipsCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0)
	c.Reserve(1, 1, 2)

	var buf bytes.Buffer
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("reserved cell rendered: %q", buf.String())
	}

	// Once released the cell content is unknown and gets rewritten.
	c.Clear()
	c.SetFloat(0, 0)
	c.Render(&buf)
	got := buf.String()
	if !strings.Contains(got, "\033[1;1H▀") || !strings.Contains(got, "\033[1;2H ") {
		t.Fatalf("render after release = %q", got)
	}
}

func TestCanvasForceRedraw(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetFloat(0, 1)
	var buf bytes.Buffer
	c.Render(&buf)
	buf.Reset()

	c.ForceRedraw()
	c.Render(&buf)
	if buf.String() != "\033[1;1H▄" {
		t.Fatalf("forced render = %q", buf.String())
	}
}

func TestCanvasTerminalToLogical(t *testing.T) {
	c := NewScaledCanvas(10, 5, 40, 40)
	x, y := c.TerminalToLogical(1, 1)
	if x != 2 || y != 4 {
		t.Fatalf("TerminalToLogical(1,1) = %v,%v", x, y)
	}
	col, row := c.LogicalToTerminal(x-0.5, y)
	if col != 1 || row != 1 {
		t.Fatalf("round trip = %d,%d", col, row)
	}
}

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestTerminalEnterAndLeave(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 256, 192, fixedSize(80, 24))
	if got := out.String(); got != seqHideCursor+seqMouseOn+seqClear {
		t.Fatalf("NewTerminal wrote %q", got)
	}
	out.Reset()
	term.Close()
	if got := out.String(); got != seqMouseOff+seqClear+seqShowCursor {
		t.Fatalf("Close wrote %q", got)
	}
}

func TestTerminalLayoutKeepsAspect(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 256, 192, fixedSize(80, 24))
	if err := term.Begin(); err != nil {
		t.Fatal(err)
	}
	if got := term.canvas.TerminalWidth(); got != 64 {
		t.Errorf("cols = %d, want 64", got)
	}
	if got := term.canvas.TerminalHeight(); got != 24 {
		t.Errorf("rows = %d, want 24", got)
	}
	if got := term.canvas.OffsetCol(); got != 8 {
		t.Errorf("offset col = %d, want 8", got)
	}

	p, ok := term.ToLogical(9, 1)
	if !ok || p.X != 2 || p.Y != 4 {
		t.Errorf("ToLogical(9,1) = %v,%v", p, ok)
	}
	if _, ok := term.ToLogical(8, 1); ok {
		t.Error("click on the border mapped into the play field")
	}
	if _, ok := term.ToLogical(73, 1); ok {
		t.Error("click right of the play field mapped into it")
	}
}

func TestTerminalTextRectAndPresent(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 256, 192, fixedSize(80, 24))
	if err := term.Begin(); err != nil {
		t.Fatal(err)
	}

	r := term.DrawText("ab", physics.Vec2{}, TextStyle{Anchor: AnchorTopLeft, Color: ColorGreen})
	if r != (physics.Rect{X: 0, Y: 0, W: 8, H: 8}) {
		t.Fatalf("text rect = %+v", r)
	}
	if p, _ := term.ToLogical(9, 1); !r.Contains(p) {
		t.Errorf("click on the text at %v is outside %+v", p, r)
	}

	out.Reset()
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[32mab\033[0m") {
		t.Fatalf("present did not write colored text: %q", out.String())
	}

	// Unchanged text is not written again.
	out.Reset()
	if err := term.Begin(); err != nil {
		t.Fatal(err)
	}
	term.DrawText("ab", physics.Vec2{}, TextStyle{Anchor: AnchorTopLeft, Color: ColorGreen})
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "ab") {
		t.Fatalf("unchanged text rewritten: %q", out.String())
	}

	// Vanished text is blanked by the canvas.
	out.Reset()
	if err := term.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := term.Present(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[1;9H ") {
		t.Fatalf("vanished text not cleared: %q", out.String())
	}
}

func TestTerminalTextIsClipped(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 256, 192, fixedSize(80, 24))
	if err := term.Begin(); err != nil {
		t.Fatal(err)
	}
	term.DrawText(strings.Repeat("x", 100), physics.Vec2{X: 250, Y: 10}, TextStyle{Anchor: AnchorTopLeft})
	if n := len(term.texts[0].text); n > 64 {
		t.Fatalf("text of %d runes not clipped to the canvas", n)
	}
}

func TestTerminalBeginReportsSizeError(t *testing.T) {
	want := errors.New("no tty")
	term := NewTerminal(&bytes.Buffer{}, 256, 192, func() (int, int, error) { return 0, 0, want })
	if err := term.Begin(); !errors.Is(err, want) {
		t.Fatalf("Begin() = %v, want %v", err, want)
	}
}

func TestChunkWriterOffsets(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.Text(1, 1, "hi", ColorDefault)
	cw.Text(2, 1, "go", ColorMagenta)
	if out.Len() != 0 {
		t.Fatal("ChunkWriter wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\033[3;4Hhi\033[3;5H\033[35mgo\033[0m" {
		t.Fatalf("got %q", out.String())
	}
}
