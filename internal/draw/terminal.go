package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Control sequences written around and between frames.
const (
	seqClear      = "\033[H\033[2J"
	seqReset      = "\033[0m"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	// Button presses reported in SGR mode, so columns past 223 still decode.
	seqMouseOn  = "\033[?1000h\033[?1006h"
	seqMouseOff = "\033[?1006l\033[?1000l"
)

// ChunkWriter collects one frame of terminal output and writes it in chunks
// sized for SSH channels. Cursor positions are given in 1-based canvas
// coordinates and shifted by the offset that centres the play field.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // Scratch space for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter writing to w with the given offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the play field origin, e.g. after a terminal resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor position sequence for canvas cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer so the canvas can render into the frame.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends s unchanged.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// Text places s at canvas cell (col, row) in color c and resets attributes
// afterwards.
func (cw *ChunkWriter) Text(col, row int, s string, c Color) {
	cw.MoveCursor(col, row)
	seq := c.sgr()
	if seq == "" {
		cw.buf.WriteString(s)
		return
	}
	cw.buf.WriteString(seq)
	cw.buf.WriteString(s)
	cw.buf.WriteString(seqReset)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the collected frame in chunks of at most maxChunkSize bytes
// and empties the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.bufw.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// enterGameScreen hides the cursor, turns on mouse reporting and clears w.
func enterGameScreen(w io.Writer) {
	io.WriteString(w, seqHideCursor+seqMouseOn+seqClear)
}

// leaveGameScreen undoes enterGameScreen.
func leaveGameScreen(w io.Writer) {
	io.WriteString(w, seqMouseOff+seqClear+seqShowCursor)
}
