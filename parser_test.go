package headlessterm

import (
	"errors"
	"testing"
)

func TestTerminalFeed(t *testing.T) {
	term := New(WithSize(24, 80))

	if err := term.Feed([]byte("hello")); err != nil {
		t.Fatalf("Feed returned unexpected error: %v", err)
	}

	if term.Cell(0, 0).Char != 'h' {
		t.Errorf("expected 'h' at (0,0), got %q", term.Cell(0, 0).Char)
	}
}

func TestTerminalCloseRejectsFeed(t *testing.T) {
	term := New(WithSize(24, 80))

	if term.Closed() {
		t.Fatal("expected new terminal to not be closed")
	}

	term.Close()

	if !term.Closed() {
		t.Fatal("expected terminal to report closed after Close")
	}

	err := term.Feed([]byte("hello"))
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
}

func TestTerminalCloseIdempotent(t *testing.T) {
	term := New(WithSize(24, 80))

	term.Close()
	term.Close()

	if !term.Closed() {
		t.Error("expected terminal to remain closed")
	}
}

func TestTerminalWriteStillAcceptsAfterClose(t *testing.T) {
	// Write is the unchecked entry point; only Feed enforces the closed
	// lifecycle (see parser.go).
	term := New(WithSize(24, 80))
	term.Close()

	if _, err := term.Write([]byte("hello")); err != nil {
		t.Errorf("Write returned unexpected error: %v", err)
	}
}

func TestDECSWLResetsToSingleWidth(t *testing.T) {
	term := New(WithSize(24, 80))

	term.Feed([]byte("\x1b#6")) // DECDWL
	if !term.activeBuffer.IsDoubleWidth(0) {
		t.Fatal("expected row 0 double-width after DECDWL")
	}

	term.Feed([]byte("\x1b#5")) // DECSWL
	if term.activeBuffer.IsDoubleWidth(0) {
		t.Error("expected row 0 single-width after DECSWL")
	}
}

func TestDECDWLSetsDoubleWidth(t *testing.T) {
	term := New(WithSize(24, 80))

	term.Feed([]byte("\x1b#6"))

	if !term.activeBuffer.IsDoubleWidth(0) {
		t.Error("expected row 0 double-width after DECDWL")
	}
}

func TestDECDHLSetsDoubleHeightTopAndBottom(t *testing.T) {
	term := New(WithSize(24, 80))

	term.Feed([]byte("\x1b#3")) // DECDHL top half
	if !term.activeBuffer.IsDoubleHeightTop(0) {
		t.Error("expected row 0 double-height-top after ESC # 3")
	}

	term.Feed([]byte("\x1b#4")) // DECDHL bottom half
	if !term.activeBuffer.IsDoubleHeightBottom(0) {
		t.Error("expected row 0 double-height-bottom after ESC # 4")
	}
}

func TestDECALNStillDispatchesThroughDecoder(t *testing.T) {
	// ESC # 8 is the one member of the ESC # family parser.go's pre-scan
	// must pass through untouched, since go-ansicode already dispatches
	// it via Decaln.
	term := New(WithSize(5, 10))

	term.Feed([]byte("\x1b#8"))

	if term.Cell(0, 0).Char != 'E' {
		t.Errorf("expected DECALN to fill the screen with 'E', got %q", term.Cell(0, 0).Char)
	}
}

func TestLineAttributeScanSplitAcrossWrites(t *testing.T) {
	term := New(WithSize(24, 80))

	// Feed the DECDWL sequence one byte at a time to exercise the
	// lineAttrState carry-over between Write calls.
	term.Feed([]byte{0x1B})
	term.Feed([]byte{'#'})
	term.Feed([]byte{'6'})

	if !term.activeBuffer.IsDoubleWidth(0) {
		t.Error("expected DECDWL recognized even when split across separate Feed calls")
	}
}

func TestLineAttributeScanPassesThroughOrdinaryText(t *testing.T) {
	term := New(WithSize(24, 80))

	term.Feed([]byte("plain text"))

	text := ""
	for col := 0; col < len("plain text"); col++ {
		text += string(term.Cell(0, col).Char)
	}
	if text != "plain text" {
		t.Errorf("expected ordinary text unaffected by the line-attribute scanner, got %q", text)
	}
}
