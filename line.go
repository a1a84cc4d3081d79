package headlessterm

// Line holds one row of cells plus the line-level flags VT100/xterm track
// outside any single cell: whether the row continues from a soft wrap
// (vs. an explicit newline) and whether DECDWL/DECDHL/DECSWL selected
// double-width or double-height rendering for it.
type Line struct {
	cells           []Cell
	wrapped         bool
	doubleWidth     bool
	doubleHeightTop bool
	doubleHeightBot bool
}

// newLine allocates a blank line of the given width.
func newLine(cols int) Line {
	l := Line{cells: make([]Cell, cols)}
	for i := range l.cells {
		l.cells[i] = NewCell()
	}
	return l
}

// LineAttribute selects a DEC line-rendering mode set by DECDHL/DECDWL/DECSWL.
type LineAttribute int

const (
	// LineAttributeSingleWidth is the default: normal width, normal height (DECSWL).
	LineAttributeSingleWidth LineAttribute = iota
	// LineAttributeDoubleWidth doubles the effective column width of the line (DECDWL).
	LineAttributeDoubleWidth
	// LineAttributeDoubleHeightTop marks the line as the top half of a double-height pair (DECDHL).
	LineAttributeDoubleHeightTop
	// LineAttributeDoubleHeightBottom marks the line as the bottom half of a double-height pair (DECDHL).
	LineAttributeDoubleHeightBottom
)
