package headlessterm

// Feed is the spec-named, checked entry point for host bytes (spec §4.E,
// §6 "feed(bytes)"). It wraps Write, turning the io.Writer (int, error)
// result into the single error spec §7.3 describes, and rejects input
// once Close has been called instead of silently discarding it or
// panicking.
func (t *Terminal) Feed(data []byte) error {
	if t.Closed() {
		return ErrClosed
	}
	_, err := t.Write(data)
	return err
}

// Close marks the terminal as torn down. After Close, Feed returns
// ErrClosed; Resize and other lifecycle-checked entry points return
// ErrInvalidState. Close itself is idempotent.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}

// Closed reports whether Close has been called.
func (t *Terminal) Closed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.closed
}

// lineAttrState is a minimal sub-state-machine recognizing the DEC line-
// attribute escape family (ESC # 3/4/5/6 — DECDHL/DECDWL/DECSWL) ahead of
// go-ansicode's decoder. go-ansicode exposes a Handler hook for ESC # 8
// (Decaln) but none for the other four bytes of the same family, so
// parser.go intercepts them here and lets every other byte pass through
// untouched. ESC always introduces a complete, self-terminating
// intermediate-byte ('#') plus final-byte sequence with no parameters, so
// two bytes of carried-over state is enough to resolve a match split
// across separate Write calls.
type lineAttrState int

const (
	lineAttrIdle lineAttrState = iota
	lineAttrSawEsc
	lineAttrSawHash
)

// scanLineAttributes consumes data looking for ESC # <3|4|5|6>, applying
// the matched line attribute directly and returning the remaining bytes
// (with those sequences removed) for the real decoder to process. ESC # 8
// (Decaln) and anything else is passed through unchanged, since Decaln
// already has a working dispatch path through go-ansicode.
func (t *Terminal) scanLineAttributes(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for _, b := range data {
		switch t.lineAttrState {
		case lineAttrIdle:
			if b == 0x1B {
				t.lineAttrState = lineAttrSawEsc
				continue
			}
			out = append(out, b)

		case lineAttrSawEsc:
			switch b {
			case '#':
				t.lineAttrState = lineAttrSawHash
			case 0x1B:
				out = append(out, 0x1B)
				// stay in lineAttrSawEsc: this ESC may start a new sequence
			default:
				out = append(out, 0x1B, b)
				t.lineAttrState = lineAttrIdle
			}

		case lineAttrSawHash:
			switch b {
			case '3':
				t.SetLineAttribute(LineAttributeDoubleHeightTop)
				t.lineAttrState = lineAttrIdle
			case '4':
				t.SetLineAttribute(LineAttributeDoubleHeightBottom)
				t.lineAttrState = lineAttrIdle
			case '5':
				t.SetLineAttribute(LineAttributeSingleWidth)
				t.lineAttrState = lineAttrIdle
			case '6':
				t.SetLineAttribute(LineAttributeDoubleWidth)
				t.lineAttrState = lineAttrIdle
			case 0x1B:
				out = append(out, 0x1B, '#')
				t.lineAttrState = lineAttrSawEsc
			default:
				out = append(out, 0x1B, '#', b)
				t.lineAttrState = lineAttrIdle
			}
		}
	}

	return out
}
