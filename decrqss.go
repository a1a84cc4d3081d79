package headlessterm

import (
	"fmt"
	"strings"
)

// DcsDispatch handles DCS sequences go-ansicode does not already parse into
// a dedicated callback (PrivacyMessageReceived, StartOfStringReceived, and
// SixelReceived cover their own DCS sub-protocols the same way). Currently
// this recognizes only DECRQSS ("$q" intermediate, 'q' final).
func (t *Terminal) DcsDispatch(intermediates []byte, finalByte byte, data []byte) {
	if finalByte == 'q' && len(intermediates) > 0 && intermediates[len(intermediates)-1] == '$' {
		t.RequestSetting(string(data))
	}
}

// RequestSetting answers a DECRQSS (Request Selection or Setting) query,
// identified by the intermediate+final bytes of the DCS payload (e.g. "m"
// for SGR, "r" for DECSTBM, " q" for cursor style). It replies with a valid
// DECRPSS response (DCS 1 $ r <setting> ST) for settings this terminal
// tracks, or an invalid response (DCS 0 $ r ST) for anything else.
func (t *Terminal) RequestSetting(request string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var body string
	ok := true

	switch request {
	case "m":
		body = t.sgrSettingLocked() + "m"
	case "r":
		body = fmt.Sprintf("%d;%dr", t.scrollTop+1, t.scrollBottom)
	case " q":
		body = fmt.Sprintf("%dq", decscusrParam(t.cursor.Style))
	default:
		ok = false
	}

	if ok {
		t.writeResponseString("\x1bP1$r" + body + "\x1b\\")
	} else {
		t.writeResponseString("\x1bP0$r\x1b\\")
	}
}

// sgrSettingLocked renders the current template's attributes as SGR
// parameters (without the leading CSI or trailing 'm'), mirroring the set of
// flags SetTerminalCharAttribute understands.
func (t *Terminal) sgrSettingLocked() string {
	params := []string{"0"}

	flags := t.template.Flags
	add := func(p string) { params = append(params, p) }

	if flags&CellFlagBold != 0 {
		add("1")
	}
	if flags&CellFlagDim != 0 {
		add("2")
	}
	if flags&CellFlagItalic != 0 {
		add("3")
	}
	switch {
	case flags&CellFlagDoubleUnderline != 0:
		add("21")
	case flags&CellFlagCurlyUnderline != 0:
		add("4:3")
	case flags&CellFlagUnderline != 0:
		add("4")
	}
	if flags&CellFlagBlinkSlow != 0 {
		add("5")
	}
	if flags&CellFlagBlinkFast != 0 {
		add("6")
	}
	if flags&CellFlagReverse != 0 {
		add("7")
	}
	if flags&CellFlagHidden != 0 {
		add("8")
	}
	if flags&CellFlagStrike != 0 {
		add("9")
	}

	return strings.Join(params, ";")
}

// decscusrParam maps a CursorStyle to its DECSCUSR Ps value.
func decscusrParam(style CursorStyle) int {
	switch style {
	case CursorStyleBlinkingBlock:
		return 1
	case CursorStyleSteadyBlock:
		return 2
	case CursorStyleBlinkingUnderline:
		return 3
	case CursorStyleSteadyUnderline:
		return 4
	case CursorStyleBlinkingBar:
		return 5
	case CursorStyleSteadyBar:
		return 6
	default:
		return 0
	}
}

// ReportMode answers a DECRQM (Request Mode) query with the 2-state
// set/reset encoding xterm uses for modes this terminal does not
// distinguish "permanently set/reset" for. ansiMode selects between ANSI
// mode numbers (CSI Ps ; Pm $ y) and DEC private mode numbers
// (CSI ? Ps ; Pm $ y).
func (t *Terminal) ReportMode(mode int, ansiMode bool) {
	t.mu.RLock()
	value := decrqmValue(t.modes, mode, ansiMode)
	t.mu.RUnlock()

	if ansiMode {
		t.writeResponseString(fmt.Sprintf("\x1b[%d;%d$y", mode, value))
	} else {
		t.writeResponseString(fmt.Sprintf("\x1b[?%d;%d$y", mode, value))
	}
}

// decrqmValue returns the DECRQM reply value (0=not recognized, 1=set,
// 2=reset) for the private (DEC) mode numbers this terminal tracks.
// ANSI-mode numbers are not modeled separately and always report 0.
func decrqmValue(modes TerminalMode, mode int, ansiMode bool) int {
	if ansiMode {
		return 0
	}

	bit, known := decPrivateModeBit(mode)
	if !known {
		return 0
	}
	if modes&bit != 0 {
		return 1
	}
	return 2
}

// decPrivateModeBit maps a DEC private mode number to this terminal's
// internal TerminalMode bit, for the modes it actually implements.
func decPrivateModeBit(mode int) (TerminalMode, bool) {
	switch mode {
	case 1:
		return ModeCursorKeys, true
	case 3:
		return ModeColumnMode, true
	case 6:
		return ModeOrigin, true
	case 7:
		return ModeLineWrap, true
	case 12:
		return ModeBlinkingCursor, true
	case 25:
		return ModeShowCursor, true
	case 1000:
		return ModeReportMouseClicks, true
	case 1002:
		return ModeReportCellMouseMotion, true
	case 1003:
		return ModeReportAllMouseMotion, true
	case 1004:
		return ModeReportFocusInOut, true
	case 1005:
		return ModeUTF8Mouse, true
	case 1006:
		return ModeSGRMouse, true
	case 1007:
		return ModeAlternateScroll, true
	case 1047, 1049:
		return ModeSwapScreenAndSetRestoreCursor, true
	case 2004:
		return ModeBracketedPaste, true
	default:
		return 0, false
	}
}
