package tui

import "time"

// Parser turns a raw input byte stream into Messages. It is
// pure and holds only the small amount of state needed to span reads:
// whether it is mid bracketed-paste, and any unconsumed bytes left over
// from the previous Feed call. It never touches a terminal directly —
// that is input_unix.go / input_windows.go's job — which keeps it fully
// unit-testable.
type Parser struct {
	inPaste  bool
	pasteBuf []byte
	pending  []byte // bytes read but not yet resolved into a message
}

// NewParser returns an empty parser.
func NewParser() *Parser { return &Parser{} }

const pasteStart = "\x1b[200~"
const pasteEnd = "\x1b[201~"

// Feed consumes one chunk of raw bytes and returns the Messages it
// produces. A chunk may contain zero, one, or many messages; an
// incomplete escape sequence or paste block at the end of a chunk is
// buffered and completed by a later Feed call.
func (p *Parser) Feed(data []byte, now time.Time) []Message {
	p.pending = append(p.pending, data...)
	var out []Message

	for len(p.pending) > 0 {
		if p.inPaste {
			idx := indexOf(p.pending, pasteEnd)
			if idx < 0 {
				// Hold back a trailing partial end marker so a marker
				// split across Feed calls is still recognized.
				keep := 0
				for k := len(pasteEnd) - 1; k > 0; k-- {
					if k <= len(p.pending) && hasPrefix(p.pending[len(p.pending)-k:], pasteEnd[:k]) {
						keep = k
						break
					}
				}
				cut := len(p.pending) - keep
				p.pasteBuf = append(p.pasteBuf, p.pending[:cut]...)
				p.pending = p.pending[cut:]
				break
			}
			p.pasteBuf = append(p.pasteBuf, p.pending[:idx]...)
			out = append(out, PasteEventMsg(string(p.pasteBuf)))
			p.pasteBuf = nil
			p.inPaste = false
			p.pending = p.pending[idx+len(pasteEnd):]
			continue
		}

		b := p.pending[0]

		if b == 0x1b {
			if hasPrefix(p.pending, pasteStart) {
				p.inPaste = true
				p.pending = p.pending[len(pasteStart):]
				continue
			}
			if isPrefixOf(p.pending, pasteStart) {
				break // might still be the start of a paste block
			}

			name, n, recognized := escapeKeyName(p.pending)
			if recognized {
				out = append(out, KeyPressMsg(name))
				p.pending = p.pending[n:]
				continue
			}
			if couldStillMatch(p.pending) {
				break // wait for more bytes before deciding
			}
			out = append(out, KeyPressMsg("escape"))
			p.pending = p.pending[1:]
			continue
		}

		if name, ok := controlKeyName(b); ok {
			out = append(out, KeyPressMsg(name))
			p.pending = p.pending[1:]
			continue
		}

		r, size := decodeRune(p.pending)
		if size > len(p.pending) {
			break // incomplete multi-byte rune, wait for more bytes
		}
		out = append(out, InputEventMsg(r, now))
		p.pending = p.pending[size:]
	}

	return out
}

// escapeTable is the closed set of recognized CSI/SS3 sequences.
// Entries are checked in listed order; no entry is a prefix of another,
// so the order does not affect which entry matches.
var escapeTable = []struct {
	seq  string
	name string
}{
	{"\x1b[A", "up"}, {"\x1b[B", "down"}, {"\x1b[C", "right"}, {"\x1b[D", "left"},
	{"\x1bOA", "up"}, {"\x1bOB", "down"}, {"\x1bOC", "right"}, {"\x1bOD", "left"},
	{"\x1b[H", "home"}, {"\x1b[F", "end"},
	{"\x1b[1~", "home"}, {"\x1b[4~", "end"},
	{"\x1b[3~", "delete"}, {"\x1b[2~", "insert"},
	{"\x1b[5~", "page_up"}, {"\x1b[6~", "page_down"},
	{"\x1b[Z", "shift+tab"},
	{"\x1bOP", "f1"}, {"\x1bOQ", "f2"}, {"\x1bOR", "f3"}, {"\x1bOS", "f4"},
	{"\x1b[15~", "f5"}, {"\x1b[17~", "f6"}, {"\x1b[18~", "f7"}, {"\x1b[19~", "f8"},
	{"\x1b[20~", "f9"}, {"\x1b[21~", "f10"}, {"\x1b[23~", "f11"}, {"\x1b[24~", "f12"},
}

// escapeKeyName reports an exact match in escapeTable at the start of
// seq, if any.
func escapeKeyName(seq []byte) (name string, n int, recognized bool) {
	for _, e := range escapeTable {
		if hasPrefix(seq, e.seq) {
			return e.name, len(e.seq), true
		}
	}
	return "", 0, false
}

// couldStillMatch reports whether seq is a strict prefix of some
// escapeTable entry (or of the paste-start marker), meaning resolution
// should wait for more bytes rather than falling back to a bare Escape.
func couldStillMatch(seq []byte) bool {
	if isPrefixOf(seq, pasteStart) {
		return true
	}
	for _, e := range escapeTable {
		if len(seq) < len(e.seq) && hasPrefix([]byte(e.seq), string(seq)) {
			return true
		}
	}
	return false
}

// controlKeyName maps single control bytes to key names.
func controlKeyName(b byte) (string, bool) {
	switch b {
	case '\t':
		return "tab", true
	case '\r', '\n':
		return "enter", true
	case 0x7f, 0x08:
		return "backspace", true
	case ' ':
		return "space", true
	}
	return "", false
}

func indexOf(data []byte, sub string) int {
	n, m := len(data), len(sub)
	for i := 0; i+m <= n; i++ {
		if string(data[i:i+m]) == sub {
			return i
		}
	}
	return -1
}

// hasPrefix reports whether data begins with prefix.
func hasPrefix(data []byte, prefix string) bool {
	if len(data) < len(prefix) {
		return false
	}
	return string(data[:len(prefix)]) == prefix
}

// isPrefixOf reports whether data is itself a (possibly full, but here
// used only for the strict-prefix case by callers) prefix of s.
func isPrefixOf(data []byte, s string) bool {
	if len(data) >= len(s) {
		return false
	}
	return string(data) == s[:len(data)]
}

// decodeRune decodes a single UTF-8 rune from the start of data, falling
// back to a single-byte replacement on invalid input so a corrupt byte
// never stalls the parser. If data holds fewer bytes than the leading
// byte implies, it returns a size greater than len(data) so the caller
// knows to wait for more input.
func decodeRune(data []byte) (rune, int) {
	b0 := data[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0&0xE0 == 0xC0:
		if len(data) < 2 {
			return 0, 2
		}
		return rune(b0&0x1F)<<6 | rune(data[1]&0x3F), 2
	case b0&0xF0 == 0xE0:
		if len(data) < 3 {
			return 0, 3
		}
		return rune(b0&0x0F)<<12 | rune(data[1]&0x3F)<<6 | rune(data[2]&0x3F), 3
	case b0&0xF8 == 0xF0:
		if len(data) < 4 {
			return 0, 4
		}
		return rune(b0&0x07)<<18 | rune(data[1]&0x3F)<<12 | rune(data[2]&0x3F)<<6 | rune(data[3]&0x3F), 4
	default:
		return rune(b0), 1
	}
}
