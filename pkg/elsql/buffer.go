package elsql

// buffer is the renderer's scratch output buffer. It is a plain
// growable byte slice rather than strings.Builder because the
// renderer repeatedly needs to inspect and roll back its own tail —
// strings.Builder exposes neither — so tail bytes are checked directly
// rather than by taking repeated substrings.
type buffer struct {
	b []byte
}

func (buf *buffer) Len() int { return len(buf.b) }

func (buf *buffer) String() string { return string(buf.b) }

func (buf *buffer) WriteString(s string) { buf.b = append(buf.b, s...) }

// writeSeparated appends s, first inserting a single space if buf
// already holds non-whitespace content that doesn't end in whitespace
// and s itself doesn't begin with whitespace. Source text arrives one
// line per Text fragment with its own leading/trailing whitespace
// already stripped, so without this a fragment body spanning several
// lines — or a literal SQL line immediately followed by a nested
// @WHERE/@LIKE/@OFFSETFETCH block — would concatenate across the line
// break with no word boundary at all.
func (buf *buffer) writeSeparated(s string) {
	if s == "" {
		return
	}
	if len(buf.b) > 0 && !isSpaceByte(buf.b[len(buf.b)-1]) && !isSpaceByte(s[0]) {
		buf.WriteString(" ")
	}
	buf.WriteString(s)
}

// Truncate discards everything from byte offset n onward.
func (buf *buffer) Truncate(n int) { buf.b = buf.b[:n] }

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// trimmedLen returns the length of buf ignoring trailing whitespace,
// without allocating a trimmed copy.
func (buf *buffer) trimmedLen() int {
	n := len(buf.b)
	for n > 0 && isSpaceByte(buf.b[n-1]) {
		n--
	}
	return n
}

// isWhitespaceOnlyFrom reports whether every byte from offset p to the
// end of buf is whitespace (true for p == len(buf.b) too).
func (buf *buffer) isWhitespaceOnlyFrom(p int) bool {
	for i := p; i < len(buf.b); i++ {
		if !isSpaceByte(buf.b[i]) {
			return false
		}
	}
	return true
}

// connectiveTokens are the keyword/punctuation tails that suppress a
// following AND/OR connective.
var connectiveTokens = []string{"WHERE", "AND", "OR", "("}

// endsWithConnective reports whether buf, ignoring trailing whitespace,
// is empty or ends with one of connectiveTokens on a word boundary.
func (buf *buffer) endsWithConnective() bool {
	n := buf.trimmedLen()
	if n == 0 {
		return true
	}
	for _, tok := range connectiveTokens {
		if n < len(tok) {
			continue
		}
		if string(buf.b[n-len(tok):n]) != tok {
			continue
		}
		if tok == "(" {
			return true
		}
		start := n - len(tok)
		if start == 0 || !isIdentByte(buf.b[start-1]) {
			return true
		}
	}
	return false
}
