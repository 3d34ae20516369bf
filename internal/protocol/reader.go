package protocol

// maxLineLen bounds the line accumulator so a misbehaving peer cannot grow
// it without limit. Real response lines are well under 100 bytes.
const maxLineLen = 512

// LineReader accumulates bytes into logical lines. A line feed finalizes the
// current line; carriage returns are dropped and never appear in output.
//
// The zero value is ready to use. The reader is resumable: it may be fed one
// byte per poll or a whole response at once and produces the same lines.
type LineReader struct {
	buf []byte
}

// Feed appends one byte to the current line. When b is a line feed the
// accumulated line is returned with ok=true and the accumulator resets;
// otherwise ok is false. The returned line may be empty, which in the header
// phase marks the header/body boundary.
func (r *LineReader) Feed(b byte) (line string, ok bool) {
	switch b {
	case '\n':
		line = string(r.buf)
		r.buf = r.buf[:0]
		return line, true
	case '\r':
		return "", false
	default:
		if len(r.buf) < maxLineLen {
			r.buf = append(r.buf, b)
		}
		return "", false
	}
}

// Pending returns the number of bytes accumulated for the current,
// not-yet-terminated line.
func (r *LineReader) Pending() int { return len(r.buf) }

// Reset discards any partial line.
func (r *LineReader) Reset() { r.buf = r.buf[:0] }
