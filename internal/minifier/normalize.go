package minifier

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// normalize performs the first pass over raw CSS: whitespace runs collapse
// to a single interior space, comments vanish entirely, and quoted strings
// are copied byte-for-byte with their offsets recorded so the structural
// pass can step over them. The returned span table maps the offset of an
// opening quote in the normalized buffer to the offset of its closing quote
// (or the last consumed byte when the quote never closes).
func normalize(input []byte) ([]byte, map[int]int, []Warning) {
	buf := make([]byte, 0, len(input))
	spans := make(map[int]int)
	var warns []Warning
	lastSpanEnd := -1

	read := 0
	for read < len(input) {
		b := input[read]
		switch {
		case isSpace(b):
			peek := read + 1
			for peek < len(input) && isSpace(input[peek]) {
				peek++
			}
			read = peek
			// leading and trailing runs emit nothing
			if len(buf) == 0 || read == len(input) {
				continue
			}
			// a removed comment can expose two adjacent runs
			if buf[len(buf)-1] == ' ' {
				continue
			}
			buf = append(buf, ' ')

		case b == '/' && read+1 < len(input) && input[read+1] == '*':
			// the body must be non-empty relative to the marker overlap:
			// "/*/" is an open comment, "/**/" is the minimal closed one
			end := -1
			for peek := read + 2; peek+1 < len(input); peek++ {
				if input[peek] == '*' && input[peek+1] == '/' {
					end = peek
					break
				}
			}
			if end < 0 {
				warns = append(warns, Warning{
					Kind:    UnterminatedComment,
					Message: "unterminated comment, dropping remainder of input",
				})
				read = len(input)
				continue
			}
			read = end + 2

		case b == '"' || b == '\'':
			// copy verbatim through the matching close quote, no escape
			// interpretation
			peek := read + 1
			for peek < len(input) && input[peek] != b {
				peek++
			}
			start := len(buf)
			if peek == len(input) {
				warns = append(warns, Warning{
					Kind:    UnterminatedQuote,
					Message: "unterminated " + string(b) + " quote",
				})
				buf = append(buf, input[read:]...)
			} else {
				buf = append(buf, input[read:peek+1]...)
			}
			spans[start] = len(buf) - 1
			lastSpanEnd = len(buf) - 1
			read = peek + 1

		default:
			buf = append(buf, b)
			read++
		}
	}

	// a comment swallowed at end of input can leave a separator dangling
	if n := len(buf); n > 0 && buf[n-1] == ' ' && lastSpanEnd != n-1 {
		buf = buf[:n-1]
	}

	return buf, spans, warns
}
