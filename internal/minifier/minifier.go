// Package minifier rewrites CSS into a byte-minimal, render-identical
// form: it drops comments and insignificant whitespace, removes the
// redundant final semicolon of a declaration block and canonicalizes hex
// and rgb()/rgba() color literals to their shortest spelling.
//
// It is a character scanner, not a CSS parser. No property or selector
// name tables are consulted; the one genuinely ambiguous construct — a
// single colon, which may open a pseudo-class or assign a value — is
// resolved with a deferred one-byte edit (see the backref field below).
// Malformed input degrades to pass-through, never to an error.
package minifier

// Options controls optional transforms.
type Options struct {
	// CanonicalizeColors enables hex shortening and rgb()/rgba()
	// decoding. The structural rules apply either way.
	CanonicalizeColors bool
}

// Minify transforms source CSS and reports any non-fatal problems found
// on the way. It never fails: every input produces some output.
func Minify(source string) (string, []Warning) {
	return MinifyWithOptions(source, Options{CanonicalizeColors: true})
}

// MinifyWithOptions is Minify with explicit options.
func MinifyWithOptions(source string, opts Options) (string, []Warning) {
	buf, spans, warns := normalize([]byte(source))
	s := &scanner{
		buf:     buf,
		spans:   spans,
		out:     make([]byte, 0, len(buf)),
		backref: -1,
	}
	s.run(opts.CanonicalizeColors)
	return string(s.out), warns
}

// scanner is the structural pass over the normalized buffer. backref is
// the offset of one previously emitted space whose fate is still
// undecided: kept if the colon that followed it turns out to open a
// pseudo-class selector, deleted if the statement ends as a declaration.
// At most one backref is live at a time.
type scanner struct {
	buf     []byte
	spans   map[int]int
	out     []byte
	backref int
}

func (s *scanner) run(colors bool) {
	read := 0
	for read < len(s.buf) {
		if end, ok := s.spans[read]; ok {
			// quoted span, verbatim
			s.out = append(s.out, s.buf[read:end+1]...)
			read = end + 1
			continue
		}

		switch b := s.buf[read]; b {
		case '{':
			s.backref = -1
			s.trimSpace()
			s.out = append(s.out, b)
			read = s.skipSpace(read + 1)

		case '}':
			// a declaration ended the statement: the speculative space
			// before its colon was never a selector separator
			s.dropBackref()
			s.trimSpace()
			if n := len(s.out); n > 0 && s.out[n-1] == ';' {
				s.out = s.out[:n-1]
			}
			s.out = append(s.out, b)
			read = s.skipSpace(read + 1)

		case ':':
			if read+1 < len(s.buf) && s.buf[read+1] == ':' {
				// pseudo-element, unambiguous
				s.backref = -1
				s.out = append(s.out, ':', ':')
				read += 2
				continue
			}
			s.backref = -1
			if n := len(s.out); n > 0 && s.out[n-1] == ' ' {
				s.backref = n - 1
			}
			s.out = append(s.out, b)
			read = s.skipSpace(read + 1)

		case ',':
			s.trimSpace()
			s.out = append(s.out, b)
			read = s.skipSpace(read + 1)

		case ';':
			s.dropBackref()
			s.trimSpace()
			s.out = append(s.out, b)
			read = s.skipSpace(read + 1)

		case '#':
			if colors {
				if lit, n := shortenHexRun(s.buf[read:]); n > 0 {
					s.out = append(s.out, lit...)
					read += n
					continue
				}
			}
			s.out = append(s.out, b)
			read++

		case 'r':
			if colors {
				if lit, n := decodeColorFunc(s.buf[read:]); n > 0 {
					s.out = append(s.out, lit...)
					read += n
					continue
				}
			}
			s.out = append(s.out, b)
			read++

		default:
			s.out = append(s.out, b)
			read++
		}
	}
}

// dropBackref deletes the marked space, if any, and clears the mark.
func (s *scanner) dropBackref() {
	if s.backref >= 0 {
		s.out = append(s.out[:s.backref], s.out[s.backref+1:]...)
		s.backref = -1
	}
}

// trimSpace removes a single trailing space from the output.
func (s *scanner) trimSpace() {
	if n := len(s.out); n > 0 && s.out[n-1] == ' ' {
		s.out = s.out[:n-1]
	}
}

// skipSpace advances past one space. The normalized buffer never holds
// two in a row, so one is all there can be.
func (s *scanner) skipSpace(i int) int {
	if i < len(s.buf) && s.buf[i] == ' ' {
		return i + 1
	}
	return i
}
