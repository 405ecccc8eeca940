package minifier

import (
	"math"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexLower(b byte) byte {
	if b >= 'A' && b <= 'F' {
		return b + ('a' - 'A')
	}
	return b
}

// shortenHexRun examines in, which starts with '#', for a hex color
// literal and returns its canonical form plus the number of input bytes
// consumed. A consumed count of zero means the run is not a color
// candidate and the caller should emit the '#' untouched.
//
// Only runs of exactly 3, 4, 6 or 8 hex digits qualify. 6- and 8-digit
// literals collapse to 3 and 4 lowercase digits when every channel has
// two equal digits; anything else passes through with its original
// casing. An 8-digit literal is never partially shortened.
func shortenHexRun(in []byte) ([]byte, int) {
	n := 0
	for 1+n < len(in) && isHexDigit(in[1+n]) {
		n++
	}
	switch n {
	case 3, 4:
		return in[:1+n], 1 + n
	case 6, 8:
		lit := make([]byte, 0, 1+n/2)
		lit = append(lit, '#')
		for i := 1; i < 1+n; i += 2 {
			hi, lo := hexLower(in[i]), hexLower(in[i+1])
			if hi != lo {
				return in[:1+n], 1 + n
			}
			lit = append(lit, hi)
		}
		return lit, 1 + n
	default:
		return nil, 0
	}
}

// decodeColorFunc recognizes an rgb() or rgba() call at the start of in
// and returns its canonical hex form plus the number of input bytes
// consumed, through the closing parenthesis. A consumed count of zero
// rejects the run; the caller then emits the text untouched. Rejection
// covers anything outside the two supported grammars — calc(), var(),
// relative colors, mixed delimiter styles, out-of-range channels.
func decodeColorFunc(in []byte) ([]byte, int) {
	var body int
	switch {
	case len(in) >= 5 && string(in[:5]) == "rgba(":
		body = 5
	case len(in) >= 4 && string(in[:4]) == "rgb(":
		body = 4
	default:
		return nil, 0
	}

	end := -1
	for i := body; i < len(in); i++ {
		if in[i] == ')' {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, 0
	}
	args := string(in[body:end])

	for i := 0; i < len(args); i++ {
		switch b := args[i]; {
		case b >= '0' && b <= '9':
		case b == ' ' || b == ',' || b == '%' || b == '.' || b == '/':
		default:
			return nil, 0
		}
	}

	fields, alpha, ok := splitChannels(args)
	if !ok {
		return nil, 0
	}

	lit := make([]byte, 0, 9)
	lit = append(lit, '#')
	for _, f := range fields {
		v, ok := decodeChannel(f)
		if !ok {
			return nil, 0
		}
		lit = append(lit, hexDigits[v>>4], hexDigits[v&0xf])
	}
	if alpha != "" {
		v, opaque, ok := decodeAlpha(alpha)
		if !ok {
			return nil, 0
		}
		if !opaque {
			lit = append(lit, hexDigits[v>>4], hexDigits[v&0xf])
		}
	}

	short, _ := shortenHexRun(lit)
	return short, end + 1
}

// splitChannels separates the argument list into three color channels and
// an optional alpha. A comma anywhere selects the legacy comma grammar;
// otherwise the modern space grammar applies, with "/" before the alpha.
// The two styles never mix: a space-separated value inside a comma list,
// or a stray comma in a space list, rejects the whole call.
func splitChannels(args string) (channels [3]string, alpha string, ok bool) {
	if strings.Contains(args, ",") {
		parts := strings.Split(args, ",")
		if len(parts) != 3 && len(parts) != 4 {
			return channels, "", false
		}
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" || strings.ContainsAny(p, " /") {
				return channels, "", false
			}
			if i < 3 {
				channels[i] = p
			} else {
				alpha = p
			}
		}
		return channels, alpha, true
	}

	rest := args
	if before, after, found := strings.Cut(args, "/"); found {
		rest = before
		alpha = strings.TrimSpace(after)
		if alpha == "" || strings.ContainsAny(alpha, " /") {
			return channels, "", false
		}
	}
	parts := strings.Fields(rest)
	if len(parts) != 3 {
		return channels, "", false
	}
	copy(channels[:], parts)
	return channels, alpha, true
}

// decodeChannel resolves one color channel: an integer 0-255 or a
// percentage scaled to 0-255 with round-half-away rounding.
func decodeChannel(f string) (byte, bool) {
	if p, found := strings.CutSuffix(f, "%"); found {
		return decodePercent(p)
	}
	if strings.ContainsAny(f, ".%/ ") {
		return 0, false
	}
	v, err := strconv.Atoi(f)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return byte(v), true
}

func decodePercent(p string) (byte, bool) {
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, false
	}
	r := math.Round(v * 255 / 100)
	if r < 0 || r > 255 {
		return 0, false
	}
	return byte(r), true
}

// decodeAlpha resolves the alpha channel: a fraction 0.0-1.0 or a
// percentage. Exactly 1, 1.0 or 100% means fully opaque and the channel
// is omitted from the output entirely.
func decodeAlpha(f string) (v byte, opaque bool, ok bool) {
	if p, found := strings.CutSuffix(f, "%"); found {
		pv, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false, false
		}
		b, ok := decodePercent(p)
		return b, pv == 100, ok
	}
	fv, err := strconv.ParseFloat(f, 64)
	if err != nil || fv < 0 || fv > 1 {
		return 0, false, false
	}
	return byte(math.Round(fv * 255)), fv == 1, true
}
