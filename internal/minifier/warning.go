package minifier

// WarningKind identifies a non-fatal problem found while scanning.
type WarningKind int

const (
	UnterminatedComment WarningKind = iota
	UnterminatedQuote
)

func (k WarningKind) String() string {
	switch k {
	case UnterminatedComment:
		return "unterminated-comment"
	case UnterminatedQuote:
		return "unterminated-quote"
	}
	return "unknown"
}

// Warning describes a structural problem in the source. Warnings are
// collected and reported alongside the result; they never abort a run.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}
