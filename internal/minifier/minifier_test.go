package minifier

import (
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already minified", "#{color:#fff}", "#{color:#fff}"},
		{"unneeded whitespace", "# {color:#fff}", "#{color:#fff}"},
		{"required whitespace", "#{margin:1px 1px}", "#{margin:1px 1px}"},
		{"trailing semicolon", "#{margin:1px;}", "#{margin:1px}"},
		{"comment in value", "#{margin:1px /*1px*/}", "#{margin:1px}"},
		{"comment between rules", "a{x:y} /* note */ b{x:y}", "a{x:y}b{x:y}"},
		{"pseudo selectors", "div :hover ::after{}", "div :hover ::after{}"},
		{"pseudo element keeps space", "div ::before{}", "div ::before{}"},
		{"nested blocks", "div { span {margin:1px}}", "div{span{margin:1px}}"},
		{"space around colon", "a{color : red}", "a{color:red}"},
		{"space around comma", "h1 , h2{margin:0}", "h1,h2{margin:0}"},
		{"space after semicolon", "a{x:1; y:2}", "a{x:1;y:2}"},
		{"newlines and tabs", "a {\n\tcolor: red;\n}\n", "a{color:red}"},
		{"leading and trailing", "  a{x:y}  ", "a{x:y}"},
		{"hex six collapses", "#{color:#aabbcc}", "#{color:#abc}"},
		{"hex six uppercase", "#{color:#DDEEFF}", "#{color:#def}"},
		{"hex six mixed stays", "#{color:#fffffe}", "#{color:#fffffe}"},
		{"hex eight collapses", "#{color:#aabbccdd}", "#{color:#abcd}"},
		{"hex eight mixed stays", "#{color:#aabbccde}", "#{color:#aabbccde}"},
		{"hex five stays", "#{color:#aabbb}", "#{color:#aabbb}"},
		{"hex nine stays", "#{color:#aabbccddd}", "#{color:#aabbccddd}"},
		{"id selector", "#header {color:#fff}", "#header{color:#fff}"},
		{"rgb long", "#{color:rgb(255,255,254)}", "#{color:#fffffe}"},
		{"rgb short", "#{color:rgb(0, 0, 0)}", "#{color:#000}"},
		{"rgb percent", "#{color:rgb(100%, 100%, 100%)}", "#{color:#fff}"},
		{"rgba zero alpha", "#{color:rgba(0%, 0%, 0%, 0)}", "#{color:#0000}"},
		{"rgba opaque alpha", "#{color:rgba(100%,100%,100%,1)}", "#{color:#fff}"},
		{"rgb modern", "#{color:rgb(0 100% 255)}", "#{color:#0ff}"},
		{"rgb modern alpha", "#{color:rgb(0 0 0 / 0.5)}", "#{color:#00000080}"},
		{"rgb malformed stays", "#{color:rgb(300,0,0)}", "#{color:rgb(300,0,0)}"},
		{"rgb calc stays", "#{color:rgb(calc(2*3),0,0)}", "#{color:rgb(calc(2*3),0,0)}"},
		{"quoted content kept", `a[href="x  y"]{content:"a : b"}`, `a[href="x  y"]{content:"a : b"}`},
		{"single quotes kept", "a{content:'} ; {'}", "a{content:'} ; {'}"},
		{"declaration colon space dropped", "a{b :c;}", "a{b:c}"},
		{"selector colon space kept", "a :hover{b:c}", "a :hover{b:c}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := Minify(tt.input)
			if got != tt.want {
				t.Errorf("Minify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len(warnings) != 0 {
				t.Errorf("Minify(%q) warnings = %v, want none", tt.input, warnings)
			}
		})
	}
}

func TestMinifyIdempotent(t *testing.T) {
	inputs := []string{
		"div :hover ::after{}",
		"div { span {margin:1px}}",
		"# {color:#fff}",
		"#{margin:1px;}",
		"a{color:rgb(255, 0, 0)}",
		"h1 , h2 { color : #aabbcc ; }",
		`a[href="x  y"] { content : " { " }`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once, _ := Minify(input)
			twice, _ := Minify(once)
			if once != twice {
				t.Errorf("not idempotent: first %q, second %q", once, twice)
			}
		})
	}
}

func TestMinifyWarnings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kind  WarningKind
	}{
		{"unterminated double quote", `"`, `"`, UnterminatedQuote},
		{"unterminated single quote", "a{content:'abc", "a{content:'abc", UnterminatedQuote},
		{"unterminated comment", "/*", "", UnterminatedComment},
		{"slash star slash", "/*/", "", UnterminatedComment},
		{"comment eats remainder", "a{b:c/* d}", "a{b:c", UnterminatedComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := Minify(tt.input)
			if got != tt.want {
				t.Errorf("Minify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len(warnings) != 1 {
				t.Fatalf("Minify(%q) warnings = %v, want exactly one", tt.input, warnings)
			}
			if warnings[0].Kind != tt.kind {
				t.Errorf("warning kind = %v, want %v", warnings[0].Kind, tt.kind)
			}
			if warnings[0].Message == "" {
				t.Error("warning has no message")
			}
		})
	}
}

func TestMinifyWithOptionsColorsOff(t *testing.T) {
	got, _ := MinifyWithOptions("a { color : #aabbcc ; }", Options{})
	want := "a{color:#aabbcc}"
	if got != want {
		t.Errorf("colors off: got %q, want %q", got, want)
	}

	got, _ = MinifyWithOptions("a{color:rgb(0,0,0)}", Options{})
	want = "a{color:rgb(0,0,0)}"
	if got != want {
		t.Errorf("colors off rgb: got %q, want %q", got, want)
	}
}

func TestMinifyQuoteIntegrity(t *testing.T) {
	input := `a{content:"  keep /* this */ : ; { } intact  "}`
	got, _ := Minify(input)
	if !strings.Contains(got, `"  keep /* this */ : ; { } intact  "`) {
		t.Errorf("quoted bytes were altered: %q", got)
	}
}
