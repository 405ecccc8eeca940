// Package inspect summarizes a stylesheet with a real CSS tokenizer.
// It exists beside the minifier, not inside it: the minifier is a
// grammar-blind byte scanner, and inspection is the place where an
// actual parser is allowed to look at the input or verify the output.
package inspect

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Report summarizes the structure of one stylesheet.
type Report struct {
	Source       string   `yaml:"source,omitempty"`
	Bytes        int      `yaml:"bytes"`
	Rules        int      `yaml:"rules"`
	AtRules      int      `yaml:"at-rules"`
	Selectors    int      `yaml:"selectors"`
	Declarations int      `yaml:"declarations"`
	Colors       int      `yaml:"colors"`
	Warnings     []string `yaml:"warnings,omitempty"`
}

// YAML renders the report for machine consumption.
func (r *Report) YAML() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Inspector walks stylesheets and produces Reports.
type Inspector struct {
	log *zap.Logger
}

// New creates an Inspector. A nil logger means no logging.
func New(log *zap.Logger) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inspector{log: log.Named("inspect")}
}

// Inspect tokenizes data and counts rules, selectors, declarations and
// color literals. The optional source parameter names what is being
// inspected, for the report and for debug logging.
func (i *Inspector) Inspect(data []byte, source ...string) *Report {
	report := &Report{Bytes: len(data)}
	if len(source) > 0 && source[0] != "" {
		report.Source = source[0]
		i.log.Debug("inspecting stylesheet",
			zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				i.log.Debug("parse error", zap.Error(err))
				report.Warnings = append(report.Warnings, err.Error())
			}
			return report

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			report.Rules++
			report.Selectors += countSelectors(data, parser.Values())

		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			report.AtRules++

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			report.Declarations++
			report.Colors += countColors(parser.Values())
		}
	}
}

// countSelectors joins the selector tokens and counts the comma-separated
// groups.
func countSelectors(data []byte, values []css.Token) int {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	n := 0
	for _, s := range strings.Split(sb.String(), ",") {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// countColors counts hex literals and rgb()/rgba() calls among the
// declaration value tokens.
func countColors(values []css.Token) int {
	n := 0
	for _, v := range values {
		switch v.TokenType {
		case css.HashToken:
			n++
		case css.FunctionToken:
			name := strings.ToLower(string(v.Data))
			if name == "rgb(" || name == "rgba(" {
				n++
			}
		}
	}
	return n
}
