// ABOUTME: Tolerant extraction of a short/long text pair from model output.
// ABOUTME: Tries progressively looser strategies and never fails.

package parse

// Field caps, in runes.
const (
	ShortMax = 100
	LongMax  = 400
)

// Fields names the two JSON keys a prompt asked for.
type Fields struct {
	Short string
	Long  string
}

// Descriptions is the key pair used by ticket description prompts.
var Descriptions = Fields{Short: "shortDescription", Long: "description"}

// Stage identifies which strategy produced a Result.
type Stage int

const (
	StageNone Stage = iota
	StageEmbeddedObject
	StageWholeText
	StageRegex
	StageFieldScan
	StageLines
	StageThirds
)

var stageNames = [...]string{"none", "embedded-object", "whole-text", "regex", "field-scan", "lines", "thirds"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Result is the extracted pair. Both fields are empty only for StageNone.
type Result struct {
	Short string
	Long  string
	Stage Stage
}

// OK reports whether a stage produced both fields.
func (r Result) OK() bool {
	return r.Stage != StageNone
}

// Strategy is one extraction attempt.
type Strategy func(text string, f Fields) (Result, bool)

// Strategies in the order Parse applies them.
var Strategies = []Strategy{
	FromEmbeddedObject,
	FromWholeText,
	FromRegex,
	FromFieldScan,
	FromLines,
	FromThirds,
}

// Parse returns the first successful strategy's result. Blank input yields a
// zero Result with StageNone.
func Parse(text string, f Fields) (res Result) {
	defer func() {
		if recover() != nil {
			res = Result{}
		}
	}()
	for _, s := range Strategies {
		if r, ok := s(text, f); ok {
			return r
		}
	}
	return Result{}
}

// Or returns r's fields with empty ones replaced by the defaults.
func (r Result) Or(short, long string) (string, string) {
	s, l := r.Short, r.Long
	if s == "" {
		s = short
	}
	if l == "" {
		l = long
	}
	return s, l
}
