// ABOUTME: The individual extraction strategies used by Parse.
// ABOUTME: Each is pure and reports success only when both fields are non-empty.

package parse

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync"
)

var fencePattern = regexp.MustCompile("```(?:json|JSON)?[ \t]*")

// clean strips markdown code fences.
func clean(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func result(short, long string, stage Stage) (Result, bool) {
	short = truncate(strings.TrimSpace(short), ShortMax)
	long = truncate(strings.TrimSpace(long), LongMax)
	if short == "" || long == "" {
		return Result{}, false
	}
	return Result{Short: short, Long: long, Stage: stage}, true
}

func fromJSON(raw string, f Fields, stage Stage) (Result, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return Result{}, false
	}
	short, _ := obj[f.Short].(string)
	long, _ := obj[f.Long].(string)
	return result(short, long, stage)
}

// FromEmbeddedObject parses the span from the first '{' to the last '}' as
// strict JSON.
func FromEmbeddedObject(text string, f Fields) (Result, bool) {
	t := clean(text)
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start < 0 || end <= start {
		return Result{}, false
	}
	return fromJSON(t[start:end+1], f, StageEmbeddedObject)
}

// FromWholeText parses the whole cleaned text as strict JSON.
func FromWholeText(text string, f Fields) (Result, bool) {
	return fromJSON(clean(text), f, StageWholeText)
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func valuePattern(key string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	re, ok := patternCache[key]
	if !ok {
		re = regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*"([^"]+)"`)
		patternCache[key] = re
	}
	return re
}

// FromRegex pulls each quoted value out with a key-specific pattern.
func FromRegex(text string, f Fields) (Result, bool) {
	t := clean(text)
	s := valuePattern(f.Short).FindStringSubmatch(t)
	l := valuePattern(f.Long).FindStringSubmatch(t)
	if s == nil || l == nil {
		return Result{}, false
	}
	return result(s[1], l[1], StageRegex)
}

// FromFieldScan finds each quoted key literal and takes the text from the
// following colon up to the next comma or the end of the text.
func FromFieldScan(text string, f Fields) (Result, bool) {
	t := clean(text)
	short, ok := scanValue(t, f.Short)
	if !ok {
		return Result{}, false
	}
	long, ok := scanValue(t, f.Long)
	if !ok {
		return Result{}, false
	}
	return result(short, long, StageFieldScan)
}

func scanValue(t, key string) (string, bool) {
	at := strings.Index(t, `"`+key+`"`)
	if at < 0 {
		return "", false
	}
	rest := t[at+len(key)+2:]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return "", false
	}
	rest = rest[colon+1:]
	if comma := strings.Index(rest, ","); comma >= 0 {
		rest = rest[:comma]
	}
	return strings.Trim(rest, " \t\r\n\"{}"), true
}

// FromLines treats the first short plain line as the short field and the
// remaining lines as the long field. It needs at least two non-blank lines.
func FromLines(text string, f Fields) (Result, bool) {
	var lines []string
	for _, line := range strings.Split(clean(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return Result{}, false
	}
	for i, line := range lines {
		if len([]rune(line)) < ShortMax && !strings.ContainsAny(line, "{:") && i+1 < len(lines) {
			return result(line, strings.Join(lines[i+1:], " "), StageLines)
		}
	}
	return result(lines[0], strings.Join(lines[1:], " "), StageLines)
}

// FromThirds splits the text one third of the way through.
func FromThirds(text string, f Fields) (Result, bool) {
	r := []rune(clean(text))
	if len(r) < 2 {
		return Result{}, false
	}
	cut := max(1, len(r)/3)
	return result(string(r[:cut]), string(r[cut:]), StageThirds)
}
