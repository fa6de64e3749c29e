// ABOUTME: Record kinds the generator can synthesize and their number prefixes.
// ABOUTME: A kind doubles as the table name in sinks and the platform store.

package record

import (
	"fmt"
	"strings"
)

// Kind identifies a synthetic business record type.
type Kind string

const (
	Incident         Kind = "incident"
	Case             Kind = "case"
	HRCase           Kind = "hr_case"
	ChangeRequest    Kind = "change_request"
	KnowledgeArticle Kind = "knowledge_article"
)

var kindPrefixes = map[Kind]string{
	Incident:         "INC",
	Case:             "CAS",
	HRCase:           "HRC",
	ChangeRequest:    "CHG",
	KnowledgeArticle: "KBA",
}

// Terminal reports whether state ends the lifecycle of a record of kind k.
// Incidents and cases end Resolved or Closed, change requests end Closed and
// knowledge articles end published or retired.
func (k Kind) Terminal(state string) bool {
	switch k {
	case ChangeRequest:
		return state == "Closed"
	case KnowledgeArticle:
		return state == "published" || state == "retired"
	default:
		return state == "Resolved" || state == "Closed"
	}
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{Incident, Case, HRCase, ChangeRequest, KnowledgeArticle}
}

// ParseKind validates a table name from the command line or an API path.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		names := make([]string, 0, len(kindPrefixes))
		for _, known := range Kinds() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unsupported table %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return k, nil
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	_, ok := kindPrefixes[k]
	return ok
}

// Prefix is the three-letter prefix used for record numbers.
func (k Kind) Prefix() string {
	return kindPrefixes[k]
}

func (k Kind) String() string {
	return string(k)
}
