// ABOUTME: Builds one fully cross-referenced record per call for a chosen kind.
// ABOUTME: Failures and panics degrade into a placeholder record instead of escaping.

package synth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
)

// ErrUnknownKind is returned by New for kinds without a builder.
var ErrUnknownKind = errors.New("synth: unknown record kind")

// DateLayout is the platform's date-time format.
const (
	DateLayout = "2006-01-02 15:04:05"
	DayLayout  = "2006-01-02"
)

const numberSpace = 10_000_000

// TextGenerator is the slice of the completion client the synthesizer uses.
// Implementations never fail; they return fallback text instead.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, maxLength int) string
}

// Options tunes a Synthesizer.
type Options struct {
	// ClosedPercentage is the chance, 0-100, that a record lands in a terminal
	// state. Negative values draw states uniformly.
	ClosedPercentage int
	// Salt offsets record numbers. Zero derives it from the start time.
	Salt int
	// Now overrides the clock, for tests.
	Now func() time.Time
}

type builder func(s *Synthesizer, ctx context.Context, number string) (record.Record, error)

var builders = map[record.Kind]builder{
	record.Incident:         buildIncident,
	record.Case:             buildCase,
	record.HRCase:           buildHRCase,
	record.ChangeRequest:    buildChangeRequest,
	record.KnowledgeArticle: buildKnowledgeArticle,
}

// Synthesizer generates records of one kind. It is safe for concurrent use.
type Synthesizer struct {
	kind      record.Kind
	refs      *refdata.Store
	text      TextGenerator
	closedPct int
	salt      int
	now       func() time.Time
	build     builder
}

// New returns a Synthesizer for kind.
func New(kind record.Kind, refs *refdata.Store, text TextGenerator, opts Options) (*Synthesizer, error) {
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if refs == nil {
		refs = refdata.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	salt := opts.Salt
	if salt == 0 {
		salt = int(now().Unix() % numberSpace)
	}
	return &Synthesizer{
		kind:      kind,
		refs:      refs,
		text:      text,
		closedPct: opts.ClosedPercentage,
		salt:      salt,
		now:       now,
		build:     build,
	}, nil
}

func (s *Synthesizer) Kind() record.Kind { return s.kind }

// Number formats the record number for index: prefix plus seven digits.
func (s *Synthesizer) Number(index int) string {
	n := (s.salt + index) % numberSpace
	if n < 0 {
		n += numberSpace
	}
	return fmt.Sprintf("%s%07d", s.kind.Prefix(), n)
}

// Generate builds the record for index. It always returns a record; a non-nil
// error means the record is a degraded placeholder carrying that error.
func (s *Synthesizer) Generate(ctx context.Context, index int) (rec record.Record, err error) {
	number := s.Number(index)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic generating %s: %v", number, r)
			rec = Degraded(s.kind, number, err)
		}
	}()

	rec, err = s.build(s, ctx, number)
	if err != nil {
		return Degraded(s.kind, number, err), err
	}
	return rec, nil
}

// Degraded is the placeholder record emitted when synthesis fails.
func Degraded(kind record.Kind, number string, cause error) record.Record {
	short := "Error generating record: " + cause.Error()
	long := "This record could not be generated: " + cause.Error()
	switch kind {
	case record.Case:
		return &record.CaseRecord{ID: number, ShortDescription: short, Description: long, State: "New", Priority: 5}
	case record.HRCase:
		return &record.HRCaseRecord{ID: number, ShortDescription: short, Description: long, State: "New", Priority: 5}
	case record.ChangeRequest:
		return &record.ChangeRequestRecord{ID: number, ShortDescription: short, Description: long, State: "New", Impact: 3, Priority: 5}
	case record.KnowledgeArticle:
		return &record.KnowledgeArticleRecord{ID: number, ShortDescription: short, Text: long, WorkflowState: "draft"}
	default:
		return &record.IncidentRecord{
			ID:               number,
			ShortDescription: short,
			Description:      long,
			State:            "New",
			Impact:           3,
			Urgency:          3,
			Priority:         5,
		}
	}
}

// drawState picks from a value/display state set, landing in a terminal state
// with probability closedPct percent.
func (s *Synthesizer) drawState(set string) string {
	if s.closedPct < 0 {
		return s.refs.RandomValue(set).Display
	}
	closed := rollPercent(s.closedPct)
	return s.refs.RandomValueWhere(set, func(c refdata.Choice) bool {
		return s.kind.Terminal(c.Display) == closed
	}).Display
}

func rollPercent(pct int) bool {
	return rand.Float64()*100 < float64(pct)
}

// drawLevels draws impact and urgency and derives priority from them.
func (s *Synthesizer) drawLevels() (impact, urgency, priority int) {
	impact = levelOr(s.refs.RandomValue("impact").Value)
	urgency = levelOr(s.refs.RandomValue("urgency").Value)
	return impact, urgency, record.Priority(impact, urgency)
}

func levelOr(v int) int {
	if v == 0 {
		return 3
	}
	return v
}

// assignment draws a group and one of its members.
func (s *Synthesizer) assignment() (group, assignee refdata.Entity) {
	group = s.refs.RandomEntity(refdata.PoolGroup)
	assignee = s.refs.RandomLinked(refdata.PoolUser, refdata.PoolGroup, group.ID)
	return group, assignee
}

// serviceChain draws a configuration item, its service and an offering of
// that service.
func (s *Synthesizer) serviceChain() (ci, service, offering refdata.Entity) {
	ci = s.refs.RandomEntity(refdata.PoolCI)
	service = s.refs.RandomLink(ci, refdata.PoolService)
	offering = s.refs.RandomLinked(refdata.PoolServiceOffering, refdata.PoolService, service.ID)
	return ci, service, offering
}

func (s *Synthesizer) openedAt() string {
	now := s.now()
	return gofakeit.DateRange(now.AddDate(-1, 0, 0), now).Format(DateLayout)
}

// resolution returns resolved and closed dates within the last week, closed
// no earlier than resolved.
func (s *Synthesizer) resolution() (resolvedAt, closedAt string) {
	resolved := s.now().AddDate(0, 0, -rand.IntN(7))
	closed := resolved.AddDate(0, 0, rand.IntN(2))
	return resolved.Format(DayLayout), closed.Format(DayLayout)
}

// cleanNotes strips the quoting, labels and line breaks models tend to add.
func cleanNotes(text string) string {
	t := strings.TrimSpace(text)
	t = strings.Trim(t, `"'`)
	for _, label := range []string{"Close notes:", "Resolution:"} {
		t = strings.TrimPrefix(t, label)
	}
	t = strings.ReplaceAll(t, "\r", "")
	t = strings.ReplaceAll(t, "\n", " ")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(t), `"'`))
}
