package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Matrix(t *testing.T) {
	want := map[[2]int]int{
		{1, 1}: 1,
		{1, 2}: 2, {2, 1}: 2,
		{1, 3}: 3, {2, 2}: 3, {3, 1}: 3,
		{2, 3}: 4, {3, 2}: 4,
		{3, 3}: 5,
	}
	for impact := 1; impact <= 3; impact++ {
		for urgency := 1; urgency <= 3; urgency++ {
			assert.Equal(t, want[[2]int{impact, urgency}], Priority(impact, urgency),
				"impact=%d urgency=%d", impact, urgency)
		}
	}
}

func TestPriority_OutsideMatrixDefaultsToModerate(t *testing.T) {
	for _, pair := range [][2]int{{0, 0}, {4, 1}, {1, 4}, {-1, 3}, {3, 99}} {
		assert.Equal(t, 3, Priority(pair[0], pair[1]), "pair %v", pair)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "1 - Critical", PriorityLabel(1))
	assert.Equal(t, "5 - Planning", PriorityLabel(5))
	assert.Equal(t, "9", PriorityLabel(9))
	assert.Equal(t, "2 - Medium", LevelLabel(2))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Incident ")
	require.NoError(t, err)
	assert.Equal(t, Incident, k)

	_, err = ParseKind("problem")
	assert.ErrorContains(t, err, "unsupported table")
}

func TestColumnsMatchRows(t *testing.T) {
	records := []Record{
		&IncidentRecord{},
		&CaseRecord{},
		&HRCaseRecord{},
		&ChangeRequestRecord{},
		&KnowledgeArticleRecord{},
	}
	require.Len(t, records, len(Kinds()))
	for _, r := range records {
		t.Run(r.Kind().String(), func(t *testing.T) {
			assert.Len(t, r.Row(), len(Columns(r.Kind())))
			assert.NotEmpty(t, r.Kind().Prefix())
		})
	}
}

func TestFields(t *testing.T) {
	r := &IncidentRecord{
		ID:               "INC0000001",
		ShortDescription: "VPN drops",
		State:            "Resolved",
		Impact:           1,
		Urgency:          2,
		Priority:         2,
	}
	fields := Fields(r)
	assert.Equal(t, "INC0000001", fields["number"])
	assert.Equal(t, "VPN drops", fields["short_description"])
	assert.Equal(t, "2 - High", fields["priority"])
	assert.True(t, r.Closed())
}

func TestClosed(t *testing.T) {
	assert.False(t, (&CaseRecord{State: "On Hold"}).Closed())
	assert.True(t, (&CaseRecord{State: "Closed"}).Closed())
	assert.False(t, (&ChangeRequestRecord{State: "Review"}).Closed())
	assert.True(t, (&KnowledgeArticleRecord{WorkflowState: "published"}).Closed())
	assert.False(t, (&KnowledgeArticleRecord{WorkflowState: "draft"}).Closed())
}

func TestKindTerminal(t *testing.T) {
	tests := []struct {
		kind  Kind
		state string
		want  bool
	}{
		{Incident, "Resolved", true},
		{Incident, "In Progress", false},
		{HRCase, "Closed", true},
		{ChangeRequest, "Closed", true},
		{ChangeRequest, "Resolved", false},
		{KnowledgeArticle, "retired", true},
		{KnowledgeArticle, "review", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Terminal(tt.state), "%s %q", tt.kind, tt.state)
	}
}
