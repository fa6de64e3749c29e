package sink

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/store"
)

func sampleIncidents() []record.Record {
	return []record.Record{
		&record.IncidentRecord{
			ID: "INC0000001", Caller: "Fred Luddy", Category: "Network", Subcategory: "VPN",
			Service: "Bond Trading", ServiceOffering: "Basic VPN", ConfigurationItem: "lnux100",
			ShortDescription: "VPN drops every hour",
			Description:      "Users on the trading floor lose VPN, then reconnect.",
			Channel:          "Phone", Opened: "2025-03-04 09:15:00", State: "Resolved",
			Impact: 1, Urgency: 2, Priority: 2,
			AssignmentGroup: "Network", AssignedTo: "David Loo",
			CloseCode: "Solution provided", CloseNotes: `Replaced the "edge" router.`,
		},
		&record.IncidentRecord{
			ID: "INC0000002", Caller: "Beth Anglin", Category: "Hardware", Subcategory: "Printer",
			Service: "E-Commerce", ServiceOffering: "Standard Email", ConfigurationItem: "Retail POS (Point of Sale)",
			ShortDescription: "Receipt printer jams",
			Description:      "Printer at register 4 jams on every second receipt.",
			Channel:          "Walk-in", Opened: "2025-03-05 14:00:00", State: "New",
			Impact: 3, Urgency: 3, Priority: 5,
			AssignmentGroup: "Hardware", AssignedTo: "Bow Ruggeri",
		},
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatCSV, FormatFor("out.CSV"))
	assert.Equal(t, FormatSQLite, FormatFor("data/out.db"))
	assert.Equal(t, FormatSQLite, FormatFor("out.sqlite"))
	assert.Equal(t, FormatExcel, FormatFor("bulk-data.xlsx"))
	assert.Equal(t, FormatExcel, FormatFor("no-extension"))
}

func TestSplitPaths(t *testing.T) {
	closed, open := SplitPaths("out/bulk-data.xlsx")
	assert.Equal(t, "out/bulk-data-closed.xlsx", closed)
	assert.Equal(t, "out/bulk-data-open.xlsx", open)
}

func TestCSV_Golden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "incidents.csv")
	s, err := Open(path, record.Incident, Options{})
	require.NoError(t, err)

	recs := sampleIncidents()
	// Two batches to exercise appending.
	require.NoError(t, s.WriteRecords(recs[:1]))
	require.NoError(t, s.WriteRecords(recs[1:]))
	require.NoError(t, s.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "incidents", got)
}

func TestCSV_KindMismatch(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewCSV(&buf, record.Case)
	require.NoError(t, err)
	err = s.WriteRecords(sampleIncidents())
	assert.ErrorIs(t, err, errKindMismatch)
}

func TestExcel_WritesSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulk-data.xlsx")
	s, err := Open(path, record.Incident, Options{})
	require.NoError(t, err)
	require.NoError(t, s.WriteRecords(sampleIncidents()))
	require.NoError(t, s.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"incident"}, f.GetSheetList())
	rows, err := f.GetRows("incident")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, record.Headers(record.Incident), rows[0])
	assert.Equal(t, "INC0000001", rows[1][0])
	assert.Equal(t, "2 - High", rows[1][14])
	assert.Equal(t, "Bow Ruggeri", rows[2][16])
}

func TestSQLite_InsertsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	s, err := Open(path, record.Incident, Options{})
	require.NoError(t, err)
	require.NoError(t, s.WriteRecords(sampleIncidents()))
	require.NoError(t, s.Close())

	st, err := store.New(path)
	require.NoError(t, err)
	defer st.Close()

	recs, err := st.QueryRecords(context.Background(), "incident", store.Query{NumberPrefix: "INC"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "INC0000001", recs[0].Number)
	assert.Equal(t, "VPN drops every hour", recs[0].Fields["short_description"])
	assert.Equal(t, "5 - Planning", recs[1].Fields["priority"])
}

func TestSplit_RoutesByClosed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bulk.csv")
	s, err := Open(path, record.Incident, Options{Split: true})
	require.NoError(t, err)
	require.NoError(t, s.WriteRecords(sampleIncidents()))
	require.NoError(t, s.Close())

	closed, err := os.ReadFile(filepath.Join(dir, "bulk-closed.csv"))
	require.NoError(t, err)
	open, err := os.ReadFile(filepath.Join(dir, "bulk-open.csv"))
	require.NoError(t, err)

	assert.Contains(t, string(closed), "INC0000001")
	assert.NotContains(t, string(closed), "INC0000002")
	assert.Contains(t, string(open), "INC0000002")
	assert.NotContains(t, string(open), "INC0000001")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "unsplit path is not created")
}

type failingSink struct{ closed bool }

func (f *failingSink) WriteRecords([]record.Record) error { return errors.New("disk full") }
func (f *failingSink) Close() error                       { f.closed = true; return nil }

func TestSplit_PropagatesErrors(t *testing.T) {
	bad, good := &failingSink{}, &failingSink{}
	s := NewSplit(bad, good)
	assert.ErrorContains(t, s.WriteRecords(sampleIncidents()[:1]), "disk full")
	assert.NoError(t, s.WriteRecords(nil))
	require.NoError(t, s.Close())
	assert.True(t, bad.closed)
	assert.True(t, good.closed)
}

func TestOpen_RejectsUnknownKind(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "x.csv"), record.Kind("problem"), Options{})
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "1.5", formatValue(1.5))
}
