package tableview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mis-safeli/safeli-api/internal/store"
)

func testColumns() []Column {
	return []Column{
		{Key: "order_no", Label: "Order No.", Sortable: true},
		{Key: "application", Label: "Application", Sortable: true},
		{Key: "quantity", Label: "Quantity", Sortable: true},
	}
}

func testView(records []store.Record) *View {
	v := New("Sales", testColumns(), nil, nil, "order_no", Callbacks{})
	v.SetRecords(records)
	return v
}

func TestSearchIsCaseInsensitiveAcrossAllFields(t *testing.T) {
	v := testView([]store.Record{
		{"order_no": "ORD-001", "application": "Solar", "quantity": 10},
		{"order_no": "ORD-002", "application": "E-Rickshaw", "quantity": 20},
		{"order_no": "ORD-003", "application": "UPS", "quantity": 30},
	})

	v.SetSearch("SOLAR")
	rows := v.FilteredSorted()
	require.Len(t, rows, 1)
	assert.Equal(t, "ORD-001", rows[0]["order_no"])

	// Match against a non-column field too.
	v.SetSearch("ord-")
	assert.Len(t, v.FilteredSorted(), 3)
}

func TestFilterAllSentinelLiftsRestriction(t *testing.T) {
	v := testView([]store.Record{
		{"order_no": "ORD-001", "application": "Solar"},
		{"order_no": "ORD-002", "application": "UPS"},
	})

	v.SetFilter("application", "Solar")
	assert.Len(t, v.FilteredSorted(), 1)

	v.SetFilter("application", FilterAll)
	assert.Len(t, v.FilteredSorted(), 2)

	v.SetFilter("application", "")
	assert.Len(t, v.FilteredSorted(), 2)
}

func TestToggleSortFlipsDirection(t *testing.T) {
	v := testView([]store.Record{
		{"order_no": "ORD-002", "quantity": 20},
		{"order_no": "ORD-001", "quantity": 30},
		{"order_no": "ORD-003", "quantity": 10},
	})

	v.ToggleSort("order_no")
	rows := v.FilteredSorted()
	assert.Equal(t, "ORD-001", rows[0]["order_no"])
	assert.Equal(t, "ORD-003", rows[2]["order_no"])

	v.ToggleSort("order_no")
	rows = v.FilteredSorted()
	assert.Equal(t, "ORD-003", rows[0]["order_no"])
	assert.Equal(t, "ORD-001", rows[2]["order_no"])

	// Switching column resets to ascending.
	v.ToggleSort("quantity")
	rows = v.FilteredSorted()
	assert.Equal(t, 10, rows[0]["quantity"])
}

func TestSortComparesNumbersNumerically(t *testing.T) {
	v := testView([]store.Record{
		{"order_no": "A", "quantity": float64(100)},
		{"order_no": "B", "quantity": float64(9)},
	})

	v.ToggleSort("quantity")
	rows := v.FilteredSorted()
	assert.Equal(t, "B", rows[0]["order_no"])
}

func manyRecords(n int) []store.Record {
	records := make([]store.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, store.Record{
			"order_no": fmt.Sprintf("ORD-%03d", i),
			"quantity": i,
		})
	}
	return records
}

func TestPagination(t *testing.T) {
	v := testView(manyRecords(25))

	assert.Equal(t, 3, v.TotalPages())
	assert.True(t, v.ShowPagination())
	assert.Equal(t, 1, v.Page())
	assert.Len(t, v.Rows(), 10)

	v.NextPage()
	v.NextPage()
	assert.Equal(t, 3, v.Page())
	assert.Len(t, v.Rows(), 5)

	// Past the last page is a no-op.
	v.NextPage()
	assert.Equal(t, 3, v.Page())

	v.PrevPage()
	v.PrevPage()
	assert.Equal(t, 1, v.Page())
	v.PrevPage()
	assert.Equal(t, 1, v.Page())
}

func TestPageClampsWhenFilterShrinksResults(t *testing.T) {
	v := testView(manyRecords(25))
	v.NextPage()
	v.NextPage()
	require.Equal(t, 3, v.Page())

	v.SetSearch("ORD-001")
	assert.Equal(t, 1, v.Page())
	assert.Len(t, v.Rows(), 1)
	assert.False(t, v.ShowPagination())
}

func TestCellValueRendering(t *testing.T) {
	record := store.Record{
		"quantity": float64(30),
		"rate":     float64(1.5),
		"remarks":  nil,
	}

	assert.Equal(t, "30", CellValue(record, "quantity"))
	assert.Equal(t, "1.5", CellValue(record, "rate"))
	assert.Equal(t, "", CellValue(record, "remarks"))
	assert.Equal(t, "", CellValue(record, "missing"))
}

func TestExportCSVCoversFullFilteredSet(t *testing.T) {
	v := testView(manyRecords(25))
	v.ToggleSort("quantity")

	out := v.ExportCSV()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, "Order No.,Application,Quantity", lines[0])
	assert.Equal(t, "ORD-001,,1", lines[1])
	assert.Equal(t, "ORD-025,,25", lines[25])
}

func TestAddEditDeleteGoThroughCallbacks(t *testing.T) {
	var deleted []string
	v := New("Sales", testColumns(), nil, nil, "order_no", Callbacks{
		Add: func(fields store.Record) (store.Record, error) {
			return fields, nil
		},
		Edit: func(id string, fields store.Record) (store.Record, error) {
			fields["order_no"] = id
			return fields, nil
		},
		Delete: func(id string) (store.Record, error) {
			deleted = append(deleted, id)
			return store.Record{"order_no": id}, nil
		},
	})
	v.SetRecords([]store.Record{{"order_no": "ORD-001", "quantity": 10}})

	require.NoError(t, v.Add(store.Record{"order_no": "ORD-002", "quantity": 20}))
	assert.Len(t, v.FilteredSorted(), 2)

	require.NoError(t, v.Edit("ORD-001", store.Record{"quantity": 99}))
	rows := v.FilteredSorted()
	found := false
	for _, r := range rows {
		if r["order_no"] == "ORD-001" {
			found = true
			assert.Equal(t, 99, r["quantity"])
		}
	}
	assert.True(t, found)

	// Delete is two phase: nothing happens until confirmed.
	v.RequestDelete("ORD-002")
	assert.Len(t, v.FilteredSorted(), 2)

	v.CancelDelete()
	require.NoError(t, v.ConfirmDelete())
	assert.Empty(t, deleted)
	assert.Len(t, v.FilteredSorted(), 2)

	v.RequestDelete("ORD-002")
	require.NoError(t, v.ConfirmDelete())
	assert.Equal(t, []string{"ORD-002"}, deleted)
	assert.Len(t, v.FilteredSorted(), 1)
}
