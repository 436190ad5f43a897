// Package tableview is the entity-agnostic engine behind every tabular
// CRUD screen in the panel: search, filters, single-column sort,
// fixed-size pagination and CSV export, all driven by column and field
// metadata supplied by the hosting page rather than per-entity code.
package tableview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mis-safeli/safeli-api/internal/store"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

// FilterAll is the filter option meaning "no restriction".
const FilterAll = "All"

// Column describes one renderable table column.
type Column struct {
	Key      string
	Label    string
	Sortable bool
}

// Field describes one editable form field.
type Field struct {
	Name     string
	Label    string
	Kind     string // text, number, date, select, textarea
	Required bool
	Options  []string
}

// Filter describes one fixed-option dropdown filter.
type Filter struct {
	Name    string
	Label   string
	Options []string
}

// Callbacks are the hosting page's write operations. The view patches
// its in-memory list only after a callback succeeds.
type Callbacks struct {
	Add    func(fields store.Record) (store.Record, error)
	Edit   func(id string, fields store.Record) (store.Record, error)
	Delete func(id string) (store.Record, error)
}

// View holds one table's full UI state.
type View struct {
	Title      string
	Columns    []Column
	FormFields []Field
	Filters    []Filter
	PrimaryKey string

	records      []store.Record
	searchTerm   string
	filterValues map[string]string
	sortKey      string
	sortAsc      bool
	page         int

	pendingDelete string
	hasPending    bool

	callbacks Callbacks
}

func New(title string, columns []Column, fields []Field, filters []Filter, primaryKey string, cb Callbacks) *View {
	if primaryKey == "" {
		primaryKey = "id"
	}
	return &View{
		Title:        title,
		Columns:      columns,
		FormFields:   fields,
		Filters:      filters,
		PrimaryKey:   primaryKey,
		records:      []store.Record{},
		filterValues: map[string]string{},
		page:         1,
		callbacks:    cb,
	}
}

// SetRecords replaces the backing record list.
func (v *View) SetRecords(records []store.Record) {
	v.records = records
}

// SetSearch updates the whole-row search term.
func (v *View) SetSearch(term string) {
	v.searchTerm = term
}

// SetFilter sets one dropdown filter; FilterAll lifts the restriction.
func (v *View) SetFilter(name, value string) {
	v.filterValues[name] = value
}

// ToggleSort sorts by key ascending, or flips the direction when the
// same column is toggled again.
func (v *View) ToggleSort(key string) {
	if v.sortKey == key {
		v.sortAsc = !v.sortAsc
		return
	}
	v.sortKey = key
	v.sortAsc = true
}

// CellValue renders a record field as a string. Unknown column keys
// render empty rather than failing.
func CellValue(record store.Record, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}
	// JSON numbers decode as float64; render integral ones plainly.
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(value)
}

func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func matchesSearch(record store.Record, term string) bool {
	for _, value := range record {
		if strings.Contains(strings.ToLower(fmt.Sprint(value)), term) {
			return true
		}
	}
	return false
}

// FilteredSorted returns the full record set after search, filters and
// sort; pagination windows over this list.
func (v *View) FilteredSorted() []store.Record {
	result := make([]store.Record, 0, len(v.records))

	term := strings.ToLower(v.searchTerm)
	for _, record := range v.records {
		if term != "" && !matchesSearch(record, term) {
			continue
		}
		keep := true
		for name, value := range v.filterValues {
			if value == "" || value == FilterAll {
				continue
			}
			if fmt.Sprint(record[name]) != value {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, record)
		}
	}

	if v.sortKey != "" {
		key, asc := v.sortKey, v.sortAsc
		// Stable so that ties keep their prior relative order.
		sort.SliceStable(result, func(i, j int) bool {
			less := compare(result[i][key], result[j][key]) < 0
			if asc {
				return less
			}
			return compare(result[j][key], result[i][key]) < 0
		})
	}

	return result
}

// compare orders two field values naturally: numerically when both
// sides are numeric, lexically otherwise.
func compare(a, b any) int {
	na, aok := asNumber(a)
	nb, bok := asNumber(b)
	if aok && bok {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// TotalPages is the page count for the current filtered set.
func (v *View) TotalPages() int {
	n := len(v.FilteredSorted())
	return (n + PageSize - 1) / PageSize
}

// Page is the current page index, clamped to the filtered set: when
// filtering shrinks the results below the current page's start the
// index snaps back to the last page.
func (v *View) Page() int {
	total := v.TotalPages()
	if total == 0 {
		return 1
	}
	if v.page > total {
		return total
	}
	if v.page < 1 {
		return 1
	}
	return v.page
}

// NextPage advances one page; past the last page it is a no-op.
func (v *View) NextPage() {
	if v.Page() < v.TotalPages() {
		v.page = v.Page() + 1
	}
}

// PrevPage goes back one page; before the first page it is a no-op.
func (v *View) PrevPage() {
	if v.Page() > 1 {
		v.page = v.Page() - 1
	}
}

// ShowPagination reports whether pagination controls are rendered at
// all; a single page (or an empty table) hides them.
func (v *View) ShowPagination() bool {
	return v.TotalPages() > 1
}

// Rows returns the current page of the filtered, sorted records.
func (v *View) Rows() []store.Record {
	filtered := v.FilteredSorted()
	start := (v.Page() - 1) * PageSize
	if start >= len(filtered) {
		return []store.Record{}
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// ExportCSV renders the whole filtered/sorted set (not just the current
// page) using the declared columns. Values are comma-joined verbatim;
// fields containing commas are not escaped.
func (v *View) ExportCSV() string {
	var b strings.Builder

	labels := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		labels[i] = col.Label
	}
	b.WriteString(strings.Join(labels, ","))

	for _, record := range v.FilteredSorted() {
		cells := make([]string, len(v.Columns))
		for i, col := range v.Columns {
			cells[i] = CellValue(record, col.Key)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, ","))
	}
	return b.String()
}

// Add submits a new record through the page callback and appends the
// stored result to the in-memory list.
func (v *View) Add(fields store.Record) error {
	record, err := v.callbacks.Add(fields)
	if err != nil {
		return err
	}
	v.records = append(v.records, record)
	return nil
}

// Edit submits changed fields for the record addressed by id and
// patches the in-memory copy with the returned record.
func (v *View) Edit(id string, fields store.Record) error {
	record, err := v.callbacks.Edit(id, fields)
	if err != nil {
		return err
	}
	for i, existing := range v.records {
		if fmt.Sprint(existing[v.PrimaryKey]) == id {
			v.records[i] = record
			break
		}
	}
	return nil
}

// RequestDelete stages a delete; nothing happens until ConfirmDelete.
func (v *View) RequestDelete(id string) {
	v.pendingDelete = id
	v.hasPending = true
}

// CancelDelete drops the staged delete.
func (v *View) CancelDelete() {
	v.pendingDelete = ""
	v.hasPending = false
}

// ConfirmDelete runs the staged delete through the page callback and
// removes the record from the in-memory list.
func (v *View) ConfirmDelete() error {
	if !v.hasPending {
		return nil
	}
	id := v.pendingDelete
	v.CancelDelete()

	if _, err := v.callbacks.Delete(id); err != nil {
		return err
	}
	for i, existing := range v.records {
		if fmt.Sprint(existing[v.PrimaryKey]) == id {
			v.records = append(v.records[:i], v.records[i+1:]...)
			break
		}
	}
	return nil
}
