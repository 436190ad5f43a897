package panel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mis-safeli/safeli-api/internal/localstore"
	"github.com/mis-safeli/safeli-api/internal/store"
)

func TestModulesAreFullyDescribed(t *testing.T) {
	modules := Modules()
	require.Len(t, modules, 9)

	seen := map[string]bool{}
	for _, m := range modules {
		assert.NotEmpty(t, m.Title)
		assert.False(t, seen[m.Title], "duplicate module title %q", m.Title)
		seen[m.Title] = true

		assert.NotEmpty(t, m.PrimaryKey, "%s: primary key", m.Title)
		assert.NotEmpty(t, m.Columns, "%s: columns", m.Title)
		assert.NotEmpty(t, m.FormFields, "%s: form fields", m.Title)

		// Server-backed and locally stored are mutually exclusive.
		if m.StorageKey != "" {
			assert.Empty(t, m.Entity.Path, "%s: both entity and storage key", m.Title)
		} else {
			assert.NotEmpty(t, m.Entity.Path, "%s: neither entity nor storage key", m.Title)
		}

		for _, f := range m.FormFields {
			if f.Kind == "select" {
				assert.NotEmpty(t, f.Options, "%s: select field %s without options", m.Title, f.Name)
			}
		}
		for _, filter := range m.Filters {
			require.NotEmpty(t, filter.Options, "%s: filter %s", m.Title, filter.Name)
			assert.Equal(t, "All", filter.Options[0], "%s: filter %s must lead with All", m.Title, filter.Name)
		}
	}
}

func TestNewStorePicksBackend(t *testing.T) {
	kv, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	local, err := Production().NewStore(kv, "http://localhost:5000")
	require.NoError(t, err)
	_, isLocal := local.(*store.Local)
	assert.True(t, isLocal)

	remote, err := Sales().NewStore(kv, "http://localhost:5000")
	require.NoError(t, err)
	_, isRemote := remote.(*store.Remote)
	assert.True(t, isRemote)
}

func TestNewViewLoadsRecordsAndBindsCallbacks(t *testing.T) {
	kv, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	module := HR()
	st, err := module.NewStore(kv, "")
	require.NoError(t, err)

	view, err := NewView(context.Background(), module, st)
	require.NoError(t, err)

	rows := view.FilteredSorted()
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP-001", rows[0]["employeeId"])

	// The add callback writes through to the store.
	require.NoError(t, view.Add(store.Record{"employeeId": "EMP-002", "name": "Jane Roe"}))
	records, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
