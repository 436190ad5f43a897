package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mis-safeli/safeli-api/internal/localstore"
)

func newTestKV(t *testing.T) *localstore.Store {
	t.Helper()
	kv, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return kv
}

func TestNewLocalSeedsKnownModuleOnFirstAccess(t *testing.T) {
	kv := newTestKV(t)

	local, err := NewLocal(kv, ModuleProduction)
	require.NoError(t, err)

	records, err := local.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "PROD-001", records[0]["productionId"])
	assert.Equal(t, "Completed", records[0]["status"])
}

func TestNewLocalStartsEmptyForUnknownModule(t *testing.T) {
	kv := newTestKV(t)

	local, err := NewLocal(kv, "ksev_scratch")
	require.NoError(t, err)

	records, err := local.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLocalAddAssignsIDWhenMissing(t *testing.T) {
	kv := newTestKV(t)
	local, err := NewLocal(kv, ModuleDispatch)
	require.NoError(t, err)

	added, err := local.Add(context.Background(), Record{"dispatchId": "DISP-002"})
	require.NoError(t, err)
	assert.NotEmpty(t, added["id"])

	// A caller-supplied id is kept.
	added, err = local.Add(context.Background(), Record{"id": "custom", "dispatchId": "DISP-003"})
	require.NoError(t, err)
	assert.Equal(t, "custom", added["id"])

	records, err := local.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLocalEditMergesFieldsAndKeepsID(t *testing.T) {
	kv := newTestKV(t)
	local, err := NewLocal(kv, ModuleHR)
	require.NoError(t, err)

	edited, err := local.Edit(context.Background(), "1", Record{
		"status": "On Leave",
		"id":     "hijack",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", edited["id"])
	assert.Equal(t, "On Leave", edited["status"])
	assert.Equal(t, "John Doe", edited["name"])

	_, err = local.Edit(context.Background(), "missing", Record{"status": "Active"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalDeleteReturnsRemovedRecord(t *testing.T) {
	kv := newTestKV(t)
	local, err := NewLocal(kv, ModuleProduct)
	require.NoError(t, err)

	removed, err := local.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", removed["productId"])

	records, err := local.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = local.Delete(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalPersistsAcrossInstances(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	first, err := NewLocal(kv, ModuleRnD)
	require.NoError(t, err)
	_, err = first.Add(ctx, Record{"id": "2", "projectId": "RND-002", "status": "Planning"})
	require.NoError(t, err)

	// A fresh instance over the same storage sees the same records and
	// does not reseed.
	second, err := NewLocal(kv, ModuleRnD)
	require.NoError(t, err)
	records, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "RND-002", records[1]["projectId"])
}

func TestLocalListReturnsCopies(t *testing.T) {
	kv := newTestKV(t)
	local, err := NewLocal(kv, ModulePurchase)
	require.NoError(t, err)

	records, err := local.List(context.Background())
	require.NoError(t, err)
	records[0]["status"] = "tampered"

	fresh, err := local.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Received", fresh[0]["status"])
}
