package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mis-safeli/safeli-api/internal/localstore"
)

// Storage keys for the modules that have no backend. The key names are
// fixed; changing one orphans previously persisted data.
const (
	ModuleProduction = "ksev_production"
	ModuleDispatch   = "ksev_dispatch"
	ModuleHR         = "ksev_hr"
	ModuleProduct    = "ksev_product"
	ModulePurchase   = "ksev_purchase"
	ModuleRnD        = "ksev_rnd"
)

// seedRecords holds the single sample record each module starts with on
// first access.
var seedRecords = map[string]Record{
	ModuleProduction: {
		"id": "1", "productionId": "PROD-001", "orderNo": "ORD-001",
		"productName": "12V 7Ah Battery", "quantity": 100,
		"productionDate": "2025-10-15", "status": "Completed",
		"remarks": "Quality checked",
	},
	ModuleDispatch: {
		"id": "1", "dispatchId": "DISP-001", "orderNo": "ORD-001",
		"product": "12V 7Ah Battery", "quantity": 100,
		"dispatchDate": "2025-11-01", "vehicleNo": "MH-12-AB-1234",
		"status": "In Transit", "remarks": "Handle with care",
	},
	ModuleHR: {
		"id": "1", "employeeId": "EMP-001", "name": "John Doe",
		"department": "Sales", "position": "Sales Manager",
		"joinDate": "2024-01-15", "salary": "$45,000",
		"status": "Active", "remarks": "Top performer",
	},
	ModuleProduct: {
		"id": "1", "productId": "PROD-001", "productName": "Lithium Battery 12V 7Ah",
		"category": "Battery", "specification": "12V 7Ah, 2000 cycles",
		"price": "$45", "stock": 500, "status": "Available",
		"remarks": "Best seller",
	},
	ModulePurchase: {
		"id": "1", "purchaseId": "PUR-001", "vendor": "ABC Suppliers",
		"item": "Battery Cells", "quantity": 500, "amount": "$25,000",
		"purchaseDate": "2025-10-10", "status": "Received",
		"remarks": "Quality verified",
	},
	ModuleRnD: {
		"id": "1", "projectId": "RND-001", "projectName": "Advanced Battery Cell",
		"category": "Battery Tech", "startDate": "2025-09-01",
		"status": "Active", "budget": "$50,000", "remarks": "High priority",
	},
}

// Local keeps a module's records in the local persistent store. The
// record list is fully owned by this side; nothing ever reaches a
// server.
type Local struct {
	mu      sync.Mutex
	kv      *localstore.Store
	module  string
	records []Record
}

// NewLocal opens the record list for module, seeding it with the
// module's sample record on first access.
func NewLocal(kv *localstore.Store, module string) (*Local, error) {
	l := &Local{kv: kv, module: module}

	found, err := kv.Get(module, &l.records)
	if err != nil {
		return nil, err
	}
	if !found {
		if seed, ok := seedRecords[module]; ok {
			l.records = []Record{cloneRecord(seed)}
		} else {
			l.records = []Record{}
		}
		if err := kv.Set(module, l.records); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func cloneRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (l *Local) persist() error {
	return l.kv.Set(l.module, l.records)
}

// List returns a copy of the module's records.
func (l *Local) List(ctx context.Context) ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[i] = cloneRecord(r)
	}
	return out, nil
}

// Add appends a new record, assigning an opaque id when the caller did
// not supply one.
func (l *Local) Add(ctx context.Context, fields Record) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := cloneRecord(fields)
	if id, ok := record["id"].(string); !ok || id == "" {
		record["id"] = uuid.NewString()
	}
	l.records = append(l.records, record)

	if err := l.persist(); err != nil {
		return nil, err
	}
	return cloneRecord(record), nil
}

// Edit merges the supplied fields into the record addressed by id.
func (l *Local) Edit(ctx context.Context, id string, fields Record) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	for k, v := range fields {
		if k == "id" {
			continue
		}
		l.records[idx][k] = v
	}

	if err := l.persist(); err != nil {
		return nil, err
	}
	return cloneRecord(l.records[idx]), nil
}

// Delete removes the record addressed by id and returns it.
func (l *Local) Delete(ctx context.Context, id string) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	removed := l.records[idx]
	l.records = append(l.records[:idx], l.records[idx+1:]...)

	if err := l.persist(); err != nil {
		return nil, err
	}
	return removed, nil
}

func (l *Local) indexOf(id string) int {
	for i, r := range l.records {
		if fmt.Sprint(r["id"]) == id {
			return i
		}
	}
	return -1
}
