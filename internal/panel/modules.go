// Package panel wires each admin screen together: module metadata
// (columns, form fields, filters), the record store behind it, and the
// tabular view on top. Server-backed modules talk to the API service;
// the rest live entirely in local persistent storage.
package panel

import (
	"context"

	"github.com/mis-safeli/safeli-api/internal/localstore"
	"github.com/mis-safeli/safeli-api/internal/store"
	"github.com/mis-safeli/safeli-api/internal/tableview"
)

// Module describes one admin screen. Exactly one of Entity or
// StorageKey is set: Entity points at the API service, StorageKey at a
// locally persisted list.
type Module struct {
	Title      string
	PrimaryKey string
	Entity     store.Entity
	StorageKey string
	Columns    []tableview.Column
	FormFields []tableview.Field
	Filters    []tableview.Filter
}

// NewStore builds the record store a module reads and writes.
func (m Module) NewStore(kv *localstore.Store, apiBase string) (store.RecordStore, error) {
	if m.StorageKey != "" {
		return store.NewLocal(kv, m.StorageKey)
	}
	return store.NewRemote(apiBase, m.Entity), nil
}

// NewView loads a module's records and mounts the tabular view over
// them, with write callbacks bound to the store.
func NewView(ctx context.Context, m Module, st store.RecordStore) (*tableview.View, error) {
	view := tableview.New(m.Title, m.Columns, m.FormFields, m.Filters, m.PrimaryKey, tableview.Callbacks{
		Add: func(fields store.Record) (store.Record, error) {
			return st.Add(ctx, fields)
		},
		Edit: func(id string, fields store.Record) (store.Record, error) {
			return st.Edit(ctx, id, fields)
		},
		Delete: func(id string) (store.Record, error) {
			return st.Delete(ctx, id)
		},
	})

	records, err := st.List(ctx)
	if err != nil {
		return nil, err
	}
	view.SetRecords(records)
	return view, nil
}

// Modules lists every admin screen in navigation order.
func Modules() []Module {
	return []Module{
		Sales(), Clients(), Production(), Dispatch(), HR(),
		Product(), Purchase(), RnD(), Users(),
	}
}

func Sales() Module {
	return Module{
		Title:      "Sales",
		PrimaryKey: "order_no",
		Entity:     store.EntitySales,
		Columns: []tableview.Column{
			{Key: "timestamp", Label: "Timestamp", Sortable: true},
			{Key: "order_no", Label: "Order No.", Sortable: true},
			{Key: "battery_specification", Label: "Battery Specification", Sortable: true},
			{Key: "application", Label: "Application", Sortable: true},
			{Key: "iot", Label: "IOT", Sortable: true},
			{Key: "iot_type", Label: "IOT Type", Sortable: true},
			{Key: "quantity", Label: "Quantity", Sortable: true},
			{Key: "branding_type", Label: "Branding Type", Sortable: true},
			{Key: "branding_label", Label: "Branding Label", Sortable: true},
			{Key: "charger", Label: "Charger", Sortable: true},
			{Key: "charger_qty", Label: "Charger QTY", Sortable: true},
			{Key: "soc", Label: "SOC", Sortable: true},
			{Key: "soc_qty", Label: "SOC QTY", Sortable: true},
			{Key: "expected_dispatch_date", Label: "Expected Dispatch Date", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "order_no", Label: "Order No.", Kind: "text", Required: true},
			{Name: "battery_specification", Label: "Battery Specification", Kind: "select", Options: []string{"12V 7Ah", "12V 12Ah", "12V 20Ah", "24V 10Ah"}, Required: true},
			{Name: "application", Label: "Application", Kind: "select", Options: []string{"E-Rickshaw", "Solar", "UPS", "Inverter"}, Required: true},
			{Name: "iot", Label: "IOT", Kind: "select", Options: []string{"Yes", "No"}, Required: true},
			{Name: "iot_type", Label: "IOT Type", Kind: "select", Options: []string{"1 Year", "2 Year"}},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true},
			{Name: "branding_type", Label: "Branding Type", Kind: "select", Options: []string{"Self", "Co-Branding", "Client"}, Required: true},
			{Name: "branding_label", Label: "Branding Label", Kind: "select", Options: []string{"Safeli", "Akasha", "CAPL - Powered by safeli"}},
			{Name: "charger", Label: "Charger", Kind: "select", Options: []string{"Yes", "No"}, Required: true},
			{Name: "charger_qty", Label: "Charger QTY", Kind: "number"},
			{Name: "soc", Label: "SOC", Kind: "select", Options: []string{"Yes", "No"}, Required: true},
			{Name: "soc_qty", Label: "SOC QTY", Kind: "number"},
			{Name: "expected_dispatch_date", Label: "Expected Dispatch Date", Kind: "date", Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "battery_specification", Label: "Battery Specification", Options: []string{"All", "12V 7Ah", "12V 12Ah", "12V 20Ah", "24V 10Ah"}},
			{Name: "application", Label: "Application", Options: []string{"All", "E-Rickshaw", "Solar", "UPS", "Inverter"}},
			{Name: "branding_type", Label: "Branding Type", Options: []string{"All", "Custom", "Standard", "None"}},
			{Name: "charger", Label: "Charger", Options: []string{"All", "Yes", "No"}},
		},
	}
}

func Clients() Module {
	return Module{
		Title:      "Clients",
		PrimaryKey: "dealer_id",
		Entity:     store.EntityClients,
		Columns: []tableview.Column{
			{Key: "dealer_id", Label: "Dealer ID", Sortable: true},
			{Key: "firm_name", Label: "Firm Name", Sortable: true},
			{Key: "contact_details", Label: "Contact Details", Sortable: true},
			{Key: "district", Label: "District", Sortable: true},
			{Key: "dealer_name", Label: "Dealer Name", Sortable: true},
			{Key: "address", Label: "Address", Sortable: true},
			{Key: "region", Label: "Region", Sortable: true},
			{Key: "state", Label: "State", Sortable: true},
			{Key: "city", Label: "City", Sortable: true},
			{Key: "pincode", Label: "Pincode", Sortable: true},
			{Key: "gst_numb", Label: "GST Number", Sortable: true},
			{Key: "telephone", Label: "Telephone", Sortable: true},
		},
		FormFields: []tableview.Field{
			{Name: "dealer_id", Label: "Dealer ID", Kind: "text", Required: true},
			{Name: "firm_name", Label: "Firm Name", Kind: "text", Required: true},
			{Name: "contact_details", Label: "Contact Details", Kind: "text", Required: true},
			{Name: "district", Label: "District", Kind: "text"},
			{Name: "dealer_name", Label: "Dealer Name", Kind: "text"},
			{Name: "address", Label: "Address", Kind: "text"},
			{Name: "region", Label: "Region", Kind: "text"},
			{Name: "state", Label: "State", Kind: "text"},
			{Name: "city", Label: "City", Kind: "text"},
			{Name: "pincode", Label: "Pincode", Kind: "text"},
			{Name: "gst_numb", Label: "GST Number", Kind: "text"},
			{Name: "telephone", Label: "Telephone", Kind: "text"},
		},
	}
}

func Users() Module {
	return Module{
		Title:      "User",
		PrimaryKey: "user_id",
		Entity:     store.EntityUsers,
		Columns: []tableview.Column{
			{Key: "user_id", Label: "User ID", Sortable: true},
			{Key: "user_name", Label: "Username", Sortable: true},
			{Key: "email", Label: "Email", Sortable: true},
			{Key: "contact", Label: "Contact", Sortable: true},
			{Key: "role", Label: "Role", Sortable: true},
			{Key: "created_at", Label: "Created At", Sortable: true},
		},
		FormFields: []tableview.Field{
			{Name: "user_name", Label: "Username", Kind: "text", Required: true},
			{Name: "email", Label: "Email", Kind: "email", Required: true},
			{Name: "contact", Label: "Contact", Kind: "text"},
			{Name: "role", Label: "Role", Kind: "select", Options: []string{"Admin", "Manager", "User", "Viewer"}, Required: true},
		},
	}
}

func Production() Module {
	return Module{
		Title:      "Production",
		PrimaryKey: "id",
		StorageKey: store.ModuleProduction,
		Columns: []tableview.Column{
			{Key: "productionId", Label: "Production ID", Sortable: true},
			{Key: "orderNo", Label: "Order No.", Sortable: true},
			{Key: "productName", Label: "Product Name", Sortable: true},
			{Key: "quantity", Label: "Quantity", Sortable: true},
			{Key: "productionDate", Label: "Production Date", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "productionId", Label: "Production ID", Kind: "text", Required: true},
			{Name: "orderNo", Label: "Order No.", Kind: "text", Required: true},
			{Name: "productName", Label: "Product Name", Kind: "text", Required: true},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true},
			{Name: "productionDate", Label: "Production Date", Kind: "date", Required: true},
			{Name: "status", Label: "Status", Kind: "select", Options: []string{"Pending", "In Progress", "Completed", "On Hold"}, Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "status", Label: "Status", Options: []string{"All", "Pending", "In Progress", "Completed", "On Hold"}},
		},
	}
}

func Dispatch() Module {
	return Module{
		Title:      "Dispatch",
		PrimaryKey: "id",
		StorageKey: store.ModuleDispatch,
		Columns: []tableview.Column{
			{Key: "dispatchId", Label: "Dispatch ID", Sortable: true},
			{Key: "orderNo", Label: "Order No.", Sortable: true},
			{Key: "product", Label: "Product", Sortable: true},
			{Key: "quantity", Label: "Quantity", Sortable: true},
			{Key: "dispatchDate", Label: "Dispatch Date", Sortable: true},
			{Key: "vehicleNo", Label: "Vehicle No.", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "dispatchId", Label: "Dispatch ID", Kind: "text", Required: true},
			{Name: "orderNo", Label: "Order No.", Kind: "text", Required: true},
			{Name: "product", Label: "Product", Kind: "text", Required: true},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true},
			{Name: "dispatchDate", Label: "Dispatch Date", Kind: "date", Required: true},
			{Name: "vehicleNo", Label: "Vehicle No.", Kind: "text", Required: true},
			{Name: "status", Label: "Status", Kind: "select", Options: []string{"Scheduled", "In Transit", "Delivered", "Cancelled"}, Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "status", Label: "Status", Options: []string{"All", "Scheduled", "In Transit", "Delivered", "Cancelled"}},
		},
	}
}

func HR() Module {
	return Module{
		Title:      "HR",
		PrimaryKey: "id",
		StorageKey: store.ModuleHR,
		Columns: []tableview.Column{
			{Key: "employeeId", Label: "Employee ID", Sortable: true},
			{Key: "name", Label: "Name", Sortable: true},
			{Key: "department", Label: "Department", Sortable: true},
			{Key: "position", Label: "Position", Sortable: true},
			{Key: "joinDate", Label: "Join Date", Sortable: true},
			{Key: "salary", Label: "Salary", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "employeeId", Label: "Employee ID", Kind: "text", Required: true},
			{Name: "name", Label: "Name", Kind: "text", Required: true},
			{Name: "department", Label: "Department", Kind: "select", Options: []string{"Sales", "Production", "R&D", "HR", "Finance"}, Required: true},
			{Name: "position", Label: "Position", Kind: "text", Required: true},
			{Name: "joinDate", Label: "Join Date", Kind: "date", Required: true},
			{Name: "salary", Label: "Salary", Kind: "text", Required: true},
			{Name: "status", Label: "Status", Kind: "select", Options: []string{"Active", "On Leave", "Resigned"}, Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "department", Label: "Department", Options: []string{"All", "Sales", "Production", "R&D", "HR", "Finance"}},
			{Name: "status", Label: "Status", Options: []string{"All", "Active", "On Leave", "Resigned"}},
		},
	}
}

func Product() Module {
	return Module{
		Title:      "Product",
		PrimaryKey: "id",
		StorageKey: store.ModuleProduct,
		Columns: []tableview.Column{
			{Key: "productId", Label: "Product ID", Sortable: true},
			{Key: "productName", Label: "Product Name", Sortable: true},
			{Key: "category", Label: "Category", Sortable: true},
			{Key: "specification", Label: "Specification", Sortable: true},
			{Key: "price", Label: "Price", Sortable: true},
			{Key: "stock", Label: "Stock", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "productId", Label: "Product ID", Kind: "text", Required: true},
			{Name: "productName", Label: "Product Name", Kind: "text", Required: true},
			{Name: "category", Label: "Category", Kind: "select", Options: []string{"Battery", "Charger", "IOT Device", "Solar Panel"}, Required: true},
			{Name: "specification", Label: "Specification", Kind: "text", Required: true},
			{Name: "price", Label: "Price", Kind: "text", Required: true},
			{Name: "stock", Label: "Stock", Kind: "number", Required: true},
			{Name: "status", Label: "Status", Kind: "select", Options: []string{"Available", "Out of Stock", "Discontinued"}, Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "category", Label: "Category", Options: []string{"All", "Battery", "Charger", "IOT Device", "Solar Panel"}},
			{Name: "status", Label: "Status", Options: []string{"All", "Available", "Out of Stock", "Discontinued"}},
		},
	}
}

func Purchase() Module {
	return Module{
		Title:      "Purchase",
		PrimaryKey: "id",
		StorageKey: store.ModulePurchase,
		Columns: []tableview.Column{
			{Key: "purchaseId", Label: "Purchase ID", Sortable: true},
			{Key: "vendor", Label: "Vendor", Sortable: true},
			{Key: "item", Label: "Item", Sortable: true},
			{Key: "quantity", Label: "Quantity", Sortable: true},
			{Key: "amount", Label: "Amount", Sortable: true},
			{Key: "purchaseDate", Label: "Purchase Date", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "purchaseId", Label: "Purchase ID", Kind: "text", Required: true},
			{Name: "vendor", Label: "Vendor", Kind: "text", Required: true},
			{Name: "item", Label: "Item", Kind: "text", Required: true},
			{Name: "quantity", Label: "Quantity", Kind: "number", Required: true},
			{Name: "amount", Label: "Amount", Kind: "text", Required: true},
			{Name: "purchaseDate", Label: "Purchase Date", Kind: "date", Required: true},
			{Name: "status", Label: "Status", Kind: "select", Options: []string{"Pending", "Approved", "Received", "Cancelled"}, Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "status", Label: "Status", Options: []string{"All", "Pending", "Approved", "Received", "Cancelled"}},
		},
	}
}

func RnD() Module {
	return Module{
		Title:      "R&D",
		PrimaryKey: "id",
		StorageKey: store.ModuleRnD,
		Columns: []tableview.Column{
			{Key: "projectId", Label: "Project ID", Sortable: true},
			{Key: "projectName", Label: "Project Name", Sortable: true},
			{Key: "category", Label: "Category", Sortable: true},
			{Key: "startDate", Label: "Start Date", Sortable: true},
			{Key: "status", Label: "Status", Sortable: true},
			{Key: "budget", Label: "Budget", Sortable: true},
			{Key: "remarks", Label: "Remarks", Sortable: false},
		},
		FormFields: []tableview.Field{
			{Name: "projectId", Label: "Project ID", Kind: "text", Required: true},
			{Name: "projectName", Label: "Project Name", Kind: "text", Required: true},
			{Name: "category", Label: "Category", Kind: "select", Options: []string{"Battery Tech", "IOT", "Solar", "Innovation"}, Required: true},
			{Name: "startDate", Label: "Start Date", Kind: "date", Required: true},
			{Name: "status", Label: "Status", Kind: "select", Options: []string{"Planning", "Active", "Testing", "Completed"}, Required: true},
			{Name: "budget", Label: "Budget", Kind: "text", Required: true},
			{Name: "remarks", Label: "Remarks", Kind: "textarea"},
		},
		Filters: []tableview.Filter{
			{Name: "category", Label: "Category", Options: []string{"All", "Battery Tech", "IOT", "Solar", "Innovation"}},
			{Name: "status", Label: "Status", Options: []string{"All", "Planning", "Active", "Testing", "Completed"}},
		},
	}
}
