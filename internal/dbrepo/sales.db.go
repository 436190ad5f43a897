package dbrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mis-safeli/safeli-api/internal/models"
)

// ============================== Sales Repository ==============================
type SaleRepo struct {
	db *pgxpool.Pool
}

func NewSaleRepo(db *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{db: db}
}

const saleColumns = `timestamp, order_no, battery_specification, application, iot, iot_type,
	       quantity, branding_type, branding_label, charger, charger_qty,
	       soc, soc_qty, expected_dispatch_date, remarks`

// saleUpdateAllowList fixes which columns a partial update may touch.
var saleUpdateAllowList = []string{
	"order_no", "battery_specification", "application", "iot", "iot_type",
	"quantity", "branding_type", "branding_label", "charger", "charger_qty",
	"soc", "soc_qty", "expected_dispatch_date", "remarks",
}

func scanSale(row pgx.Row) (*models.Sale, error) {
	s := &models.Sale{}
	err := row.Scan(
		&s.Timestamp, &s.OrderNo, &s.BatterySpecification, &s.Application,
		&s.IOT, &s.IOTType, &s.Quantity, &s.BrandingType, &s.BrandingLabel,
		&s.Charger, &s.ChargerQty, &s.SOC, &s.SOCQty,
		&s.ExpectedDispatchDate, &s.Remarks,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// 1. GetSales returns every sale order, newest first.
func (s *SaleRepo) GetSales(ctx context.Context) ([]*models.Sale, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sales
		ORDER BY timestamp DESC;`, saleColumns)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching sales: %w", err)
	}
	defer rows.Close()

	sales := []*models.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}

// 2. CreateSale inserts a new sale order. The timestamp is assigned by
// the database, never taken from the caller.
func (s *SaleRepo) CreateSale(ctx context.Context, sale *models.Sale) error {
	query := fmt.Sprintf(`
		INSERT INTO sales (
			timestamp, order_no, battery_specification, application, iot, iot_type,
			quantity, branding_type, branding_label, charger, charger_qty,
			soc, soc_qty, expected_dispatch_date, remarks
		)
		VALUES (NOW(), $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING %s;`, saleColumns)

	args := []any{
		sale.OrderNo, sale.BatterySpecification, sale.Application,
		sale.IOT, sale.IOTType, sale.Quantity, sale.BrandingType,
		sale.BrandingLabel, sale.Charger, sale.ChargerQty,
		sale.SOC, sale.SOCQty, sale.ExpectedDispatchDate, sale.Remarks,
	}

	stored, err := scanSale(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}
	*sale = *stored
	return nil
}

// 3. UpdateSale applies the allow-listed fields to the sale addressed
// by orderNo and returns the full post-update record.
func (s *SaleRepo) UpdateSale(ctx context.Context, orderNo string, fields map[string]any) (*models.Sale, error) {
	setClause, args := buildUpdateSet(fields, saleUpdateAllowList)
	if len(args) == 0 {
		return nil, ErrNoUpdatableFields
	}
	args = append(args, orderNo)

	query := fmt.Sprintf(`
		UPDATE sales
		SET %s
		WHERE order_no = $%d
		RETURNING %s;`, setClause, len(args), saleColumns)

	sale, err := scanSale(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating sale: %w", err)
	}
	return sale, nil
}

// 4. DeleteSale removes a sale order and returns the deleted record as
// confirmation.
func (s *SaleRepo) DeleteSale(ctx context.Context, orderNo string) (*models.Sale, error) {
	query := fmt.Sprintf(`
		DELETE FROM sales
		WHERE order_no = $1
		RETURNING %s;`, saleColumns)

	sale, err := scanSale(s.db.QueryRow(ctx, query, orderNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error deleting sale: %w", err)
	}
	return sale, nil
}
