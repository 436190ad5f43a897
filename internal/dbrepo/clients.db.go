package dbrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mis-safeli/safeli-api/internal/models"
)

// ============================== Clients Repository ==============================
type ClientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepo(db *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `dealer_id, firm_name, contact_details, district, dealer_name,
	       address, region, state, city, pincode, gst_numb, telephone`

// dealer_id addresses the record and is deliberately absent here.
var clientUpdateAllowList = []string{
	"firm_name", "contact_details", "district", "dealer_name", "address",
	"region", "state", "city", "pincode", "gst_numb", "telephone",
}

func scanClient(row pgx.Row) (*models.Client, error) {
	c := &models.Client{}
	err := row.Scan(
		&c.DealerID, &c.FirmName, &c.ContactDetails, &c.District,
		&c.DealerName, &c.Address, &c.Region, &c.State, &c.City,
		&c.Pincode, &c.GSTNumb, &c.Telephone,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientRepo) collectClients(rows pgx.Rows) ([]*models.Client, error) {
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning client row: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// 1. GetClients returns every client ordered by dealer id.
func (s *ClientRepo) GetClients(ctx context.Context) ([]*models.Client, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		ORDER BY dealer_id ASC;`, clientColumns)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching clients: %w", err)
	}
	return s.collectClients(rows)
}

// 2. GetClientByDealerID
func (s *ClientRepo) GetClientByDealerID(ctx context.Context, dealerID int) (*models.Client, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		WHERE dealer_id = $1;`, clientColumns)

	client, err := scanClient(s.db.QueryRow(ctx, query, dealerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching client: %w", err)
	}
	return client, nil
}

// 3. CreateClient inserts a new client. The dealer id is supplied by
// the caller.
func (s *ClientRepo) CreateClient(ctx context.Context, client *models.Client) error {
	query := fmt.Sprintf(`
		INSERT INTO clients (
			dealer_id, firm_name, contact_details, district, dealer_name,
			address, region, state, city, pincode, gst_numb, telephone
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING %s;`, clientColumns)

	args := []any{
		client.DealerID, client.FirmName, client.ContactDetails,
		client.District, client.DealerName, client.Address, client.Region,
		client.State, client.City, client.Pincode, client.GSTNumb,
		client.Telephone,
	}

	stored, err := scanClient(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return fmt.Errorf("error creating client: %w", err)
	}
	*client = *stored
	return nil
}

// 4. UpdateClient applies the allow-listed fields to the client
// addressed by dealerID.
func (s *ClientRepo) UpdateClient(ctx context.Context, dealerID int, fields map[string]any) (*models.Client, error) {
	setClause, args := buildUpdateSet(fields, clientUpdateAllowList)
	if len(args) == 0 {
		return nil, ErrNoUpdatableFields
	}
	args = append(args, dealerID)

	query := fmt.Sprintf(`
		UPDATE clients
		SET %s
		WHERE dealer_id = $%d
		RETURNING %s;`, setClause, len(args), clientColumns)

	client, err := scanClient(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating client: %w", err)
	}
	return client, nil
}

// 5. DeleteClient removes a client and returns the deleted record.
func (s *ClientRepo) DeleteClient(ctx context.Context, dealerID int) (*models.Client, error) {
	query := fmt.Sprintf(`
		DELETE FROM clients
		WHERE dealer_id = $1
		RETURNING %s;`, clientColumns)

	client, err := scanClient(s.db.QueryRow(ctx, query, dealerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error deleting client: %w", err)
	}
	return client, nil
}

// 6. SearchClients matches the query as a case-insensitive substring
// across the textual client fields (ILIKE, OR-combined).
func (s *ClientRepo) SearchClients(ctx context.Context, search string) ([]*models.Client, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		WHERE
			firm_name ILIKE $1 OR
			dealer_name ILIKE $1 OR
			contact_details ILIKE $1 OR
			district ILIKE $1 OR
			city ILIKE $1 OR
			gst_numb ILIKE $1
		ORDER BY dealer_id ASC;`, clientColumns)

	rows, err := s.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("error searching clients: %w", err)
	}
	return s.collectClients(rows)
}
