package dbrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mis-safeli/safeli-api/internal/models"
)

// ============================== Users Repository ==============================
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `user_id, user_name, contact, email, role,
	       TO_CHAR(created_at, 'YYYY-MM-DD HH24:MI:SS') as created_at`

var userUpdateAllowList = []string{"user_name", "email", "contact", "role"}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.UserID, &u.UserName, &u.Contact, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// isDuplicateEmail reports whether err is the unique-constraint
// violation on users.email.
func isDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *UserRepo) collectUsers(rows pgx.Rows) ([]*models.User, error) {
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// 1. GetUsers returns every user ordered by user id.
func (s *UserRepo) GetUsers(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		ORDER BY user_id ASC;`, userColumns)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	return s.collectUsers(rows)
}

// 2. GetUserByID
func (s *UserRepo) GetUserByID(ctx context.Context, userID int) (*models.User, error) {
	return s.getUserBy(ctx, "user_id", userID)
}

// GetUserByEmail
func (s *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUserBy(ctx, "email", email)
}

func (s *UserRepo) getUserBy(ctx context.Context, field string, value any) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s = $1;`, userColumns, field)

	user, err := scanUser(s.db.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user by %s: %w", field, err)
	}
	return user, nil
}

// 3. CreateUser inserts a new user. user_id and created_at are assigned
// by the database. A duplicate email surfaces as ErrDuplicateEmail.
func (s *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO users (user_name, email, contact, role)
		VALUES ($1,$2,$3,$4)
		RETURNING %s;`, userColumns)

	stored, err := scanUser(s.db.QueryRow(ctx, query, user.UserName, user.Email, user.Contact, user.Role))
	if err != nil {
		if isDuplicateEmail(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	*user = *stored
	return nil
}

// 4. UpdateUser applies the allow-listed fields to the user addressed
// by userID.
func (s *UserRepo) UpdateUser(ctx context.Context, userID int, fields map[string]any) (*models.User, error) {
	setClause, args := buildUpdateSet(fields, userUpdateAllowList)
	if len(args) == 0 {
		return nil, ErrNoUpdatableFields
	}
	args = append(args, userID)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE user_id = $%d
		RETURNING %s;`, setClause, len(args), userColumns)

	user, err := scanUser(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isDuplicateEmail(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// 5. DeleteUser removes a user and returns the deleted record.
func (s *UserRepo) DeleteUser(ctx context.Context, userID int) (*models.User, error) {
	query := fmt.Sprintf(`
		DELETE FROM users
		WHERE user_id = $1
		RETURNING %s;`, userColumns)

	user, err := scanUser(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	return user, nil
}

// 6. SearchUsers matches the query as a case-insensitive substring
// across the textual user fields.
func (s *UserRepo) SearchUsers(ctx context.Context, search string) ([]*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE
			user_name ILIKE $1 OR
			email ILIKE $1 OR
			contact ILIKE $1 OR
			role ILIKE $1
		ORDER BY user_id ASC;`, userColumns)

	rows, err := s.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	return s.collectUsers(rows)
}
