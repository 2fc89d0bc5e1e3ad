package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/dbx"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const accountColumns = `id, username, email, phone, password_hash, providers, ip_address, url,
 is_verified, avatar, firstname, lastname, metadata, session_token, last_login, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByAnyIdentifier(ctx context.Context, values ...string) (*models.Account, error) {
	values = nonEmpty(values)
	if len(values) == 0 {
		return nil, common.ErrorNotFound
	}

	placeholders := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = v
	}
	in := strings.Join(placeholders, ", ")

	query := `SELECT ` + accountColumns + ` FROM accounts
		 WHERE username IN (` + in + `) OR email IN (` + in + `) OR phone IN (` + in + `)
		 ORDER BY CASE WHEN username IN (` + in + `) THEN 0 WHEN email IN (` + in + `) THEN 1 ELSE 2 END
		 LIMIT 1`

	return r.queryOne(ctx, query, args...)
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		 WHERE username = $1`

	return r.queryOne(ctx, query, username)
}

func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, common.ErrorNotFound
	}
	query := `SELECT ` + accountColumns + ` FROM accounts
		 WHERE session_token = $1
		 LIMIT 1`

	return r.queryOne(ctx, query, token)
}

func (r *PostgresRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	providers, err := json.Marshal(account.Providers)
	if err != nil {
		return nil, fmt.Errorf("encode providers: %w", err)
	}
	metadata, err := encodeMetadata(account.Metadata)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO accounts (username, email, phone, password_hash, providers, ip_address, url,
		 is_verified, avatar, firstname, lastname, metadata, session_token, last_login, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id`

	out := account.Clone()
	err = r.db.QueryRowContext(ctx, query,
		account.Username, nullString(account.Email), nullString(account.Phone), nullString(account.PasswordHash),
		providers, account.IPAddress, account.URL, account.IsVerified,
		nullString(account.Avatar), nullString(account.Firstname), nullString(account.Lastname),
		metadata, nullString(account.SessionToken), nullTime(account.LastLogin),
		account.CreatedAt, account.UpdatedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return out, nil
}

func (r *PostgresRepository) MergeUpdate(ctx context.Context, token string, fields map[string]any) (*models.Account, error) {
	if token == "" || len(fields) == 0 {
		return nil, common.ErrorNotFound
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for _, k := range keys {
		v, err := columnValue(k, fields[k])
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", k, len(args)))
	}
	args = append(args, token)

	query := `UPDATE accounts SET ` + strings.Join(sets, ", ") + `
		 WHERE session_token = $` + fmt.Sprint(len(args)) + `
		 RETURNING ` + accountColumns

	return r.queryOne(ctx, query, args...)
}

func (r *PostgresRepository) SetSession(ctx context.Context, id string, update models.SessionUpdate) (*models.Account, error) {
	query :=
		`UPDATE accounts SET session_token = $1, ip_address = COALESCE(NULLIF($2, ''), ip_address),
		 last_login = $3, updated_at = $4
		 WHERE id = $5
		 RETURNING ` + accountColumns

	return r.queryOne(ctx, query, update.Token, update.SourceIP, update.LastLogin, update.UpdatedAt, id)
}

func (r *PostgresRepository) ClearSession(ctx context.Context, token string, at time.Time) error {
	if token == "" {
		return common.ErrorNotFound
	}
	query :=
		`UPDATE accounts SET session_token = NULL, updated_at = $1
		 WHERE session_token = $2`

	res, err := r.db.ExecContext(ctx, query, at, token)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var (
		a                                       models.Account
		email, phone, hash, avatar, first, last sql.NullString
		token                                   sql.NullString
		providers, metadata                     []byte
		lastLogin                               sql.NullTime
	)

	err := row.Scan(&a.ID, &a.Username, &email, &phone, &hash, &providers, &a.IPAddress, &a.URL,
		&a.IsVerified, &avatar, &first, &last, &metadata, &token, &lastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.Email, a.Phone, a.PasswordHash = email.String, phone.String, hash.String
	a.Avatar, a.Firstname, a.Lastname = avatar.String, first.String, last.String
	a.SessionToken = token.String

	if len(providers) > 0 {
		if err := json.Unmarshal(providers, &a.Providers); err != nil {
			return nil, fmt.Errorf("decode providers: %w", err)
		}
	}
	if len(metadata) > 0 && string(metadata) != "null" {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLogin = &t
	}

	return &a, nil
}

func columnValue(key string, v any) (any, error) {
	switch key {
	case models.FieldMetadata:
		m, _ := v.(map[string]any)
		return encodeMetadata(m)
	case models.FieldEmail, models.FieldPhone, models.FieldAvatar, models.FieldFirstname, models.FieldLastname, models.FieldSessionToken:
		s, _ := v.(string)
		return nullString(s), nil
	case models.FieldUsername, models.FieldIPAddress, models.FieldURL, models.FieldIsVerified, models.FieldUpdatedAt:
		return v, nil
	}
	return nil, fmt.Errorf("field %q has no column", key)
}

func encodeMetadata(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return b, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", common.ErrorConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("db error: %w", err)
}
