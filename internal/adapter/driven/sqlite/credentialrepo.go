package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
	"github.com/ericfisherdev/passkeep/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port interface.
// Values are stored as plaintext in the passwords table.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo backed by the given DB.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Initialize applies the embedded migrations, creating the passwords table when
// it is absent. Repeated calls are no-ops.
func (r *CredentialRepo) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := RunMigrations(r.db.Writer); err != nil {
		return fmt.Errorf("initialize credential table: %w: %w", driven.ErrStorageUnavailable, err)
	}
	return nil
}

// Save inserts one row inside a transaction and returns the credential with its
// assigned ID. A failed insert or commit leaves no row behind.
func (r *CredentialRepo) Save(ctx context.Context, cred model.Credential) (model.Credential, error) {
	const query = `INSERT INTO passwords (site_name, username, password) VALUES (?, ?, ?)`

	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return model.Credential{}, fmt.Errorf("begin save %q: %w: %w", cred.Site, driven.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, query, cred.Site, cred.Username, cred.Password)
	if err != nil {
		return model.Credential{}, fmt.Errorf("insert credential %q: %w: %w", cred.Site, driven.ErrStorageUnavailable, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Credential{}, fmt.Errorf("read credential id: %w: %w", driven.ErrStorageUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Credential{}, fmt.Errorf("commit credential %q: %w: %w", cred.Site, driven.ErrStorageUnavailable, err)
	}

	cred.ID = id
	return cred, nil
}

// ListAll returns every row ordered by id. NULL columns written by other tools
// are read back as empty strings.
func (r *CredentialRepo) ListAll(ctx context.Context) ([]model.Credential, error) {
	const query = `SELECT id, COALESCE(site_name, ''), COALESCE(username, ''), COALESCE(password, '')
		FROM passwords ORDER BY id ASC`

	conn, err := r.db.Reader.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w: %w", driven.ErrStorageUnavailable, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w: %w", driven.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	creds := []model.Credential{}
	for rows.Next() {
		var cred model.Credential
		if err := rows.Scan(&cred.ID, &cred.Site, &cred.Username, &cred.Password); err != nil {
			return nil, fmt.Errorf("scan credential: %w: %w", driven.ErrStorageUnavailable, err)
		}
		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w: %w", driven.ErrStorageUnavailable, err)
	}

	return creds, nil
}
