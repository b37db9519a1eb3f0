package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

// ErrStorageUnavailable is wrapped around any failure of the backing store to
// open, read, or write. Callers treat it as fatal for the current operation.
var ErrStorageUnavailable = errors.New("credential storage unavailable")

// CredentialStore defines the driven port for plaintext credential persistence.
// There is no update or delete; saved rows are immutable.
type CredentialStore interface {
	// Initialize ensures the backing table exists. Safe to call repeatedly;
	// existing rows are never touched.
	Initialize(ctx context.Context) error

	// Save appends one row and returns it with the store-assigned ID.
	Save(ctx context.Context, cred model.Credential) (model.Credential, error)

	// ListAll returns every saved row ordered by ID ascending. Returns an empty
	// slice when nothing has been saved.
	ListAll(ctx context.Context) ([]model.Credential, error)
}
