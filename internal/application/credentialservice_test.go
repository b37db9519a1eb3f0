package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
	"github.com/ericfisherdev/passkeep/internal/domain/port/driven"
)

// mockCredentialStore is an in-memory CredentialStore for service tests.
type mockCredentialStore struct {
	creds   []model.Credential
	saveErr error
	listErr error
	saves   int
}

func (m *mockCredentialStore) Initialize(_ context.Context) error { return nil }

func (m *mockCredentialStore) Save(_ context.Context, cred model.Credential) (model.Credential, error) {
	m.saves++
	if m.saveErr != nil {
		return model.Credential{}, m.saveErr
	}
	cred.ID = int64(len(m.creds) + 1)
	m.creds = append(m.creds, cred)
	return cred, nil
}

func (m *mockCredentialStore) ListAll(_ context.Context) ([]model.Credential, error) {
	return m.creds, m.listErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCredentialService_SaveAndList(t *testing.T) {
	store := &mockCredentialStore{}
	svc := NewCredentialService(store, discardLogger())
	ctx := context.Background()

	saved, err := svc.Save(ctx, SaveCredentialRequest{Site: "github.com", Username: "alice", Password: "p@ss1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	creds, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "github.com", creds[0].Site)
	assert.Equal(t, "alice", creds[0].Username)
	assert.Equal(t, "p@ss1", creds[0].Password)
}

func TestCredentialService_SavePreservesValuesVerbatim(t *testing.T) {
	store := &mockCredentialStore{}
	svc := NewCredentialService(store, discardLogger())

	saved, err := svc.Save(context.Background(), SaveCredentialRequest{Site: " example.org ", Username: "Bob", Password: "  spaced\t"})
	require.NoError(t, err)
	assert.Equal(t, " example.org ", saved.Site)
	assert.Equal(t, "  spaced\t", saved.Password)
}

func TestCredentialService_SaveMissingFields(t *testing.T) {
	tests := []struct {
		name       string
		req        SaveCredentialRequest
		wantFields string
	}{
		{
			name:       "missing site",
			req:        SaveCredentialRequest{Username: "alice", Password: "x"},
			wantFields: "site",
		},
		{
			name:       "missing username",
			req:        SaveCredentialRequest{Site: "github.com", Password: "x"},
			wantFields: "username",
		},
		{
			name:       "missing password",
			req:        SaveCredentialRequest{Site: "github.com", Username: "alice"},
			wantFields: "password",
		},
		{
			name:       "all missing",
			req:        SaveCredentialRequest{},
			wantFields: "site, username, password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockCredentialStore{}
			svc := NewCredentialService(store, discardLogger())

			_, err := svc.Save(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrMissingRequiredField)
			assert.Contains(t, err.Error(), tt.wantFields)
			assert.Equal(t, 0, store.saves, "store must not be called")
			assert.Empty(t, store.creds)
		})
	}
}

func TestCredentialService_SaveStorageUnavailable(t *testing.T) {
	store := &mockCredentialStore{saveErr: fmt.Errorf("insert: %w", driven.ErrStorageUnavailable)}
	svc := NewCredentialService(store, discardLogger())

	_, err := svc.Save(context.Background(), SaveCredentialRequest{Site: "a", Username: "b", Password: "c"})
	assert.ErrorIs(t, err, driven.ErrStorageUnavailable)
}

func TestCredentialService_ListEmptyIsNotNil(t *testing.T) {
	svc := NewCredentialService(&mockCredentialStore{}, discardLogger())

	creds, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, creds)
	assert.Empty(t, creds)
}

func TestCredentialService_ListError(t *testing.T) {
	store := &mockCredentialStore{listErr: errors.New("disk gone")}
	svc := NewCredentialService(store, discardLogger())

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

func TestSaveCredentialRequest_Validate(t *testing.T) {
	require.NoError(t, SaveCredentialRequest{Site: "a", Username: "b", Password: " "}.Validate())

	err := SaveCredentialRequest{Username: "b"}.Validate()
	require.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "site, password")
}
