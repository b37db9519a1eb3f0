package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ericfisherdev/passkeep/internal/domain/model"
	"github.com/ericfisherdev/passkeep/internal/domain/port/driven"
)

// ErrMissingRequiredField indicates a save request left site, username, or
// password empty. Nothing is written when it is returned.
var ErrMissingRequiredField = errors.New("missing required field")

// SaveCredentialRequest carries the three user-entered fields of a save action.
// Presence is the only check; values are stored exactly as given.
type SaveCredentialRequest struct {
	Site     string `json:"site" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// requestValidator checks SaveCredentialRequest tags and reports fields by
// their json names.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate reports ErrMissingRequiredField, naming the empty fields in
// declaration order, when site, username, or password is empty. Callers may
// run it before acquiring a store.
func (r SaveCredentialRequest) Validate() error {
	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate save request: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	return fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(fields, ", "))
}

// CredentialService validates save requests and delegates persistence to the
// CredentialStore port.
type CredentialService struct {
	store  driven.CredentialStore
	logger *slog.Logger
}

// NewCredentialService creates a CredentialService backed by store.
func NewCredentialService(store driven.CredentialStore, logger *slog.Logger) *CredentialService {
	return &CredentialService{
		store:  store,
		logger: logger,
	}
}

// Save writes one credential after checking that every field is non-empty.
// Returns ErrMissingRequiredField (naming the empty fields) without touching the
// store, or the store's error wrapped with driven.ErrStorageUnavailable.
func (s *CredentialService) Save(ctx context.Context, req SaveCredentialRequest) (model.Credential, error) {
	if err := req.Validate(); err != nil {
		return model.Credential{}, err
	}

	saved, err := s.store.Save(ctx, model.Credential{
		Site:     req.Site,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		s.logger.Error("failed to save credential", "site", req.Site, "error", err)
		return model.Credential{}, fmt.Errorf("save credential: %w", err)
	}

	s.logger.Info("credential saved", "id", saved.ID, "site", saved.Site)
	return saved, nil
}

// List returns all saved credentials in insertion order. The result is never nil.
func (s *CredentialService) List(ctx context.Context) ([]model.Credential, error) {
	creds, err := s.store.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list credentials", "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	if creds == nil {
		creds = []model.Credential{}
	}
	return creds, nil
}
