package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/database"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
	"github.com/tradevault/Trade-Journal-Backend/internal/version"
)

// apiKeySetting is the setting-table key the API key is stored under.
const apiKeySetting = "api_key"

// SystemService handles system-related operations: health, version, and the
// write-protecting API key. The key is fernet-encrypted at rest when a fernet
// key is configured; without one it is stored in plaintext (local development).
type SystemService struct {
	db          *sql.DB
	settingRepo *repository.SettingRepository
	fernetKey   *fernet.Key
}

// NewSystemService creates a new SystemService. fernetKey may be empty.
func NewSystemService(db *sql.DB, settingRepo *repository.SettingRepository, fernetKey string) (*SystemService, error) {
	s := &SystemService{
		db:          db,
		settingRepo: settingRepo,
	}

	if fernetKey != "" {
		keys, err := fernet.DecodeKeys(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		s.fernetKey = keys[0]
	}

	return s, nil
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the build version string.
func (s *SystemService) CheckVersion() string {
	return version.Version
}

// SetAPIKey stores the API key, encrypting it when a fernet key is configured.
func (s *SystemService) SetAPIKey(ctx context.Context, key string) error {
	stored := key
	if s.fernetKey != nil {
		token, err := fernet.EncryptAndSign([]byte(key), s.fernetKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt API key: %w", err)
		}
		stored = string(token)
	}

	return s.settingRepo.Set(ctx, apiKeySetting, stored)
}

// APIKey returns the stored API key in plaintext, or "" when none is
// configured. A token that no longer verifies against the fernet key is
// treated as unset rather than an error, so rotating the fernet key locks the
// API open until a new API key is stored.
func (s *SystemService) APIKey() (string, error) {
	stored, err := s.settingRepo.Get(apiKeySetting)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if s.fernetKey == nil {
		return stored, nil
	}

	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, []*fernet.Key{s.fernetKey})
	if plain == nil {
		return "", nil
	}
	return string(plain), nil
}
