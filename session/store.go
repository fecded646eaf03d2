package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/exebone56/ecom-pulse2/models"
	"github.com/exebone56/ecom-pulse2/utils"
)

// TokenStore is the durable home of the access/refresh pair. Implementations
// must read from the backing storage on every Get so that a login performed
// elsewhere against the same store becomes visible without restarts.
type TokenStore interface {
	Get() (models.TokenPair, error)
	Set(models.TokenPair) error
	Clear() error
}

// FileTokenStore keeps the pair as a small JSON file under fixed keys,
// the CLI equivalent of the dashboard's localStorage slots.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Get() (models.TokenPair, error) {
	var pair models.TokenPair
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pair, utils.ErrorNoStoredToken
		}
		return pair, err
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return models.TokenPair{}, err
	}
	if pair.Access == "" {
		return models.TokenPair{}, utils.ErrorNoStoredToken
	}
	return pair, nil
}

func (s *FileTokenStore) Set(pair models.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(pair)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// AccessToken satisfies gateway.TokenSource: the file is consulted on every
// request, matching the read-at-call-time rule.
func (s *FileTokenStore) AccessToken() (string, bool) {
	pair, err := s.Get()
	if err != nil {
		return "", false
	}
	return pair.Access, true
}
