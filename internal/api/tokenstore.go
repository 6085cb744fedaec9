package api

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists the bearer token between runs. The token is the only
// durable client-side artifact; its presence alone decides whether a session
// restore is attempted at startup.
type TokenStore interface {
	Token() string
	Set(token string) error
	Clear() error
}

const tokenFileName = "token.json"

type tokenFile struct {
	AccessToken string `json:"accessToken"`
}

// FileTokenStore keeps the token in a fixed-name JSON file under the leadcrm
// config directory, loaded once at construction.
type FileTokenStore struct {
	path  string
	mu    sync.RWMutex
	token string
}

// NewFileTokenStore loads (or initializes empty) the token file at
// dir/token.json.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	s := &FileTokenStore{path: filepath.Join(dir, tokenFileName)}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		// A corrupt token file is treated as logged out.
		return s, nil
	}
	s.token = tf.AccessToken
	return s, nil
}

// Path returns the token file location, for watchers.
func (s *FileTokenStore) Path() string {
	return s.path
}

func (s *FileTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *FileTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(tokenFile{AccessToken: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore is a non-durable store for tests and one-shot commands.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
