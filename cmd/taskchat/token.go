package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenStore keeps the session token between invocations.
type tokenStore struct {
	path string
}

func defaultTokenStore() (tokenStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return tokenStore{}, fmt.Errorf("config dir: %w", err)
	}
	return tokenStore{path: filepath.Join(dir, "taskchat", "token")}, nil
}

// Load returns "" when no token is stored.
func (s tokenStore) Load() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s tokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s tokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
