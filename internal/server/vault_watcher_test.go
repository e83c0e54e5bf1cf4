package server

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"searchfind/internal/config"
)

// MockVaultClient is a mock implementation for testing
type MockVaultClient struct {
	secrets map[string]*config.VaultSecret
}

func (m *MockVaultClient) GetSecretV2(path string) (*config.VaultSecret, error) {
	if secret, exists := m.secrets[path]; exists {
		return secret, nil
	}
	return nil, fmt.Errorf("secret %s not found", path)
}

func (m *MockVaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	secret, err := m.GetSecretV2(path)
	if err != nil {
		return nil, err
	}
	value, ok := secret.Data[key].(string)
	if !ok {
		return nil, fmt.Errorf("key %s not found", key)
	}
	return strings.Split(value, ","), nil
}

func newTestVaultWatcher(client VaultClientInterface, callback VaultReloadCallback) *VaultWatcher {
	return NewVaultWatcher(client, "secret/data/searchfind", time.Minute, callback, nil)
}

func TestVaultWatcherCheckForUpdates(t *testing.T) {
	mockClient := &MockVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/searchfind": {Data: map[string]any{}, Version: 2},
		},
	}
	vw := newTestVaultWatcher(mockClient, func([]string) {})

	// Initial check should detect change from version 0 to 2
	changed, err := vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates failed: %v", err)
	}
	if !changed {
		t.Error("Expected change to be detected")
	}

	// Subsequent check should not detect change since version is still 2
	changed, err = vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates failed: %v", err)
	}
	if changed {
		t.Error("Expected no change to be detected")
	}
}

func TestVaultWatcherPollRotatesKeys(t *testing.T) {
	secret := &config.VaultSecret{
		Data:    map[string]any{"keys": " key-one , key-two ,"},
		Version: 1,
	}
	mockClient := &MockVaultClient{
		secrets: map[string]*config.VaultSecret{"secret/data/searchfind": secret},
	}

	var got []string
	vw := newTestVaultWatcher(mockClient, func(keys []string) { got = keys })
	vw.lastVersion = 1

	vw.poll()
	if got != nil {
		t.Fatalf("callback should not run for an unchanged version, got %v", got)
	}

	secret.Version = 2
	vw.poll()
	if len(got) != 2 || got[0] != "key-one" || got[1] != "key-two" {
		t.Errorf("rotated keys = %v, want [key-one key-two]", got)
	}
	if status := vw.Status(); status["last_version"] != int64(2) {
		t.Errorf("last_version = %v, want 2", status["last_version"])
	}
}

func TestVaultWatcherRefusesEmptyKeys(t *testing.T) {
	mockClient := &MockVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/searchfind": {Data: map[string]any{"keys": " , "}, Version: 3},
		},
	}
	called := false
	vw := newTestVaultWatcher(mockClient, func([]string) { called = true })

	vw.poll()
	if called {
		t.Error("callback should not run when the secret has no keys")
	}
	if _, ok := vw.Status()["last_error"]; !ok {
		t.Error("status should report the last error")
	}
}

func TestVaultWatcherMissingSecret(t *testing.T) {
	vw := newTestVaultWatcher(&MockVaultClient{}, func([]string) {})
	if _, err := vw.checkForUpdates(); err == nil {
		t.Error("expected error for a missing secret")
	}
}

func TestRotateAPIKeys(t *testing.T) {
	s := NewServer(testConfig(t), ServerConfig{APIKeys: []string{"old-key"}}, nil)
	s.rotateAPIKeys([]string{"new-key-1", "new-key-2"})

	if s.APIKeyCount() != 2 {
		t.Errorf("APIKeyCount() = %d, want 2", s.APIKeyCount())
	}
	if s.validAPIKey("old-key") {
		t.Error("old key should no longer be accepted")
	}
	if !s.validAPIKey("new-key-2") {
		t.Error("new key should be accepted")
	}
}
