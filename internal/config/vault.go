package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/vault/api"

	"searchfind/internal/errors"
)

// Fields read from the KVv2 secrets named in VaultSecrets
const (
	VaultAPIKeysField   = "keys"
	VaultGeminiKeyField = "api_key"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	// PollInterval re-reads the API key secret while serving; zero disables rotation
	PollInterval time.Duration `mapstructure:"pollInterval"`

	Secrets VaultSecrets `mapstructure:"secrets"`
}

// VaultSecrets names the KVv2 paths SearchFind reads. Empty paths are skipped.
type VaultSecrets struct {
	// APIKeys holds the comma-separated HTTP API keys in its "keys" field
	APIKeys string `mapstructure:"apiKeys"`
	// GeminiKey holds the interview question provider key in its "api_key" field
	GeminiKey string `mapstructure:"geminiKey"`
}

// VaultSecret is one KVv2 read: the secret's fields and its metadata version
type VaultSecret struct {
	Data    map[string]any
	Version int64
}

// VaultClient reads KVv2 secrets for the CLI and the API key watcher
type VaultClient struct {
	client *api.Client
	logger *errors.Logger
}

// NewVaultClient connects to Vault and checks that it is reachable and
// unsealed. It returns nil, nil when Vault is disabled.
func NewVaultClient(cfg VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if logger == nil {
		logger = errors.NopLogger()
	}

	apiCfg := api.DefaultConfig()
	if cfg.Address != "" {
		apiCfg.Address = cfg.Address
	}
	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig, "failed to create vault client", err)
	}
	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	token, err := vaultToken(cfg)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	health, err := client.Sys().Health()
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to connect to vault at %s", apiCfg.Address), err)
	}
	if health.Sealed {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("vault at %s is sealed", apiCfg.Address), nil)
	}

	logger.Info("Connected to Vault",
		"address", apiCfg.Address,
		"namespace", cfg.Namespace,
		"version", health.Version)
	return &VaultClient{client: client, logger: logger}, nil
}

// vaultToken prefers the configured token over the token file
func vaultToken(cfg VaultConfig) (string, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" && cfg.TokenFile != "" {
		raw, err := os.ReadFile(cfg.TokenFile)
		if err != nil {
			return "", errors.NewConfigError(errors.ErrCodeInvalidConfig, "failed to read vault token file", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return "", errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"vault token is required when vault is enabled (set vault.token or vault.tokenFile)", nil)
	}
	return token, nil
}

// GetSecretV2 reads a secret from a KVv2 mount. path includes the "data/"
// segment, e.g. secret/data/searchfind/server.
func (vc *VaultClient) GetSecretV2(path string) (*VaultSecret, error) {
	if vc == nil {
		return nil, fmt.Errorf("vault client not initialized")
	}

	raw, err := vc.client.Logical().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret from %s: %w", path, err)
	}
	if raw == nil || raw.Data == nil {
		return nil, fmt.Errorf("secret not found at path: %s", path)
	}
	return decodeKV2(raw.Data, path)
}

// decodeKV2 splits a KVv2 read response into its fields and version
func decodeKV2(body map[string]any, path string) (*VaultSecret, error) {
	data, ok := body["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format (missing 'data' field)", path)
	}
	metadata, ok := body["metadata"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format (missing 'metadata' field)", path)
	}
	version, err := secretVersion(metadata["version"])
	if err != nil {
		return nil, fmt.Errorf("secret at %s: %w", path, err)
	}
	return &VaultSecret{Data: data, Version: version}, nil
}

// secretVersion accepts the shapes the Vault client decodes versions into
func secretVersion(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, fmt.Errorf("metadata is missing 'version' field")
	case json.Number:
		return v.Int64()
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse version %q: %w", v, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected type for version: %T", v)
	}
}

// GetStringSecret returns one string field of a KVv2 secret
func (vc *VaultClient) GetStringSecret(path, field string) (string, error) {
	secret, err := vc.GetSecretV2(path)
	if err != nil {
		return "", err
	}
	value, ok := secret.Data[field]
	if !ok {
		return "", fmt.Errorf("field '%s' not found in secret %s", field, path)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field '%s' in secret %s is not a string", field, path)
	}

	vc.logger.Debug("Read secret field from Vault",
		"path", path,
		"field", field,
		"version", secret.Version,
		"value", maskSecret(s))
	return s, nil
}

// GetStringSliceSecret reads a comma-separated field as a trimmed list
func (vc *VaultClient) GetStringSliceSecret(path, field string) ([]string, error) {
	value, err := vc.GetStringSecret(path, field)
	if err != nil {
		return nil, err
	}
	return splitList(value), nil
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

// secretReader is the part of VaultClient the secret loaders use
type secretReader interface {
	GetStringSecret(path, field string) (string, error)
	GetStringSliceSecret(path, field string) ([]string, error)
}

// ApplyVaultSecrets overlays the HTTP API keys and the Gemini key from Vault
// onto cfg. It does nothing when Vault is disabled.
func ApplyVaultSecrets(cfg *Config, logger *errors.Logger) error {
	if !cfg.Vault.Enabled {
		return nil
	}
	if logger == nil {
		logger = errors.NopLogger()
	}

	client, err := NewVaultClient(cfg.Vault, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize vault client: %w", err)
	}
	if err := loadAPIKeysFromVault(client, &cfg.Server, cfg.Vault.Secrets.APIKeys, logger); err != nil {
		return err
	}
	return loadGeminiKeyFromVault(client, &cfg.AI, cfg.Vault.Secrets.GeminiKey, logger)
}

// loadAPIKeysFromVault replaces the configured API keys. An empty secret
// leaves them as they are.
func loadAPIKeysFromVault(vault secretReader, server *ServerConfig, path string, logger *errors.Logger) error {
	if path == "" {
		return nil
	}
	keys, err := vault.GetStringSliceSecret(path, VaultAPIKeysField)
	if err != nil {
		return fmt.Errorf("failed to load API keys from vault: %w", err)
	}
	if len(keys) == 0 {
		logger.Warn("No API keys in Vault secret, keeping configured keys", "path", path)
		return nil
	}
	server.APIKeys = keys
	logger.Info("API keys loaded from Vault", "count", len(keys))
	return nil
}

func loadGeminiKeyFromVault(vault secretReader, ai *AIConfig, path string, logger *errors.Logger) error {
	if path == "" {
		return nil
	}
	key, err := vault.GetStringSecret(path, VaultGeminiKeyField)
	if err != nil {
		return fmt.Errorf("failed to load Gemini API key from vault: %w", err)
	}
	if key = strings.TrimSpace(key); key == "" {
		logger.Warn("Empty Gemini API key in Vault secret", "path", path)
		return nil
	}
	ai.APIKey = key
	logger.Info("Gemini API key loaded from Vault")
	return nil
}
