package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles replaces inline prompts with the content of any
// configured prompt files
func (c *Config) loadPromptsFromFiles() error {
	p := &c.AI.Prompts

	if p.SystemFile != "" {
		content, err := loadPromptFromFile(p.SystemFile, "system")
		if err != nil {
			return err
		}
		p.System = content
	}

	if p.UserFile != "" {
		content, err := loadPromptFromFile(p.UserFile, "user")
		if err != nil {
			return err
		}
		p.User = content
	}

	return nil
}

// loadPromptFromFile reads a prompt file and rejects empty content
func loadPromptFromFile(filePath, promptType string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s prompt file '%s': %w", promptType, filePath, err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s prompt file not found: %s", promptType, absPath)
		}
		return "", fmt.Errorf("failed to read %s prompt file '%s': %w", promptType, absPath, err)
	}

	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return "", fmt.Errorf("%s prompt file '%s' is empty", promptType, absPath)
	}

	return trimmed, nil
}
