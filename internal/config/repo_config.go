package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RepoConfigFile is the name of the per-repository config inside the common git dir
const RepoConfigFile = ".xgit_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Format *string `json:"format,omitempty"`
	Abbrev *int    `json:"abbrev,omitempty"`
}

// GetRepoConfig reads the repository configuration from the common git dir.
// Shared by every worktree of the repository.
func GetRepoConfig(commonDir string) (*RepoConfig, error) {
	configPath := filepath.Join(commonDir, RepoConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	if config.Format != nil {
		f := strings.ToLower(*config.Format)
		config.Format = &f
		if err := validateEnum(f, "format", ValidFormats); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	}

	if config.Abbrev != nil {
		if err := validateAbbrev(*config.Abbrev); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	}

	return &config, nil
}

// MergeRepo applies repository overrides to a user config,
// returning a new Config without mutating the global one
func MergeRepo(global Config, repo *RepoConfig) Config {
	if repo == nil {
		return global
	}

	merged := global
	if repo.Format != nil && *repo.Format != "" {
		merged.Format = *repo.Format
	}
	if repo.Abbrev != nil {
		merged.Abbrev = *repo.Abbrev
	}
	return merged
}
