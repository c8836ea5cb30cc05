// Package config loads xgit configuration.
//
// It handles:
//   - User configuration in TOML (~/.config/xgit/config.toml)
//   - Repository overrides in JSON (<common-dir>/.xgit_config)
package config
