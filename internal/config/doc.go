// Package config resolves tada's settings.
//
// Sources are applied in priority order:
//  1. Defaults (classic theme, auto color, info logs, title order)
//  2. Config file: -config, $TADA_CONFIG, or the first of tada.toml,
//     .tada.toml, tada.yaml, tada.yml in the working directory
//  3. Environment variables (TADA_THEME, TADA_COLOR, TADA_LOG_LEVEL,
//     TADA_LOG_FORMAT, TADA_ORDER, TADA_SEED)
//  4. CLI flags
//
// TOML files are decoded with BurntSushi/toml and YAML files with yaml.v3.
// Load validates the merged result before returning it.
package config
