// Package config loads cursorrules configuration.
//
// Layers are applied in order, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. .cursorrules.toml in the project directory, when present
//  3. CURSORRULES_* environment variables (CURSORRULES_TARGET_DIR, ...)
//  4. command-line overrides
package config
