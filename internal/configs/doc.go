// Package configs manages the optional netctl2iwd user settings file,
// a small TOML document under the user's config directory. Settings only
// provide defaults; command-line flags always win.
package configs
