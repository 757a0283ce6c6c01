// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for ozone's user
// configuration. The configuration is a YAML document named ozone.yaml in the
// user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/ozone.yaml or $HOME/.config/ozone.yaml
//   - macOS: $HOME/Library/Application Support/ozone.yaml
//   - Windows: %AppData%/ozone.yaml
//
// OZONE_CFG_FILE overrides the location. Template builders read their
// defaults from here; a missing file simply means every default applies.
package config
