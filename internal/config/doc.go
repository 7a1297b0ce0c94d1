// SPDX-License-Identifier: EPL-2.0

// Package config loads the aup3wav TOML configuration.
//
// Load starts from Default, decodes the file over it, normalizes the values
// (home expansion, lower-cased enums, dotted extensions) and validates the
// result. The file is looked up at the given path, then at
// ~/.config/aup3wav/config.toml, then at ./aup3wav.toml. A missing file is not
// an error.
package config
