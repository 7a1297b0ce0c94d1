// SPDX-License-Identifier: EPL-2.0

// Package logging builds the slog loggers used by the command line tool.
package logging
