// SPDX-License-Identifier: EPL-2.0

// Package batch converts a directory tree of project files.
//
// The root directory holds one folder per recording session; every file in
// those folders whose extension matches the source extension is converted to
// a WAV written beside it. Files whose output already exists are left alone,
// so an interrupted run can simply be restarted.
//
// Before the first file is converted, its container structure is logged once
// for the operator. The inspection never affects the outcome of the run.
package batch
