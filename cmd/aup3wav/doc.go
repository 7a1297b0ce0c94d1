// SPDX-License-Identifier: EPL-2.0

// Command aup3wav converts .aup3 project files to mono 16-bit 44100 Hz WAV.
//
// Usage:
//
//	aup3wav convert [root]        convert every project one folder below root
//	aup3wav inspect <file.aup3>   show the container structure of one project
//	aup3wav probe <file.wav>      show the header of a WAV file
//	aup3wav config init           write a sample configuration file
//	aup3wav config show           print the effective configuration
//
// Settings are read from ~/.config/aup3wav/config.toml (or --config) and can be
// overridden with flags.
package main
