// Package cli contains the command line interface for hcomp.
//
// The hcomp command extracts a structured schema from a program's help
// text or man page and renders it as a shell completion script, a JSON
// schema, or a readable dump:
//
//	# Bash completion for tar, from its man page
//	hcomp export --command tar --format bash
//
//	# Inspect what the parser sees in a help-text file
//	hcomp inspect pairs --file rg-help.txt
//
//	# Browse the extracted schema in a terminal UI
//	hcomp browse --command git
//
// # Configuration
//
// Flags can be set persistently in a YAML file at
// ~/.config/hcomp/config.yaml (keys are flag names, hyphens or
// underscores both accepted). Command-line flags override file values.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output encoding (text, json)
//   - --log-time: timestamp layout (RFC3339, stamp, ms, none, ...)
//   - --log-caller: include call sites
//   - --log-pretty: colorized text output
//
// # Profiling Options
//
// Available only when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profile mode (cpu, heap, allocs, mutex, ...)
//   - --pprof-dir: output directory (default ~/.cache/hcomp/pprof)
package cli
