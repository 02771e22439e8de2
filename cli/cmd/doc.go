// Package cmd implements the hcomp subcommands: export renders a
// command's extracted schema as a completion script or JSON, inspect
// exposes the intermediate extraction stages, and browse opens the
// schema in an interactive list.
//
// Every subcommand shares the same source flags for acquiring help
// text: a live command (man page or --help output), a subcommand, a
// file, stdin, or a previously exported JSON schema.
package cmd
