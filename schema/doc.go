// Package schema defines the command tree extracted from help text.
//
// A [Command] is a node in a recursive tree describing a program or one of
// its subcommands: its usage line, its options, and its children. Each node
// exclusively owns its children; there is no sharing and no back-references,
// so the tree is finite and acyclic by construction.
//
// An [Opt] groups one or more flag spellings ([OptName]) with an optional
// argument placeholder and a description. Flag spellings are classified into
// one of five [NameType] values using the precedence rules of
// [ParseOptName], and kept sorted by (raw, type) for determinism.
//
// [Fix] normalizes an assembled tree: it deduplicates options, drops options
// without a usable name or description, and recurses into every subcommand.
// After Fix, values are treated as immutable by downstream generators.
//
// The JSON interchange form produced by [Command.MarshalJSON] is
// intentionally flatter than the in-memory tree: option names serialize as
// raw strings, and subcommands serialize as name/description pairs only,
// without their own options or children.
package schema
