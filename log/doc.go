// Package log wraps [log/slog] with the conventions used across hcomp:
// a trace level below debug, text and JSON output, optional ANSI-colored
// "pretty" rendering for terminals, and functional options applied at
// logger creation.
//
// A zero Logger discards everything, so library code can log
// unconditionally:
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
//	logger.Debug("parsed block", slog.Int("options", len(opts)))
//
// The package also carries a process-wide default logger configured by
// the CLI layer via [Config]; the package-level functions [Trace],
// [Debug], [Info], [Warn], and [Error] forward to it.
//
// Context-unaware methods call their context-aware counterparts with
// [DefaultContextProvider], which returns [context.TODO] unless
// reassigned.
package log
