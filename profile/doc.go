// Package profile provides optional runtime profiling for hcomp,
// built on [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag; the default
// build reduces every operation here to a no-op. With the tag set, the
// hcomp command exposes --pprof-mode and --pprof-dir flags, and profile
// files land in the mode-named file under the chosen directory
// (cpu.pprof, heap.pprof, ...), defaulting to the pprof subdirectory of
// the hcomp cache directory.
//
//	ctrl := profileConfig.Start()
//	defer ctrl.Stop()
//
// Use [Modes] for the list of supported modes; analyze results with
// "go tool pprof". Building with the tag also imports [net/http/pprof]
// for processes that choose to serve debug endpoints.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
