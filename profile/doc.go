// Package profile provides optional runtime profiling for the odatauri
// application.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime profiling
// capabilities with conditional compilation support. Profiling is optional and
// must be enabled at build time using the "pprof" build tag.
//
// When built with profiling disabled (default), all operations are no-ops with
// zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Using File-Based Profiling
//
// File-based profiling writes profiling data to disk for later analysis. The
// profiler is configured using [New] and started with [Profiler.Start]:
//
//	ctrl := profile.New(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	).Start()
//	defer ctrl.Stop()
//
//	// Application code runs here with profiling enabled
//
// Profile files are written to the specified directory with names matching the
// profiling mode (e.g., cpu.pprof, mem.pprof).
//
// # Command-Line Usage
//
// The odatauri command supports profiling through command-line flags when built
// with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	./odatauri --pprof-mode cpu
//
//	# Enable heap profiling with custom output directory
//	./odatauri --pprof-mode heap --pprof-dir ./profiles
//
//	# List available profiling modes
//	./odatauri -h
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/odatauri/pprof   (Linux/Unix)
//	~/Library/Caches/odatauri/pprof  (macOS)
//	%LocalAppData%\odatauri\pprof    (Windows)
//
// # Analyzing Profile Data
//
// Use the go tool pprof command to analyze profile data, either
// interactively or through its web UI:
//
//	go tool pprof ./odatauri /tmp/profiles/cpu.pprof
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// A typical session profiles the parser over a file of URLs:
//
//	odatauri --pprof-mode cpu parse - < urls.txt
//
// When built with the pprof tag, this package also imports [net/http/pprof],
// which registers HTTP handlers at /debug/pprof/ on the default mux.
//
// # Performance Overhead
//
//   - CPU profiling: ~5% overhead
//   - Heap profiling: minimal overhead (sampled)
//   - Block profiling: can add significant overhead if rate is too high
//   - Mutex profiling: can add significant overhead if rate is too high
//   - Trace profiling: high overhead, use for short durations only
//
// Adjust sampling rates using [runtime.SetBlockProfileRate],
// [runtime.SetMutexProfileFraction], and [runtime.MemProfileRate].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
