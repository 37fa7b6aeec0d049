// Package profile provides optional runtime profiling for the strlog
// application.
//
// The package integrates [github.com/pkg/profile] with conditional
// compilation: profiling must be enabled at build time using the pprof
// build tag, and without it every operation is a no-op with zero runtime
// overhead.
//
// The supported modes when built with the pprof tag are allocs, block,
// clock, cpu, goroutine, heap, mem, mutex, thread, and trace. Use [Modes]
// to retrieve the list programmatically.
//
// A profiler is configured with the [Profiler] type and started with
// [Profiler.Start]:
//
//	ctrl := profile.Profiler{
//	    Mode:  "cpu",
//	    Path:  "/tmp/profiles",
//	    Quiet: true,
//	}.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the output directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof) and can be analyzed
// with go tool pprof:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// When built with the pprof tag, this package also imports
// [net/http/pprof], which registers HTTP handlers at /debug/pprof/ for
// applications that run an HTTP server.
package profile
