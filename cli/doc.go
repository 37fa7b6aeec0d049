// Package cli contains the command line interface for strlog.
//
// # Usage
//
// The CLI provides logging and profiling configuration:
//
//	strlog --log-level=debug --pprof-mode=cpu
//
// # Commands
//
//   - init:  Write a default configuration file
//   - emit:  Construct a named logger and emit a single record
//   - query: Filter recorded entries with a boolean expression (default)
//   - view:  Browse recorded entries in an interactive terminal UI
//
// Record sources are given with --source and may name JSON Lines files or
// '-' for stdin. Duplicate sources are read only once.
//
// # Configuration Resolver
//
// The package includes a Kong configuration loader ([resolve]) that reads
// the flags mapping of the YAML configuration file and converts it to Kong
// flag values. The same file's console and loggers sections configure the
// logger registry used by the emit command.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warning, error,
//     critical)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-color: Colorize console level names
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o strlog .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/strlog/pprof)
//
// # Examples
//
//	# Emit a warning record to console and file
//	strlog emit app "disk nearly full" --level=warning --file=app.jsonl
//
//	# Filter recorded entries
//	strlog query 'level == "ERROR"' -s app.jsonl
//
//	# Debug logging with CPU profiling
//	strlog --log-level=debug --pprof-mode=cpu query true -s app.jsonl
package cli
