// Package status carries the library-wide last-outcome code.
//
// What:
//
//   - A single process-wide Code cell, written by every fallible or
//     informational operation in numkit before it returns: OK on success,
//     the specific code on the described failure.
//   - Read it with Last immediately after the call you care about; any
//     later numkit call overwrites it.
//
// Why:
//
//   - Legacy compatibility: callers ported from flag-checking code can keep
//     their `call; check flag` pattern unchanged.
//   - The typed errors returned by each package are the primary API; this
//     channel is the secondary, coarse-grained one.
//
// Concurrency:
//
//   - The cell is atomic. Under concurrent use the value is last-write-wins
//     across all goroutines — there is no per-goroutine isolation. Programs
//     that rely on Last should confine numkit calls to one goroutine, or use
//     the returned errors instead.
package status
