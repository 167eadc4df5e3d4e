// Package sim provides the discrete-event engine behind the CPU
// scheduling policy simulator.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - process.go: the Process record and its five lifecycle states
//   - transition.go: candidate transition times and minimum selection
//   - simulator.go: the per-run loop driving selector and executor
//
// A run owns five pools (New, Ready, Running, Waiting, Terminated); every
// live process sits in exactly one of them at any instant. Each loop
// iteration computes the six candidate transition times from the pool
// heads, applies the earliest feasible one, and re-sorts the Ready pool
// when the active policy calls for it. The run ends when every candidate
// is Never.
//
// Input parsing and synthetic process generation live in sim/workload;
// transition records and the TSV trace writer live in sim/trace.
package sim
