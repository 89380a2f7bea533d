// Package sim provides the discrete-event engine for a serial production line.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - balance.go: cycle-time selection and per-station time assignment
//   - event.go: the events that drive the line (source emissions, station completions)
//   - simulator.go: the event loop, buffer wiring, and process scheduling
//
// # Architecture
//
// A run is one logical timeline. The source and every station are cooperative
// processes advanced by a single event heap ordered by (timestamp, sequence);
// same-instant events resolve in scheduling order, so a seeded run is
// bit-for-bit reproducible. Stations are chained by unbounded FIFO buffers,
// each with exactly one producer and one consumer, so no locking is needed:
// the event loop serializes all state mutation by construction.
//
// The entry points are Balance, which derives per-station nominal times from
// the line's [min,max] bounds, and Run, which validates a SimulationConfig,
// balances the line, drives the engine to completion, and returns a
// SimulationResult.
package sim
