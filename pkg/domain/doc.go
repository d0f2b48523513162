// Package domain contains the core value types of the Strobe engine:
// step records, step logs, playback states, snapshots per algorithm
// family, and the lifecycle events exposed to hosts.
//
// Everything here is plain data. Algorithms produce these values, the
// playback controller replays them, and adapters (terminal, HTTP,
// metrics) consume them. No type in this package performs I/O.
package domain
