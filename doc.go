/*
Package strobe is a step-recording and playback engine for algorithm
visualization.

It implements a record/replay architecture: algorithms execute eagerly
and silently, recording every comparison and mutation into an immutable
step log, and a playback controller then walks that log under
host-driven time. Separating the two means stepping backward, changing
speed and replaying a run are cursor moves over recorded frames, never
re-execution.

# Concept

A run is declared by a RunSpec: the algorithm family (sorting,
searching, pathfinding, tree, graph), the algorithm, and the input
shape. The engine generates the input, executes the algorithm and
records a self-contained snapshot per step. The controller owns no
goroutine and no timer; the host calls Tick once per frame and the
controller decides whether enough time has passed to advance. This
hexagonal layout lets the same core drive a terminal UI, an HTTP
session API, or a test harness.

# Key Features

  - Deterministic replay: the same spec and seed always produce the
    same step log, counters included.
  - Self-contained snapshots: any frame renders without its
    predecessors, so backward stepping is a cursor move.
  - Audio cues: steps map to pitched cue events for sonification hosts.
  - Performance history: each completed run emits one record, stored in
    memory or Redis.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/strobe"
		"github.com/aretw0/strobe/pkg/domain"
	)

	func main() {
		controller, err := strobe.New(strobe.RunSpec{
			Family:    domain.FamilySorting,
			Algorithm: "quick",
			Size:      30,
			Seed:      42,
		})
		if err != nil {
			log.Fatal(err)
		}

		// Replay to completion, one description per line.
		runner := strobe.NewRunner(os.Stdout)
		if err := runner.Run(context.Background(), controller); err != nil {
			log.Fatal(err)
		}
	}
*/
package strobe
