// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vu, virtual universe, provides a real-time animation graph
// runtime. Given a hierarchical skeleton, a set of keyframed clips, and a
// declarative animation graph, it produces a new skeleton pose once per
// frame in response to external parameters. Core pieces:
//    • Skeleton and Pose, joint-local and object-space transforms.
//    • A job queue over a pooled pose allocator, the engine's one
//      per-frame allocation boundary.
//    • A graph node catalogue (clip, blend, sum, speed, state machine,
//      state transition, ...) evaluated in two passes: update_duration,
//      then compute/enqueue.
//    • Graph definitions are built directly (NewGraphDef) or loaded from
//      a yaml-authored manifest (LoadGraphDef).
//
// Design note: one GraphPlayer is single-threaded cooperative; one
// Play call runs to completion with no concurrency of its own. Multiple
// players for independent skeletons may run on separate goroutines as
// long as they do not share a ParamStore.
package vu
