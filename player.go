// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "math/rand"

// GraphPlayer is bound one-to-one to a graph definition, a skeleton,
// and a parameter store. It owns the mutable runtime-node arena built
// from the graph, the pose pool, and the job queue; none of those are
// shared across players. Per frame the host mutates the parameter
// store and calls Play; Play runs to completion on the calling
// goroutine and never suspends (§5).
type GraphPlayer struct {
	graph    *GraphDef
	skeleton *Skeleton
	params   *ParamStore

	pool     *PosePool
	queue    *JobQueue
	machines *machineStack

	root runtimeNode

	playCounter uint32
}

// NewGraphPlayer builds a player for the named graph, bound to the
// skeleton the graph's clips are authored against. rng seeds random-
// node selection for deterministic test replay; pass nil for
// production use. Lookup misses and graph validation failures abort
// construction and are returned as *ConstructionError.
func NewGraphPlayer(project *Project, graphID, skeletonID string, params *ParamStore, rng *rand.Rand) (*GraphPlayer, error) {
	graph, err := project.GetGraphDef(graphID)
	if err != nil {
		return nil, constructionErr("NewGraphPlayer", err)
	}
	skeleton, err := project.GetSkeleton(skeletonID)
	if err != nil {
		return nil, constructionErr("NewGraphPlayer", err)
	}

	b := newGraphBuilder(graph, project, rng)
	root, err := b.build(graph.root)
	if err != nil {
		return nil, constructionErr("NewGraphPlayer", err)
	}

	pool := newPosePool(skeleton, 4)
	gp := &GraphPlayer{
		graph:    graph,
		skeleton: skeleton,
		params:   params,
		pool:     pool,
		queue:    newJobQueue(pool),
		machines: &machineStack{},
		root:     root,
	}
	return gp, nil
}

// Skeleton returns the skeleton this player is bound to.
func (gp *GraphPlayer) Skeleton() *Skeleton { return gp.skeleton }

// Play advances the graph by dtS seconds and writes the resulting pose
// into out. out must be bound to gp.Skeleton(). Play runs the two-pass
// traversal described in §4.3: an update_duration pass that resolves
// branch selection and durations, then a compute pass that advances
// phases and enqueues jobs, followed by executing the job queue.
func (gp *GraphPlayer) Play(dtS float64, out *Pose) {
	gp.playCounter++
	gp.queue.reset()

	ctx := evalContext{
		queue:       gp.queue,
		params:      gp.params,
		playCounter: gp.playCounter,
		dtS:         dtS,
		machines:    gp.machines,
	}

	gp.root.updateDuration(&ctx)
	computeCtx := ctx
	gp.root.compute(&computeCtx)

	gp.queue.execute(out)
}

// Close releases the player's pose pool. After Close no pose borrowed
// from this player's pool may be used.
func (gp *GraphPlayer) Close() { gp.pool.close() }
