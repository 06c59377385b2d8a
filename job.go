// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

import "fmt"

// jobKind identifies which leaf operation a job performs.
type jobKind uint8

const (
	jobSampleClip jobKind = iota
	jobBlend
	jobAdd
	jobSave
	jobRestore
)

// job is one entry in a JobQueue. Dependencies between jobs are
// expressed as indices into the same queue, never as direct pointers,
// so the queue can validate references before executing them.
type job struct {
	kind jobKind

	sampler Sampler // jobSampleClip
	timeS   float64 // jobSampleClip

	firstIdx  int     // jobBlend, jobAdd: index of the first input job.
	secondIdx int     // jobBlend, jobAdd: index of the second input job.
	weight    float64 // jobBlend

	sourceIdx int // jobSave: index of the job whose pose is copied.
	slotIdx   int // jobSave, jobRestore: saved-pose slot index.

	pose *Pose // output pose, nil once released back to the pool.
}

// JobQueue is the linear, ordered list of pose-producing jobs built by
// one GraphPlayer evaluation and executed once per frame. It owns the
// pose pool used to satisfy borrows, and a set of saved-pose slots that
// persist across frames (unlike the job list itself, which is cleared
// every frame).
type JobQueue struct {
	pool  *PosePool
	jobs  []job
	slots []*Pose // persistent saved-pose slots; nil entries are unsaved.
}

// newJobQueue creates a job queue backed by the given pose pool.
func newJobQueue(pool *PosePool) *JobQueue {
	return &JobQueue{pool: pool}
}

// reset clears the job list for the next frame. Saved-pose slots are
// untouched: they persist across frames for frozen-fade transitions.
func (q *JobQueue) reset() {
	q.jobs = q.jobs[:0]
}

// acquireSavedPoseSlot returns a fresh slot index. Slots grow monotonically
// and are never reused across different logical owners within a player's
// lifetime, matching the "allocated once, wired by index" arena pattern
// used for runtime nodes.
func (q *JobQueue) acquireSavedPoseSlot() int {
	q.slots = append(q.slots, nil)
	return len(q.slots) - 1
}

// enqueueSampleClip schedules a clip sample at timeS and returns the
// new job's index.
func (q *JobQueue) enqueueSampleClip(sampler Sampler, timeS float64) int {
	q.jobs = append(q.jobs, job{kind: jobSampleClip, sampler: sampler, timeS: timeS})
	return len(q.jobs) - 1
}

// enqueueBlend schedules a blend of the poses produced by firstIdx and
// secondIdx, weighted toward secondIdx by weight, and returns the new
// job's index.
func (q *JobQueue) enqueueBlend(firstIdx, secondIdx int, weight float64) int {
	q.jobs = append(q.jobs, job{kind: jobBlend, firstIdx: firstIdx, secondIdx: secondIdx, weight: weight})
	return len(q.jobs) - 1
}

// enqueueAdd schedules an additive combine of firstIdx (base) and
// secondIdx (additive delta) and returns the new job's index.
func (q *JobQueue) enqueueAdd(firstIdx, secondIdx int) int {
	q.jobs = append(q.jobs, job{kind: jobAdd, firstIdx: firstIdx, secondIdx: secondIdx})
	return len(q.jobs) - 1
}

// enqueueSave schedules a copy of sourceIdx's pose into saved-pose slot
// slotIdx. Produces no new pose of its own.
func (q *JobQueue) enqueueSave(sourceIdx, slotIdx int) int {
	q.jobs = append(q.jobs, job{kind: jobSave, sourceIdx: sourceIdx, slotIdx: slotIdx})
	return len(q.jobs) - 1
}

// enqueueRestore schedules a fresh pose borrowed and filled from saved
// slot slotIdx, and returns the new job's index.
func (q *JobQueue) enqueueRestore(slotIdx int) int {
	q.jobs = append(q.jobs, job{kind: jobRestore, slotIdx: slotIdx})
	return len(q.jobs) - 1
}

// deref returns job i's pose, panicking (a fatal contract violation,
// per the evaluation-time error taxonomy) if the index is out of range
// or the job has already been released back to the pool.
func (q *JobQueue) deref(i int) *Pose {
	if i < 0 || i >= len(q.jobs) {
		panic(fmt.Sprintf("jobqueue: job index %d out of range [0,%d)", i, len(q.jobs)))
	}
	p := q.jobs[i].pose
	if p == nil {
		panic(fmt.Sprintf("jobqueue: job %d's pose has already been released", i))
	}
	return p
}

// execute runs every job in order, writing the pose produced by the
// last job that produced one into out, then releases all per-job poses
// back to the pool. The job list itself is left for reset to clear.
func (q *JobQueue) execute(out *Pose) {
	lastProducer := -1
	for i := range q.jobs {
		j := &q.jobs[i]
		switch j.kind {
		case jobSampleClip:
			p := q.pool.borrow()
			j.sampler.Sample(j.timeS, p)
			j.pose = p
			lastProducer = i

		case jobBlend:
			first := q.deref(j.firstIdx)
			second := q.deref(j.secondIdx)
			if err := blend(first, first, second, j.weight); err != nil {
				panic("jobqueue: blend: " + err.Error())
			}
			q.release(j.secondIdx)
			q.jobs[j.firstIdx].pose = nil // ownership transfers to this job; avoid a double release.
			j.pose = first
			lastProducer = i

		case jobAdd:
			first := q.deref(j.firstIdx)
			second := q.deref(j.secondIdx)
			if err := add(first, first, second); err != nil {
				panic("jobqueue: add: " + err.Error())
			}
			q.release(j.secondIdx)
			q.jobs[j.firstIdx].pose = nil // ownership transfers to this job; avoid a double release.
			j.pose = first
			lastProducer = i

		case jobSave:
			src := q.deref(j.sourceIdx)
			if j.slotIdx < 0 || j.slotIdx >= len(q.slots) {
				panic(fmt.Sprintf("jobqueue: save: slot %d not acquired", j.slotIdx))
			}
			slot := q.slots[j.slotIdx]
			if slot == nil {
				slot = newPose(src.skeleton, src.kind)
				q.slots[j.slotIdx] = slot
			}
			slot.copyFrom(src)

		case jobRestore:
			if j.slotIdx < 0 || j.slotIdx >= len(q.slots) || q.slots[j.slotIdx] == nil {
				panic(fmt.Sprintf("jobqueue: restore: slot %d was never saved", j.slotIdx))
			}
			p := q.pool.borrow()
			p.copyFrom(q.slots[j.slotIdx])
			j.pose = p
			lastProducer = i
		}
	}

	if lastProducer >= 0 {
		out.copyFrom(q.jobs[lastProducer].pose)
	}
	for i := range q.jobs {
		if q.jobs[i].kind != jobSave {
			q.release(i)
		}
	}
}

// release marks job i's pose as released back to the pool. Safe to
// call on a job whose pose has already been released (e.g. the result
// job, released only after copying into the caller's out pose).
func (q *JobQueue) release(i int) {
	j := &q.jobs[i]
	if j.pose != nil {
		q.pool.release(j.pose)
		j.pose = nil
	}
}
