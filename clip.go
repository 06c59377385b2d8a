// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// Clip is an opaque keyframed animation resource. The clip compression
// and authoring pipeline lives outside this package; a Clip is consumed
// here purely through Duration and CreateSampler. Clips are immutable
// and safe to share across players.
type Clip interface {
	// Duration returns the clip's length in seconds.
	Duration() float64

	// CreateSampler returns a new Sampler bound to this clip. Samplers
	// are not shared: each graph-node instance that samples this clip
	// owns its own sampler so cursor-based acceleration (see Sampler)
	// does not interfere across instances.
	CreateSampler() Sampler
}

// Sampler evaluates a Clip at arbitrary points in time. Samplers are
// not required to be monotonic: the player may replay any time each
// tick. A sampler may cache a cursor internally to accelerate the
// common case of forward playback, but must still produce correct
// output for an out-of-order Sample call.
type Sampler interface {
	// Sample writes joint transforms for time_s into out. If the clip
	// carries additive data, Sample also sets out's kind to additive.
	Sample(timeS float64, out *Pose)
}
