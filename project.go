// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vu

// project.go implements the resource container the core calls during
// player construction: project.get::<Skeleton>(id), project.get::<Clip>(id).
// Lookup misses abort player construction (§6, §7). The container
// itself is agnostic to how resources were produced (cooked asset
// pipeline, FBX import, hand-built for tests); those live outside this
// package entirely.

import (
	"fmt"
	"hash/crc64"
	"math"
	"math/rand"
)

// asset uniquely identifies a resource cached in a Project. Unique
// based on a combination of asset type and name.
type asset interface {
	aid() aid
	label() string
}

// aid is a unique asset identifier: a hash generated from an asset's
// type and name.
type aid uint64

func (a aid) kind() uint32 { return uint32(a & math.MaxUint8) }

// assetType distinguishes the kinds of resource a Project caches.
type assetType uint32

const (
	skl        assetType = iota // skeleton
	clp                         // clip
	grf                         // graph definition
	assetTypes                  // end of asset types - must be last.
)

// assetID produces a unique identifier for the given asset type and
// name. Kept as many stringHash bits as possible to minimise collisions.
func assetID(t assetType, name string) aid { return aid(t) + aid(stringHash(name))<<8 }

func stringHash(s string) uint64 { return crc64.Checksum([]byte(s), crcTable) }

var crcTable = crc64.MakeTable(rand.Uint64())

// depot is the in-memory cache backing a Project: one map per asset
// type, keyed by name.
type depot map[assetType]map[string]asset

func newDepot() depot {
	d := make(depot, assetTypes)
	for t := assetType(0); t < assetTypes; t++ {
		d[t] = make(map[string]asset)
	}
	return d
}

func (d depot) fetch(t assetType, name string) (asset, bool) {
	a, ok := d[t][name]
	return a, ok
}

func (d depot) cache(t assetType, a asset) {
	if a == nil || a.label() == "" {
		return
	}
	d[t][a.label()] = a
}

// Project is the resource container the core reads skeletons, clips,
// and graph definitions from. A Project has no behaviour of its own
// beyond name-based lookup and caching: cooking, loading, and FBX
// import are external collaborators that populate it before a
// GraphPlayer is built.
type Project struct {
	d depot
}

// NewProject creates an empty resource container.
func NewProject() *Project {
	return &Project{d: newDepot()}
}

// AddSkeleton registers a skeleton under its own name for later lookup.
func (p *Project) AddSkeleton(s *Skeleton) { p.d.cache(skl, s) }

// AddClip registers a clip under the given resource id.
func (p *Project) AddClip(id string, c Clip) { p.d.cache(clp, namedClip{id: id, Clip: c}) }

// AddGraphDef registers a graph definition under its own name.
func (p *Project) AddGraphDef(g *GraphDef) { p.d.cache(grf, g) }

// GetSkeleton looks up a skeleton by name. A miss is a construction-time
// error per §6/§7: the caller should abort player construction.
func (p *Project) GetSkeleton(id string) (*Skeleton, error) {
	a, ok := p.d.fetch(skl, id)
	if !ok {
		return nil, fmt.Errorf("project: skeleton %q not found", id)
	}
	return a.(*Skeleton), nil
}

// GetClip looks up a clip by resource id. A miss is a construction-time
// error per §6/§7: the caller should abort player construction.
func (p *Project) GetClip(id string) (Clip, error) {
	a, ok := p.d.fetch(clp, id)
	if !ok {
		return nil, fmt.Errorf("project: clip %q not found", id)
	}
	return a.(namedClip).Clip, nil
}

// GetGraphDef looks up a graph definition by name.
func (p *Project) GetGraphDef(id string) (*GraphDef, error) {
	a, ok := p.d.fetch(grf, id)
	if !ok {
		return nil, fmt.Errorf("project: graph %q not found", id)
	}
	return a.(*GraphDef), nil
}

// namedClip adapts a bare Clip (which may not implement asset itself,
// since clip authoring lives outside this package) to the depot's
// asset interface using the id it was registered under.
type namedClip struct {
	id string
	Clip
}

func (n namedClip) aid() aid      { return assetID(clp, n.id) }
func (n namedClip) label() string { return n.id }
