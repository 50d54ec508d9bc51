package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewList creates a composite of the given objects
func NewList(objects ...Hittable) Hittable {
	return Hittable{Kind: KindList, List: objects}
}

// Add appends objects while the world is being built. A sphere is first turned into a
// list holding that sphere, so nothing added is ever dropped.
func (h *Hittable) Add(objects ...Hittable) {
	if h.Kind != KindList {
		*h = NewList(*h)
	}
	h.List = append(h.List, objects...)
}

// hitList scans every object, shrinking the exclusive upper bound after each hit so the
// result is the nearest intersection. Objects hit at exactly the same t keep the earlier one.
func hitList(objects []Hittable, ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for i := range objects {
		if hit, isHit := objects[i].Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
