package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// ErrInvalidGeometry is returned when a shape cannot be rendered
var ErrInvalidGeometry = errors.New("invalid geometry")

// Kind identifies which variant a Hittable holds
type Kind uint8

const (
	KindList Kind = iota // Zero value, so a zero Hittable is an empty world
	KindSphere
)

// Hittable is a closed set of scene objects stored by value: a sphere or an ordered list of
// hittables. A world is a single Hittable that owns the whole tree.
type Hittable struct {
	Kind   Kind
	Sphere Sphere     // Set when Kind is KindSphere
	List   []Hittable // Set when Kind is KindList
}

// Hit returns the nearest intersection with the ray inside the open interval (tMin, tMax)
func (h Hittable) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	switch h.Kind {
	case KindSphere:
		return h.Sphere.Hit(ray, tMin, tMax)
	case KindList:
		return hitList(h.List, ray, tMin, tMax)
	default:
		return material.HitRecord{}, false
	}
}

// Validate checks every primitive and material in the tree
func (h Hittable) Validate() error {
	switch h.Kind {
	case KindSphere:
		return h.Sphere.Validate()
	case KindList:
		for i, child := range h.List {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidGeometry, h.Kind)
	}
}

// PrimitiveCount returns the total number of spheres in the tree
func (h Hittable) PrimitiveCount() int {
	switch h.Kind {
	case KindSphere:
		return 1
	case KindList:
		count := 0
		for _, child := range h.List {
			count += child.PrimitiveCount()
		}
		return count
	default:
		return 0
	}
}
