// Package scene owns the ordered element collection for one flyer and its
// mutation operations. Every operation returns a new Scene value and never
// mutates the receiver, which is what makes history snapshotting correct
// without manual deep-copying at the call sites.
package scene

import (
	"sort"

	"github.com/paceup/paceup/backend-go/internal/element"
)

// Page dimensions in page-local pixel units (A4 at 72dpi).
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

// zBase is the zIndex assigned to the bottom element when renumbering.
const zBase = 10

// Scene is the full ordered collection of elements for one flyer.
// Insertion order is preserved; rendering order is by zIndex.
type Scene struct {
	elements []element.Element
}

// New builds a Scene from a slice of elements. The slice is cloned so the
// caller keeps no mutable reference into the scene.
func New(els []element.Element) Scene {
	out := make([]element.Element, len(els))
	for i, el := range els {
		out[i] = el.Clone()
	}
	return Scene{elements: out}
}

// Elements returns a cloned slice of the scene's elements in insertion
// order. Safe to hand to callbacks and serializers.
func (s Scene) Elements() []element.Element {
	out := make([]element.Element, len(s.elements))
	for i, el := range s.elements {
		out[i] = el.Clone()
	}
	return out
}

// Len returns the number of elements.
func (s Scene) Len() int {
	return len(s.elements)
}

// Find returns the element with the given id.
func (s Scene) Find(id string) (element.Element, bool) {
	for _, el := range s.elements {
		if el.ID == id {
			return el.Clone(), true
		}
	}
	return element.Element{}, false
}

// Update replaces the element with el.ID by el. No-op if the id is absent.
func (s Scene) Update(id string, el element.Element) Scene {
	out := s.Elements()
	for i := range out {
		if out[i].ID == id {
			out[i] = el.Clone()
			out[i].ID = id
			break
		}
	}
	return Scene{elements: out}
}

// Delete removes the element with the given id. No-op if absent.
func (s Scene) Delete(id string) Scene {
	out := make([]element.Element, 0, len(s.elements))
	for _, el := range s.elements {
		if el.ID != id {
			out = append(out, el.Clone())
		}
	}
	return Scene{elements: out}
}

// Add appends a pre-built element. The caller supplies a fresh id and an
// explicit zIndex chosen to sit above existing content.
func (s Scene) Add(el element.Element) Scene {
	out := s.Elements()
	out = append(out, el.Clone())
	return Scene{elements: out}
}

// MaxZ returns the highest zIndex in the scene, or zBase-1 when empty.
func (s Scene) MaxZ() int {
	z := zBase - 1
	for _, el := range s.elements {
		if el.ZIndex > z {
			z = el.ZIndex
		}
	}
	return z
}

// MinZ returns the lowest zIndex in the scene, or zBase+1 when empty.
func (s Scene) MinZ() int {
	z := zBase + 1
	for _, el := range s.elements {
		if el.ZIndex < z {
			z = el.ZIndex
		}
	}
	return z
}

// ReorderByZ removes sourceID from the z-order, reinserts it immediately
// before targetID, then renumbers all zIndex values densely starting at
// zBase in the new order. The renumbering keeps zIndex comparisons stable
// after repeated reorders. No-op if either id is absent or they are equal.
func (s Scene) ReorderByZ(sourceID, targetID string) Scene {
	if sourceID == targetID {
		return s.clone()
	}

	order := s.zOrderedIDs()
	srcAt, tgtAt := -1, -1
	for i, id := range order {
		switch id {
		case sourceID:
			srcAt = i
		case targetID:
			tgtAt = i
		}
	}
	if srcAt < 0 || tgtAt < 0 {
		return s.clone()
	}

	order = append(order[:srcAt], order[srcAt+1:]...)
	tgtAt = -1
	for i, id := range order {
		if id == targetID {
			tgtAt = i
			break
		}
	}
	reordered := make([]string, 0, len(order)+1)
	reordered = append(reordered, order[:tgtAt]...)
	reordered = append(reordered, sourceID)
	reordered = append(reordered, order[tgtAt:]...)

	zByID := make(map[string]int, len(reordered))
	for i, id := range reordered {
		zByID[id] = zBase + i
	}

	out := s.Elements()
	for i := range out {
		out[i].ZIndex = zByID[out[i].ID]
	}
	return Scene{elements: out}
}

// BringToFront sets the target's zIndex to one above the current maximum.
func (s Scene) BringToFront(id string) Scene {
	el, ok := s.Find(id)
	if !ok {
		return s.clone()
	}
	el.ZIndex = s.MaxZ() + 1
	return s.Update(id, el)
}

// SendToBack sets the target's zIndex to one below the current minimum.
func (s Scene) SendToBack(id string) Scene {
	el, ok := s.Find(id)
	if !ok {
		return s.clone()
	}
	el.ZIndex = s.MinZ() - 1
	return s.Update(id, el)
}

// PaintOrder returns the visible elements sorted by zIndex ascending
// (painter's order, back to front). The sort is stable so elements with
// equal zIndex keep insertion order.
func (s Scene) PaintOrder() []element.Element {
	out := make([]element.Element, 0, len(s.elements))
	for _, el := range s.elements {
		if el.Visible {
			out = append(out, el.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

func (s Scene) clone() Scene {
	return Scene{elements: s.Elements()}
}

// zOrderedIDs returns element ids sorted by zIndex ascending, including
// hidden elements (reordering must not drop them).
func (s Scene) zOrderedIDs() []string {
	ordered := s.Elements()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})
	ids := make([]string, len(ordered))
	for i, el := range ordered {
		ids[i] = el.ID
	}
	return ids
}
