// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Case-insensitive label → handle index over an ordered B-tree.
// Determinism:
//   - Entries are ordered by folded label, then by handle.
//   - Lookup returns every handle sharing a label in ascending order.

// Package index maps vertex labels to store handles.
//
// Labels are not unique in a core.Store, so the index keeps one entry per
// (label, handle) pair and reports ambiguity instead of guessing.
package index

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/slotgraph/core"
)

var (
	// ErrUnknownLabel indicates that no vertex carries the requested label.
	ErrUnknownLabel = errors.New("index: unknown label")

	// ErrAmbiguousLabel indicates that several vertices share the requested label.
	ErrAmbiguousLabel = errors.New("index: ambiguous label")
)

// RefPrefix marks a reference that names a handle directly, e.g. "#3".
const RefPrefix = "#"

// entry is one (label, handle) pair stored in the tree.
type entry struct {
	key   string // folded label
	label string // label as registered
	h     core.Handle
}

func entryLess(a, b entry) bool {
	if a.key != b.key {
		return a.key < b.key
	}

	return a.h < b.h
}

// Labels is an ordered, case-insensitive label index.
// It is not safe for concurrent mutation; readers may share it.
type Labels struct {
	tree *btree.BTreeG[entry]
}

// New returns an empty index.
func New() *Labels {
	return &Labels{tree: btree.NewBTreeG[entry](entryLess)}
}

// FromStore indexes every active vertex of s.
func FromStore(s *core.Store) *Labels {
	idx := New()
	var v core.Vertex
	for _, v = range s.Vertices() {
		idx.Add(v.Label, v.ID)
	}

	return idx
}

// Add records label for h. Adding the same pair twice is a no-op.
func (l *Labels) Add(label string, h core.Handle) {
	l.tree.Set(entry{key: fold(label), label: label, h: h})
}

// Len reports the number of indexed pairs.
func (l *Labels) Len() int {
	return l.tree.Len()
}

// Lookup returns every handle registered under label, ascending.
func (l *Labels) Lookup(label string) []core.Handle {
	key := fold(label)
	var out []core.Handle
	l.tree.Ascend(entry{key: key, h: core.NoHandle}, func(e entry) bool {
		if e.key != key {
			return false
		}
		out = append(out, e.h)

		return true
	})

	return out
}

// Resolve maps a reference to exactly one handle. A reference is either a
// label (case-insensitive) or RefPrefix followed by a decimal handle.
// A "#id" reference is parsed but not checked against any store.
func (l *Labels) Resolve(ref string) (core.Handle, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, RefPrefix) {
		n, err := strconv.Atoi(strings.TrimPrefix(ref, RefPrefix))
		if err != nil {
			return core.NoHandle, fmt.Errorf("%w: bad handle reference %q", core.ErrInvalidVertex, ref)
		}

		return core.Handle(n), nil
	}

	hs := l.Lookup(ref)
	switch len(hs) {
	case 0:
		return core.NoHandle, fmt.Errorf("%w: %q", ErrUnknownLabel, ref)
	case 1:
		return hs[0], nil
	default:
		return core.NoHandle, fmt.Errorf("%w: %q matches %d vertices %v", ErrAmbiguousLabel, ref, len(hs), hs)
	}
}

// Each calls fn for every pair in index order until fn returns false.
func (l *Labels) Each(fn func(label string, h core.Handle) bool) {
	l.tree.Scan(func(e entry) bool {
		return fn(e.label, e.h)
	})
}

// WithPrefix returns the handles whose label starts with prefix
// (case-insensitive), in index order.
func (l *Labels) WithPrefix(prefix string) []core.Handle {
	key := fold(prefix)
	var out []core.Handle
	l.tree.Ascend(entry{key: key, h: core.NoHandle}, func(e entry) bool {
		if !strings.HasPrefix(e.key, key) {
			return false
		}
		out = append(out, e.h)

		return true
	})

	return out
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
