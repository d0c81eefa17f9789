// SPDX-License-Identifier: MIT

// Package scenario loads graph definitions from YAML and builds core stores
// from them. Two definitions ship with the binary: the five-city route map
// and the six-user social network.
package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slotgraph/core"
)

// Kind selects the store preset a definition is built with.
type Kind string

const (
	// KindRoutes builds a weighted directed route map.
	KindRoutes Kind = "routes"

	// KindSocial builds an unweighted undirected social network.
	KindSocial Kind = "social"
)

var (
	// ErrUnknownKind indicates a kind other than routes or social.
	ErrUnknownKind = errors.New("scenario: unknown kind")

	// ErrUnknownVertex indicates an edge endpoint that is not declared in vertices.
	ErrUnknownVertex = errors.New("scenario: unknown vertex")

	// ErrDuplicateVertex indicates a label declared twice.
	ErrDuplicateVertex = errors.New("scenario: duplicate vertex")
)

//go:embed builtin/*.yaml
var builtin embed.FS

// EdgeDef is one edge of a definition. Weight is ignored by social scenarios
// when zero.
type EdgeDef struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight,omitempty"`
}

// Definition is the decoded form of a scenario file.
type Definition struct {
	Kind     Kind      `yaml:"kind"`
	Name     string    `yaml:"name,omitempty"`
	Capacity int       `yaml:"capacity,omitempty"`
	Vertices []string  `yaml:"vertices"`
	Edges    []EdgeDef `yaml:"edges"`
}

// Built is a store together with the handles of its declared vertices.
type Built struct {
	Store   *core.Store
	Handles map[string]core.Handle
}

// Decode reads a definition from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Definition, error) {
	// 1. Strict decoder
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	// 2. Decode
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	// 3. Check shape
	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Load reads the definition stored at path.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Builtin returns the definition bundled for kind.
func Builtin(kind Kind) (*Definition, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	data, err := builtin.ReadFile("builtin/" + string(kind) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario: builtin %s: %w", kind, err)
	}

	return Decode(bytes.NewReader(data))
}

// Validate checks the kind, label uniqueness, and that every edge endpoint
// is declared. It does not check weights; the store does that on Build.
func (d *Definition) Validate() error {
	if !d.Kind.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}

	seen := make(map[string]struct{}, len(d.Vertices))
	var label string
	for _, label = range d.Vertices {
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVertex, label)
		}
		seen[label] = struct{}{}
	}

	var i int
	for i = range d.Edges {
		if _, ok := seen[d.Edges[i].From]; !ok {
			return fmt.Errorf("%w: edge %d from %q", ErrUnknownVertex, i, d.Edges[i].From)
		}
		if _, ok := seen[d.Edges[i].To]; !ok {
			return fmt.Errorf("%w: edge %d to %q", ErrUnknownVertex, i, d.Edges[i].To)
		}
	}

	return nil
}

// Build creates the store for d. opts are applied on top of the kind preset;
// a non-zero Capacity in the definition is applied last.
func (d *Definition) Build(opts ...core.GraphOption) (*Built, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Capacity > 0 {
		opts = append(opts, core.WithCapacity(d.Capacity))
	}

	var s *core.Store
	switch d.Kind {
	case KindRoutes:
		s = core.NewRouteMap(opts...)
	default:
		s = core.NewSocialNetwork(opts...)
	}

	// 1. Vertices in declaration order
	ids := make(map[string]core.Handle, len(d.Vertices))
	var label string
	for _, label = range d.Vertices {
		h, err := s.Register(label)
		if err != nil {
			return nil, fmt.Errorf("scenario: register %q: %w", label, err)
		}
		ids[label] = h
	}

	// 2. Edges in declaration order
	var e EdgeDef
	for _, e = range d.Edges {
		if err := s.AddEdge(ids[e.From], ids[e.To], e.Weight); err != nil {
			return nil, fmt.Errorf("scenario: edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return &Built{Store: s, Handles: ids}, nil
}

// Encode writes d as YAML.
func (d *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return enc.Close()
}

// FromStore captures the active vertices and edges of s as a definition.
// Mirrored records of an undirected store are emitted once, from the lower
// handle. Labels are taken as stored, so duplicates make the result invalid.
func FromStore(kind Kind, s *core.Store) *Definition {
	def := &Definition{Kind: kind, Capacity: s.Capacity()}
	var v core.Vertex
	for _, v = range s.Vertices() {
		def.Vertices = append(def.Vertices, v.Label)
	}

	var e core.Edge
	for _, e = range s.Edges() {
		if !s.Directed() && e.From > e.To {
			continue
		}
		from, _ := s.Label(e.From)
		to, _ := s.Label(e.To)
		def.Edges = append(def.Edges, EdgeDef{From: from, To: to, Weight: e.Weight})
	}

	return def
}

func (k Kind) valid() bool {
	return k == KindRoutes || k == KindSocial
}
