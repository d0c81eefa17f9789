// SPDX-License-Identifier: MIT

// Package render formats query results for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/slotgraph/bfs"
	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/katalvlaran/slotgraph/suggest"
)

// Namer maps handles to display labels.
type Namer interface {
	Label(h core.Handle) string
}

// Printer writes styled output to one writer.
type Printer struct {
	w     io.Writer
	title lipgloss.Style
	name  lipgloss.Style
	dim   lipgloss.Style
	warn  lipgloss.Style
	ok    lipgloss.Style
}

// Option configures a Printer.
type Option func(*lipgloss.Renderer)

// Plain disables colors and text attributes regardless of the terminal.
func Plain() Option {
	return func(r *lipgloss.Renderer) { r.SetColorProfile(termenv.Ascii) }
}

// New returns a Printer whose styles match the capabilities of w.
func New(w io.Writer, opts ...Option) *Printer {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}

	return &Printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99")),
		name:  r.NewStyle().Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#00FF99")),
	}
}

// vertex formats "Label (#id)".
func (p *Printer) vertex(n Namer, h core.Handle) string {
	return p.name.Render(n.Label(h)) + p.dim.Render(fmt.Sprintf(" (#%d)", h))
}

func (p *Printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render("== "+s+" =="))
}

func (p *Printer) none(s string) {
	fmt.Fprintln(p.w, "  "+p.dim.Render(s))
}

// Vertices lists active vertices.
func (p *Printer) Vertices(title string, vs []core.Vertex) {
	p.heading(title)
	if len(vs) == 0 {
		p.none("none registered")

		return
	}
	for _, v := range vs {
		fmt.Fprintf(p.w, "  %s %s\n", p.dim.Render(fmt.Sprintf("#%-3d", v.ID)), p.name.Render(v.Label))
	}
}

// Routes lists every vertex with its outgoing edges, most recent first.
func (p *Printer) Routes(n Namer, vs []core.Vertex, edges []core.Edge) {
	p.heading("Routes")
	if len(vs) == 0 {
		p.none("none registered")

		return
	}

	bySource := make(map[core.Handle][]core.Edge, len(vs))
	for _, e := range edges {
		bySource[e.From] = append(bySource[e.From], e)
	}
	for _, v := range vs {
		fmt.Fprintln(p.w, p.vertex(n, v.ID))
		out := bySource[v.ID]
		if len(out) == 0 {
			p.none("no outgoing routes")

			continue
		}
		for _, e := range out {
			fmt.Fprintf(p.w, "  -> %s  cost %d\n", p.vertex(n, e.To), e.Weight)
		}
	}
}

// Friends lists the direct connections of h.
func (p *Printer) Friends(n Namer, h core.Handle, edges []core.Edge) {
	p.heading("Friends of " + n.Label(h))
	if len(edges) == 0 {
		p.none("no friends yet")

		return
	}
	for _, e := range edges {
		fmt.Fprintf(p.w, "  - %s\n", p.vertex(n, e.To))
	}
}

// Path prints a shortest route and its cost.
func (p *Printer) Path(n Namer, path *dijkstra.Path) {
	p.heading(fmt.Sprintf("Shortest path %s -> %s", n.Label(path.Source), n.Label(path.Destination)))
	hops := make([]string, len(path.Vertices))
	for i, h := range path.Vertices {
		hops[i] = p.name.Render(n.Label(h))
	}
	fmt.Fprintf(p.w, "  cost: %s\n", p.ok.Render(fmt.Sprint(path.Distance)))
	fmt.Fprintf(p.w, "  path: %s\n", strings.Join(hops, " -> "))
}

// Unreachable reports that no route exists.
func (p *Printer) Unreachable(n Namer, from, to core.Handle) {
	fmt.Fprintf(p.w, "%s %s to %s\n", p.warn.Render("no route from"), p.vertex(n, from), p.vertex(n, to))
}

// Levels prints a BFS report: every reached vertex and its hop distance.
func (p *Printer) Levels(n Namer, res *bfs.BFSResult) {
	p.heading("Reachable from " + n.Label(res.Start))
	for _, v := range res.Levels() {
		note := ""
		if v.Level == 0 {
			note = p.dim.Render(" (start)")
		}
		fmt.Fprintf(p.w, "  level %d  %s%s\n", v.Level, p.vertex(n, v.Vertex), note)
	}
}

// Order prints a traversal order on one line.
func (p *Printer) Order(n Namer, title string, hs []core.Handle) {
	p.heading(title)
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = p.name.Render(n.Label(h))
	}
	fmt.Fprintln(p.w, "  "+strings.Join(names, ", "))
}

// Groups prints components, one per block.
func (p *Printer) Groups(n Namer, groups [][]core.Handle) {
	p.heading(fmt.Sprintf("Groups (%d)", len(groups)))
	for i, g := range groups {
		fmt.Fprintf(p.w, "  group %d, %d member(s)\n", i+1, len(g))
		for _, h := range g {
			fmt.Fprintf(p.w, "    - %s\n", p.vertex(n, h))
		}
	}
}

// Suggestions prints second-degree candidates with the friend they came through.
func (p *Printer) Suggestions(n Namer, user core.Handle, s []suggest.Suggestion) {
	p.heading("Suggestions for " + n.Label(user))
	if len(s) == 0 {
		p.none("no suggestions right now")

		return
	}
	for _, c := range s {
		fmt.Fprintf(p.w, "  - %s %s\n", p.vertex(n, c.Vertex), p.dim.Render("via "+n.Label(c.Via)))
	}
}

// Connected prints the answer of a connectivity probe.
func (p *Printer) Connected(n Namer, a, b core.Handle, ok bool) {
	verdict := p.warn.Render("not connected")
	if ok {
		verdict = p.ok.Render("connected")
	}
	fmt.Fprintf(p.w, "%s and %s: %s\n", p.vertex(n, a), p.vertex(n, b), verdict)
}
