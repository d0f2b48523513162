// Package tui renders playback frames and algorithm notes for the
// terminal host.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/strobe/pkg/domain"
)

// Renderer draws one step per frame. It is stateless between frames;
// the caller clears the screen and asks for the next frame.
type Renderer struct {
	profile termenv.Profile
	height  int
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithProfile overrides the detected color profile. Tests pass
// termenv.Ascii for stable output.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = profile
	}
}

// WithHeight sets the bar chart height in rows.
func WithHeight(rows int) Option {
	return func(r *Renderer) {
		r.height = rows
	}
}

// NewRenderer creates a renderer using the terminal's color profile.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		profile: termenv.ColorProfile(),
		height:  12,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderStep draws the step's snapshot followed by its description.
func (r *Renderer) RenderStep(step domain.Step) string {
	var sb strings.Builder

	switch snapshot := step.Snapshot.(type) {
	case domain.ArraySnapshot:
		sb.WriteString(r.renderArray(snapshot, step.Highlights))
	case domain.GridSnapshot:
		sb.WriteString(r.renderGrid(snapshot))
	case domain.TreeSnapshot:
		sb.WriteString(r.renderTree(snapshot))
	case domain.GraphSnapshot:
		sb.WriteString(r.renderGraph(snapshot))
	}

	if step.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(r.colored(step.Description, "#a78bfa"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderArray draws a column chart, one column per element, scaled to
// the renderer height. Highlighted columns and a located target get
// their own colors.
func (r *Renderer) renderArray(snapshot domain.ArraySnapshot, highlights []int) string {
	values := snapshot.Values
	if len(values) == 0 {
		return ""
	}

	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	marked := make(map[int]bool, len(highlights))
	for _, h := range highlights {
		if h >= 0 && h < len(values) {
			marked[h] = true
		}
	}

	var sb strings.Builder
	for row := r.height; row >= 1; row-- {
		threshold := max * row
		for i, v := range values {
			if v*r.height >= threshold {
				sb.WriteString(r.columnGlyph(snapshot, marked, i))
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) columnGlyph(snapshot domain.ArraySnapshot, marked map[int]bool, i int) string {
	switch {
	case i == snapshot.Found:
		return r.colored("█", "#4ade80")
	case marked[i]:
		return r.colored("█", "#f472b6")
	case i == snapshot.Pivot:
		return r.colored("█", "#facc15")
	case snapshot.Low >= 0 && (i < snapshot.Low || i > snapshot.High):
		return r.colored("░", "#475569")
	default:
		return r.colored("█", "#818cf8")
	}
}

// renderGrid draws one glyph per cell. Rows are stored y-major.
func (r *Renderer) renderGrid(snapshot domain.GridSnapshot) string {
	var sb strings.Builder
	for _, row := range snapshot.Cells {
		for _, kind := range row {
			sb.WriteString(r.cellGlyph(kind))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) cellGlyph(kind domain.CellKind) string {
	switch kind {
	case domain.CellWall:
		return r.colored("█", "#64748b")
	case domain.CellStart:
		return r.colored("S", "#4ade80")
	case domain.CellEnd:
		return r.colored("E", "#f87171")
	case domain.CellPath:
		return r.colored("●", "#facc15")
	case domain.CellVisited:
		return r.colored("░", "#818cf8")
	case domain.CellFrontier:
		return r.colored("▒", "#c084fc")
	default:
		return " "
	}
}

// renderTree draws the arena sideways, right subtree above the node and
// left below, so depth maps to indentation.
func (r *Renderer) renderTree(snapshot domain.TreeSnapshot) string {
	if snapshot.Root == domain.NoNode {
		return r.colored("(empty)", "#475569") + "\n"
	}
	var sb strings.Builder
	r.writeTree(&sb, snapshot, snapshot.Root, 0)
	return sb.String()
}

func (r *Renderer) writeTree(sb *strings.Builder, snapshot domain.TreeSnapshot, handle, depth int) {
	if handle == domain.NoNode || handle >= len(snapshot.Nodes) {
		return
	}
	node := snapshot.Nodes[handle]
	r.writeTree(sb, snapshot, node.Right, depth+1)

	sb.WriteString(strings.Repeat("    ", depth))
	label := fmt.Sprintf("%d", node.Value)
	if handle == snapshot.Highlight {
		label = r.colored(label, "#f472b6")
	} else {
		label = r.colored(label, "#818cf8")
	}
	sb.WriteString(label)
	sb.WriteString("\n")

	r.writeTree(sb, snapshot, node.Left, depth+1)
}

// renderGraph lists nodes and edges with their selection state.
func (r *Renderer) renderGraph(snapshot domain.GraphSnapshot) string {
	var sb strings.Builder

	sb.WriteString("nodes: ")
	for i, node := range snapshot.Nodes {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch {
		case i == snapshot.ActiveNode:
			sb.WriteString(r.colored(node.Label, "#facc15"))
		case node.InMST || node.Visited:
			sb.WriteString(r.colored(node.Label, "#4ade80"))
		default:
			sb.WriteString(r.colored(node.Label, "#818cf8"))
		}
	}
	sb.WriteString("\n")

	for i, edge := range snapshot.Edges {
		line := fmt.Sprintf("%s-%s (%d)",
			snapshot.Nodes[edge.From].Label,
			snapshot.Nodes[edge.To].Label,
			edge.Weight,
		)
		switch {
		case i == snapshot.ActiveEdge || edge.Highlighted:
			line = r.colored("> "+line, "#facc15")
		case edge.InMST:
			line = r.colored("* "+line, "#4ade80")
		default:
			line = r.colored("  "+line, "#475569")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderStats formats the run counters shown under every frame.
func (r *Renderer) RenderStats(cursor, total int, counters domain.Counters, speed float64) string {
	return fmt.Sprintf("step %d/%d  comparisons %d  mutations %d  speed %.1fx",
		cursor, total, counters.Comparisons, counters.Mutations, speed)
}

func (r *Renderer) colored(s, hex string) string {
	return termenv.String(s).Foreground(r.profile.Color(hex)).String()
}
