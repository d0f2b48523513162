// Package graph exports graph snapshots as Mermaid markup, for pasting
// a frame into documentation or an issue.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/strobe/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a graph snapshot.
// Selected edges render as thick links, the active element gets its own
// style class.
func GenerateMermaid(snapshot domain.GraphSnapshot) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, node := range snapshot.Nodes {
		sb.WriteString(fmt.Sprintf("    n%d((\"%s\"))\n", node.ID, node.Label))
	}

	for _, edge := range snapshot.Edges {
		arrow := "---"
		if edge.InMST {
			arrow = "==="
		}
		sb.WriteString(fmt.Sprintf("    n%d %s|%d| n%d\n",
			snapshot.Nodes[edge.From].ID, arrow, edge.Weight, snapshot.Nodes[edge.To].ID))
	}

	sb.WriteString("\n    classDef selected fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	for _, node := range snapshot.Nodes {
		if node.InMST || node.Visited {
			sb.WriteString(fmt.Sprintf("    class n%d selected;\n", node.ID))
		}
	}
	if snapshot.ActiveNode >= 0 && snapshot.ActiveNode < len(snapshot.Nodes) {
		sb.WriteString(fmt.Sprintf("    class n%d active;\n", snapshot.Nodes[snapshot.ActiveNode].ID))
	}

	return sb.String()
}
