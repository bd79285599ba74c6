package model

import (
	"errors"
	"fmt"
	"strings"
)

// RoadmapPosition is a node's canvas coordinate in the rendered flow graph.
type RoadmapPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RoadmapNodeData carries the learning step details shown inside a node.
type RoadmapNodeData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// RoadmapNode is one step in the generated learning roadmap.
type RoadmapNode struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position RoadmapPosition `json:"position"`
	Data     RoadmapNodeData `json:"data"`
}

// RoadmapEdge links two roadmap nodes.
type RoadmapEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Roadmap is the structured output contract of the roadmap generator agent,
// shaped for direct rendering by a React Flow frontend.
type Roadmap struct {
	RoadmapTitle string        `json:"roadmapTitle"`
	Description  string        `json:"description"`
	Duration     string        `json:"duration"`
	InitialNodes []RoadmapNode `json:"initialNodes"`
	InitialEdges []RoadmapEdge `json:"initialEdges"`
}

// Validate checks structural integrity: non-empty title, at least one node,
// unique node IDs, and edges that reference existing nodes.
func (r *Roadmap) Validate() error {
	if strings.TrimSpace(r.RoadmapTitle) == "" {
		return errors.New("roadmapTitle is required")
	}
	if len(r.InitialNodes) == 0 {
		return errors.New("initialNodes must contain at least one node")
	}

	nodeIDs := make(map[string]bool, len(r.InitialNodes))
	for _, node := range r.InitialNodes {
		if node.ID == "" {
			return errors.New("node id is required")
		}
		if nodeIDs[node.ID] {
			return fmt.Errorf("duplicate node id: %q", node.ID)
		}
		nodeIDs[node.ID] = true
	}

	for _, edge := range r.InitialEdges {
		if !nodeIDs[edge.Source] {
			return fmt.Errorf("edge %q references unknown source node %q", edge.ID, edge.Source)
		}
		if !nodeIDs[edge.Target] {
			return fmt.Errorf("edge %q references unknown target node %q", edge.ID, edge.Target)
		}
	}
	return nil
}
