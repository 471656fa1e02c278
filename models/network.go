package models

// Interaction ist eine ungerichtete Kante zwischen zwei Proteinen.
type Interaction struct {
	ProteinA string `json:"protein_a"`
	ProteinB string `json:"protein_b"`
}

// Network ist die für die Graph-Darstellung aufbereitete Form einer
// Kantenliste: Knoten in Erst-Auftritts-Reihenfolge plus Zählwerte für
// die Bildunterschrift.
type Network struct {
	Nodes     []string      `json:"nodes"`
	Edges     []Interaction `json:"edges"`
	NodeCount int           `json:"node_count"`
	EdgeCount int           `json:"edge_count"`
}

// NewNetwork baut aus einer Kantenliste das Netzwerk mit eindeutiger Knotenmenge.
func NewNetwork(edges []Interaction) *Network {
	n := &Network{Edges: edges}

	seen := make(map[string]bool)
	for _, e := range edges {
		if !seen[e.ProteinA] {
			seen[e.ProteinA] = true
			n.Nodes = append(n.Nodes, e.ProteinA)
		}
		if !seen[e.ProteinB] {
			seen[e.ProteinB] = true
			n.Nodes = append(n.Nodes, e.ProteinB)
		}
	}

	n.NodeCount = len(n.Nodes)
	n.EdgeCount = len(n.Edges)
	return n
}
