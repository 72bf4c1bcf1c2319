package types

// RawTask is one element of the JSON array the model returns for a roadmap.
// DueDay is a pointer so an absent field is distinguishable from day zero.
type RawTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDay      *float64 `json:"dueDay"`
}

// RawGraph mirrors the JSON object the model returns for a prerequisite
// graph, before any validation.
type RawGraph struct {
	Nodes []RawNode `json:"nodes"`
	Edges []RawEdge `json:"edges"`
}

type RawNode struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Difficulty     string  `json:"difficulty"`
	EstimatedHours float64 `json:"estimatedHours"`
}

type RawEdge struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Relationship string `json:"relationship"`
}
