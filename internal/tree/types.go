package tree

// Status is the terminal state of one node in the dependency tree.
// Exactly one status applies per node.
type Status string

const (
	// StatusOK marks a node that was fully expanded.
	StatusOK Status = "ok"
	// StatusLeaf marks a file whose type is not expanded further
	// (images, fonts, other assets).
	StatusLeaf Status = "leaf"
	// StatusCircular marks a path that is an ancestor of itself along
	// the current branch.
	StatusCircular Status = "circular"
	// StatusMaxDepth marks a node cut off by the depth limit.
	StatusMaxDepth Status = "max-depth-reached"
	// StatusNotFound marks a reference that resolved to no existing file.
	StatusNotFound Status = "not-found"
	// StatusError marks a node whose own dependency resolution failed;
	// only its subtree is truncated.
	StatusError Status = "error"
)

// Node is one file's position in the dependency tree. Nodes are built
// once during a traversal and never mutated afterwards.
type Node struct {
	Path      string  `json:"path"`
	Reference string  `json:"reference,omitempty"`
	Depth     int     `json:"depth"`
	Status    Status  `json:"status"`
	Exists    bool    `json:"exists,omitempty"`
	Error     string  `json:"error,omitempty"`
	Children  []*Node `json:"children,omitempty"`
}

// Summary aggregates traversal-wide facts about one tree.
type Summary struct {
	TotalFiles      int      `json:"totalFiles"`
	MaxDepthReached int      `json:"maxDepthReached"`
	CircularPaths   []string `json:"circularPaths"`
}

// Result is the caller-facing envelope for one traversal.
type Result struct {
	Success        bool     `json:"success"`
	EntryFile      string   `json:"entryFile"`
	DependencyTree *Node    `json:"dependencyTree,omitempty"`
	AllFiles       []string `json:"allFiles,omitempty"`
	Summary        *Summary `json:"summary,omitempty"`
	Error          string   `json:"error,omitempty"`
}
