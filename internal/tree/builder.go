package tree

import (
	"github.com/vuedeps-dev/vuedeps/internal/deps"
	"github.com/vuedeps-dev/vuedeps/internal/sfc"
)

// DefaultMaxDepth bounds recursion when the caller does not choose a
// limit. Cycle detection already terminates cyclic graphs; the depth cap
// additionally terminates long acyclic chains.
const DefaultMaxDepth = 10

// Builder expands a file's transitive dependencies into a tree of
// status-tagged nodes. A Builder holds no state across Build calls; the
// per-branch visited set is the only state threaded through recursion
// and it is copied at every step so sibling branches stay independent.
type Builder struct {
	resolver *deps.Resolver
	maxDepth int
}

func NewBuilder(resolver *deps.Resolver, maxDepth int) *Builder {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Builder{resolver: resolver, maxDepth: maxDepth}
}

// Build runs one traversal from entryFile and returns the full result
// envelope: the tree, the flattened file set, and a summary. Only an
// invalid entry argument fails the whole call; every per-file failure
// becomes a status-tagged node instead.
func (b *Builder) Build(entryFile string) *Result {
	abs, err := b.resolver.EntryPath(entryFile)
	if err != nil {
		return &Result{Success: false, EntryFile: entryFile, Error: err.Error()}
	}

	root := b.visit(abs, "", 0, map[string]bool{})
	result := &Result{
		Success:        true,
		EntryFile:      abs,
		DependencyTree: root,
		AllFiles:       Flatten(root),
	}
	result.Summary = summarize(root, result.AllFiles)
	return result
}

// visit expands one path at one depth along one branch. The visited set
// belongs to this branch alone: the caller passes a snapshot, and visit
// copies it again before descending, so cycle detection fires only for
// genuine back-edges and diamond-shaped graphs expand on every branch.
func (b *Builder) visit(path, reference string, depth int, visited map[string]bool) *Node {
	node := &Node{Path: path, Reference: reference, Depth: depth}

	if visited[path] {
		node.Status = StatusCircular
		return node
	}
	if depth > b.maxDepth {
		node.Status = StatusMaxDepth
		return node
	}
	if !b.resolver.Prober().IsFile(path) {
		node.Status = StatusNotFound
		return node
	}
	if sfc.Classify(path) == sfc.KindOther {
		node.Status = StatusLeaf
		node.Exists = true
		return node
	}

	branch := copyVisited(visited)
	branch[path] = true

	set, _, err := b.resolver.Resolve(path)
	if err != nil {
		node.Status = StatusError
		node.Error = err.Error()
		return node
	}

	node.Status = StatusOK
	for _, candidate := range set.All() {
		raw := set.RawReference(candidate)
		resolved := b.resolver.Prober().ResolveWithExtensions(candidate, b.resolver.Extensions())
		if resolved == "" {
			node.Children = append(node.Children, &Node{
				Path:      candidate,
				Reference: raw,
				Depth:     depth + 1,
				Status:    StatusNotFound,
			})
			continue
		}
		node.Children = append(node.Children, b.visit(resolved, raw, depth+1, branch))
	}
	return node
}

func copyVisited(visited map[string]bool) map[string]bool {
	out := make(map[string]bool, len(visited)+1)
	for path := range visited {
		out[path] = true
	}
	return out
}

func summarize(root *Node, allFiles []string) *Summary {
	summary := &Summary{TotalFiles: len(allFiles), CircularPaths: []string{}}
	seenCircular := make(map[string]bool)
	var walk func(node *Node)
	walk = func(node *Node) {
		if node.Depth > summary.MaxDepthReached {
			summary.MaxDepthReached = node.Depth
		}
		if node.Status == StatusCircular && !seenCircular[node.Path] {
			seenCircular[node.Path] = true
			summary.CircularPaths = append(summary.CircularPaths, node.Path)
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)
	return summary
}
