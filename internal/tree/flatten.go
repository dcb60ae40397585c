package tree

// Flatten walks a tree depth-first and returns every node path exactly
// once. Paths of not-found and circular nodes are included so callers
// can report on them.
func Flatten(root *Node) []string {
	var out []string
	seen := make(map[string]bool)
	var walk func(node *Node)
	walk = func(node *Node) {
		if node == nil {
			return
		}
		if node.Path != "" && !seen[node.Path] {
			seen[node.Path] = true
			out = append(out, node.Path)
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}
