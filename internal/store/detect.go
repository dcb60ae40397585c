package store

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Usage reports whether a code section touches the legacy global store
// and which store modules it uses.
type Usage struct {
	UsesLegacyStore bool     `json:"usesLegacyStore"`
	UsedModules     []string `json:"usedModules"`
}

// mapHelpers are the store binding helpers whose first argument names a
// store module namespace.
var mapHelpers = map[string]bool{
	"mapState":     true,
	"mapGetters":   true,
	"mapActions":   true,
	"mapMutations": true,
}

// Detector recognizes legacy global-store usage in script sections. It
// walks the real syntax tree instead of pattern-matching text because
// the signals are expression shapes ($store member chains, map-helper
// calls), not string literals.
type Detector struct {
	parser *sitter.Parser
}

func NewDetector() *Detector {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	return &Detector{parser: parser}
}

// Detect scans one code section. A section that fails to parse yields
// an empty Usage; detection is best-effort by design.
func (d *Detector) Detect(code string) Usage {
	usage := Usage{}
	if strings.TrimSpace(code) == "" {
		return usage
	}

	tree, err := d.parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil {
		return usage
	}
	defer tree.Close()

	seen := make(map[string]bool)
	d.walk(tree.RootNode(), []byte(code), &usage, seen)
	return usage
}

func (d *Detector) walk(node *sitter.Node, content []byte, usage *Usage, seen map[string]bool) {
	switch node.Type() {
	case "member_expression":
		d.inspectMemberChain(node, content, usage, seen)
	case "call_expression":
		d.inspectCall(node, content, usage, seen)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		d.walk(node.Child(i), content, usage, seen)
	}
}

// inspectMemberChain flags chains rooted at the global store object and
// pulls the module name out of "this.$store.state.<module>.<field>"
// style access.
func (d *Detector) inspectMemberChain(node *sitter.Node, content []byte, usage *Usage, seen map[string]bool) {
	text := node.Content(content)
	trimmed := strings.TrimPrefix(text, "this.")
	if !strings.HasPrefix(trimmed, "$store.") {
		return
	}
	usage.UsesLegacyStore = true

	segments := strings.Split(trimmed, ".")
	// $store.state.cart.items -> module "cart"; $store.state.count has
	// no module segment and names the root state.
	if len(segments) >= 4 && (segments[1] == "state" || segments[1] == "getters") {
		addModule(usage, seen, segments[2])
	}
}

// inspectCall flags map-helper calls and namespaced commit/dispatch
// calls, extracting the module name from the first string argument.
func (d *Detector) inspectCall(node *sitter.Node, content []byte, usage *Usage, seen map[string]bool) {
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return
	}

	fnText := fn.Content(content)
	if fn.Type() == "identifier" && mapHelpers[fnText] {
		usage.UsesLegacyStore = true
		if arg := firstStringArgument(node, content); arg != "" {
			// Namespaced helpers take 'cart' or 'cart/nested' as the
			// first argument.
			addModule(usage, seen, strings.Split(arg, "/")[0])
		}
		return
	}

	if strings.HasSuffix(fnText, ".commit") || strings.HasSuffix(fnText, ".dispatch") {
		base := strings.TrimPrefix(fnText, "this.")
		if !strings.HasPrefix(base, "$store.") {
			return
		}
		usage.UsesLegacyStore = true
		if arg := firstStringArgument(node, content); strings.Contains(arg, "/") {
			addModule(usage, seen, strings.Split(arg, "/")[0])
		}
	}
}

func firstStringArgument(call *sitter.Node, content []byte) string {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return ""
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		child := args.NamedChild(i)
		if child.Type() == "string" {
			return strings.Trim(child.Content(content), `'"`+"`")
		}
	}
	return ""
}

func addModule(usage *Usage, seen map[string]bool, module string) {
	module = strings.TrimSpace(module)
	if module == "" || seen[module] {
		return
	}
	seen[module] = true
	usage.UsedModules = append(usage.UsedModules, module)
}
