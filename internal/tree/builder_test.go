package tree

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/vuedeps-dev/vuedeps/internal/deps"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newBuilder(fs afero.Fs, maxDepth int) *Builder {
	return NewBuilder(deps.NewResolver(fs, deps.Options{BaseDir: "/app"}), maxDepth)
}

func findChild(t *testing.T, node *Node, path string) *Node {
	t.Helper()
	for _, child := range node.Children {
		if child.Path == path {
			return child
		}
	}
	t.Fatalf("node %s has no child %s", node.Path, path)
	return nil
}

func TestBuildLinearChain(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", `import b from './b.js'`)
	writeFile(t, fs, "/app/b.js", `import c from './c.js'`)
	writeFile(t, fs, "/app/c.js", `const done = true`)

	result := newBuilder(fs, -1).Build("a.js")
	if !result.Success {
		t.Fatalf("build failed: %s", result.Error)
	}
	if result.EntryFile != "/app/a.js" {
		t.Fatalf("entry = %q", result.EntryFile)
	}

	b := findChild(t, result.DependencyTree, "/app/b.js")
	c := findChild(t, b, "/app/c.js")
	if result.DependencyTree.Status != StatusOK || b.Status != StatusOK || c.Status != StatusOK {
		t.Fatalf("expected ok statuses, got %s/%s/%s", result.DependencyTree.Status, b.Status, c.Status)
	}
	if c.Depth != 2 {
		t.Fatalf("c depth = %d", c.Depth)
	}

	wantFiles := []string{"/app/a.js", "/app/b.js", "/app/c.js"}
	if len(result.AllFiles) != len(wantFiles) {
		t.Fatalf("AllFiles = %v", result.AllFiles)
	}
	for i, want := range wantFiles {
		if result.AllFiles[i] != want {
			t.Fatalf("AllFiles[%d] = %q, want %q", i, result.AllFiles[i], want)
		}
	}
	if result.Summary.TotalFiles != 3 || result.Summary.MaxDepthReached != 2 {
		t.Fatalf("summary = %+v", result.Summary)
	}
}

func TestBuildCycleTerminates(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", `import b from './b.js'`)
	writeFile(t, fs, "/app/b.js", `import a from './a.js'`)

	result := newBuilder(fs, -1).Build("a.js")
	if !result.Success {
		t.Fatalf("build failed: %s", result.Error)
	}

	b := findChild(t, result.DependencyTree, "/app/b.js")
	backEdge := findChild(t, b, "/app/a.js")
	if backEdge.Status != StatusCircular {
		t.Fatalf("back edge status = %s, want circular", backEdge.Status)
	}
	if len(backEdge.Children) != 0 {
		t.Fatal("circular node must not be expanded")
	}
	if len(result.Summary.CircularPaths) != 1 || result.Summary.CircularPaths[0] != "/app/a.js" {
		t.Fatalf("CircularPaths = %v", result.Summary.CircularPaths)
	}
}

func TestBuildDepthCap(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", `import b from './b.js'`)
	writeFile(t, fs, "/app/b.js", `import c from './c.js'`)
	writeFile(t, fs, "/app/c.js", `import d from './d.js'`)
	writeFile(t, fs, "/app/d.js", `const done = true`)

	result := newBuilder(fs, 1).Build("a.js")
	b := findChild(t, result.DependencyTree, "/app/b.js")
	if b.Status != StatusOK {
		t.Fatalf("b status = %s, want ok", b.Status)
	}
	c := findChild(t, b, "/app/c.js")
	if c.Status != StatusMaxDepth {
		t.Fatalf("c status = %s, want max-depth-reached", c.Status)
	}
	if len(c.Children) != 0 {
		t.Fatal("depth-capped node must not be expanded")
	}
}

func TestBuildDiamondExpandsPerBranch(t *testing.T) {
	// a imports b and c; both import shared. The shared file is not a
	// cycle, so each branch expands it independently.
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", "import b from './b.js'\nimport c from './c.js'")
	writeFile(t, fs, "/app/b.js", `import shared from './shared.js'`)
	writeFile(t, fs, "/app/c.js", `import shared from './shared.js'`)
	writeFile(t, fs, "/app/shared.js", `const x = 1`)

	result := newBuilder(fs, -1).Build("a.js")
	b := findChild(t, result.DependencyTree, "/app/b.js")
	c := findChild(t, result.DependencyTree, "/app/c.js")

	sharedFromB := findChild(t, b, "/app/shared.js")
	sharedFromC := findChild(t, c, "/app/shared.js")
	if sharedFromB.Status != StatusOK || sharedFromC.Status != StatusOK {
		t.Fatalf("diamond branches must both expand, got %s and %s",
			sharedFromB.Status, sharedFromC.Status)
	}
	if len(result.Summary.CircularPaths) != 0 {
		t.Fatalf("diamond must not report cycles: %v", result.Summary.CircularPaths)
	}
	// Flatten still reports the shared file once.
	if result.Summary.TotalFiles != 4 {
		t.Fatalf("TotalFiles = %d, want 4", result.Summary.TotalFiles)
	}
}

func TestBuildNotFoundReference(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", `import gone from './gone.js'`)

	result := newBuilder(fs, -1).Build("a.js")
	missing := findChild(t, result.DependencyTree, "/app/gone.js")
	if missing.Status != StatusNotFound {
		t.Fatalf("status = %s, want not-found", missing.Status)
	}
	if missing.Reference != "./gone.js" {
		t.Fatalf("reference = %q, want raw reference", missing.Reference)
	}
}

func TestBuildExtensionlessImportResolved(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", `import helper from './helper'`)
	writeFile(t, fs, "/app/helper.ts", `export const x = 1`)

	result := newBuilder(fs, -1).Build("a.js")
	helper := findChild(t, result.DependencyTree, "/app/helper.ts")
	if helper.Status != StatusOK {
		t.Fatalf("helper status = %s", helper.Status)
	}
}

func TestBuildAssetIsLeaf(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/App.vue", `<template><img src="./logo.png"></template>`)
	writeFile(t, fs, "/app/logo.png", "png")

	result := newBuilder(fs, -1).Build("App.vue")
	leaf := findChild(t, result.DependencyTree, "/app/logo.png")
	if leaf.Status != StatusLeaf {
		t.Fatalf("status = %s, want leaf", leaf.Status)
	}
	if !leaf.Exists {
		t.Fatal("leaf must record existence")
	}
}

func TestBuildMalformedComponentIsErrorNode(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/a.js", "import broken from './Broken.vue'\nimport ok from './ok.js'")
	writeFile(t, fs, "/app/Broken.vue", "<script>\nnever closed")
	writeFile(t, fs, "/app/ok.js", "const fine = true")

	result := newBuilder(fs, -1).Build("a.js")
	if !result.Success {
		t.Fatalf("traversal must survive per-file failures: %s", result.Error)
	}

	broken := findChild(t, result.DependencyTree, "/app/Broken.vue")
	if broken.Status != StatusError || broken.Error == "" {
		t.Fatalf("broken node = %+v", broken)
	}
	ok := findChild(t, result.DependencyTree, "/app/ok.js")
	if ok.Status != StatusOK {
		t.Fatalf("sibling of failed node must still expand, got %s", ok.Status)
	}
}

func TestBuildMissingEntryIsNotFoundRoot(t *testing.T) {
	result := newBuilder(afero.NewMemMapFs(), -1).Build("missing.js")
	if !result.Success {
		t.Fatalf("missing entry is a status, not a failure: %s", result.Error)
	}
	if result.DependencyTree.Status != StatusNotFound {
		t.Fatalf("root status = %s", result.DependencyTree.Status)
	}
}

func TestBuildEmptyEntryFails(t *testing.T) {
	result := newBuilder(afero.NewMemMapFs(), -1).Build("")
	if result.Success {
		t.Fatal("empty entry must fail the whole call")
	}
	if result.Error == "" {
		t.Fatal("expected error message")
	}
}

func TestFlattenCollectsEveryNodeOnce(t *testing.T) {
	root := &Node{
		Path:   "/app/a.js",
		Status: StatusOK,
		Children: []*Node{
			{Path: "/app/b.js", Status: StatusOK, Children: []*Node{
				{Path: "/app/a.js", Status: StatusCircular},
			}},
			{Path: "/app/missing.js", Status: StatusNotFound},
			{Path: "/app/b.js", Status: StatusOK},
		},
	}
	got := Flatten(root)
	want := []string{"/app/a.js", "/app/b.js", "/app/missing.js"}
	if len(got) != len(want) {
		t.Fatalf("Flatten = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Flatten[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
