package store

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/vuedeps-dev/vuedeps/internal/resolver"
)

func TestLocateConventionalLayouts(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/src/store/modules/cart.js")
	writeFile(t, fs, "/app/store/ui.ts")

	prober := resolver.NewProber(fs)

	if got := Locate("cart", "/app", nil, prober); got != "/app/src/store/modules/cart.js" {
		t.Errorf("Locate(cart) = %q", got)
	}
	if got := Locate("ui", "/app", nil, prober); got != "/app/store/ui.ts" {
		t.Errorf("Locate(ui) = %q", got)
	}
	if got := Locate("missing", "/app", nil, prober); got != "" {
		t.Errorf("Locate(missing) = %q, want empty", got)
	}
}

func TestLocateThroughAliasTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/app/client/store/modules/auth.ts")

	prober := resolver.NewProber(fs)
	aliases := map[string]string{"@": "./client"}

	if got := Locate("auth", "/app", aliases, prober); got != "/app/client/store/modules/auth.ts" {
		t.Errorf("Locate(auth) = %q", got)
	}
}

func TestLocateEmptyModuleName(t *testing.T) {
	prober := resolver.NewProber(afero.NewMemMapFs())
	if got := Locate("", "/app", nil, prober); got != "" {
		t.Errorf("Locate(\"\") = %q, want empty", got)
	}
}

func writeFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte("export default {}"), 0644); err != nil {
		t.Fatal(err)
	}
}
