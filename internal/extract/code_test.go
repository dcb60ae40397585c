package extract

import (
	"reflect"
	"testing"
)

func TestCodeReferencesImportForms(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "default import",
			content: `import Button from './components/Button.vue'`,
			want:    []string{"./components/Button.vue"},
		},
		{
			name:    "named import",
			content: `import { format, parse } from '../utils/date'`,
			want:    []string{"../utils/date"},
		},
		{
			name:    "namespace import",
			content: `import * as helpers from './helpers'`,
			want:    []string{"./helpers"},
		},
		{
			name:    "side-effect import",
			content: `import './polyfills'`,
			want:    []string{"./polyfills"},
		},
		{
			name:    "require call",
			content: `const config = require('./config')`,
			want:    []string{"./config"},
		},
		{
			name:    "dynamic import with literal",
			content: `const page = () => import('./pages/Home.vue')`,
			want:    []string{"./pages/Home.vue"},
		},
		{
			name:    "double quotes",
			content: `import App from "./App.vue"`,
			want:    []string{"./App.vue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CodeReferences(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CodeReferences(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestCodeReferencesMixedImportMatchedByMultipleForms(t *testing.T) {
	content := `import Vue, { ref, computed } from './vue-like'`
	got := CodeReferences(content)
	// The mixed form can be hit by more than one pattern; the extractor
	// still reports the specifier once.
	if len(got) != 1 || got[0] != "./vue-like" {
		t.Fatalf("CodeReferences = %v, want [./vue-like]", got)
	}
}

func TestCodeReferencesExcludesExternal(t *testing.T) {
	content := `
import Vue from 'vue'
import axios from 'axios'
import http from 'http://cdn.example.com/lib.js'
import proto from '//cdn.example.com/lib.js'
import inline from 'data:text/javascript;base64,AAAA'
import nested from '../node_modules/pkg/index.js'
import local from './local.js'
`
	got := CodeReferences(content)
	want := []string{"vue", "axios", "./local.js"}
	// Bare specifiers survive extraction (the resolver classifies them);
	// URLs, data URIs, and node_modules paths must not.
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CodeReferences = %v, want %v", got, want)
	}
}

func TestCodeReferencesMultilineNamedImport(t *testing.T) {
	content := `import {
	mapState,
	mapActions
} from './store-helpers'`
	got := CodeReferences(content)
	if len(got) != 1 || got[0] != "./store-helpers" {
		t.Fatalf("CodeReferences = %v, want [./store-helpers]", got)
	}
}
