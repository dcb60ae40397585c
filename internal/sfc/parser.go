package sfc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Parse splits a single-file component into its template, script,
// script-setup, and style sections. The tokenizer walks top-level
// blocks only; nested <template> elements inside the template block are
// tracked by depth and kept verbatim. Malformed block boundaries return
// a *ParseError carrying every diagnostic collected.
func Parse(path string, content []byte) (*Descriptor, error) {
	tokenizer := html.NewTokenizer(bytes.NewReader(content))
	descriptor := &Descriptor{Path: path}

	var diagnostics []string
	var buf bytes.Buffer
	block := ""         // current top-level block tag, "" between blocks
	setup := false      // current script block carries the setup attribute
	templateDepth := 0  // nesting of <template> inside the template block

scan:
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			if err := tokenizer.Err(); err != io.EOF {
				diagnostics = append(diagnostics, err.Error())
			}
			break
		}
		raw := string(tokenizer.Raw())
		token := tokenizer.Token()

		switch block {
		case "":
			switch tokenType {
			case html.StartTagToken:
				switch token.Data {
				case "template":
					block = "template"
					templateDepth = 1
					buf.Reset()
				case "script":
					block = "script"
					setup = hasAttr(token, "setup")
					buf.Reset()
				case "style":
					block = "style"
					buf.Reset()
				}
			case html.EndTagToken:
				diagnostics = append(diagnostics, fmt.Sprintf("unexpected closing </%s> outside any block", token.Data))
				break scan
			}

		case "template":
			switch {
			case tokenType == html.StartTagToken && token.Data == "template":
				templateDepth++
				buf.WriteString(raw)
			case tokenType == html.EndTagToken && token.Data == "template":
				templateDepth--
				if templateDepth == 0 {
					descriptor.Template = buf.String()
					block = ""
					continue
				}
				buf.WriteString(raw)
			default:
				buf.WriteString(raw)
			}

		case "script":
			switch tokenType {
			case html.TextToken:
				buf.WriteString(raw)
			case html.EndTagToken:
				if token.Data != "script" {
					diagnostics = append(diagnostics, fmt.Sprintf("unexpected </%s> inside <script> block", token.Data))
					break scan
				}
				if setup {
					if descriptor.ScriptSetup != "" {
						diagnostics = append(diagnostics, "duplicate <script setup> block")
						break scan
					}
					descriptor.ScriptSetup = buf.String()
				} else {
					if descriptor.Script != "" {
						diagnostics = append(diagnostics, "duplicate <script> block")
						break scan
					}
					descriptor.Script = buf.String()
				}
				block = ""
			}

		case "style":
			switch tokenType {
			case html.TextToken:
				buf.WriteString(raw)
			case html.EndTagToken:
				if token.Data != "style" {
					diagnostics = append(diagnostics, fmt.Sprintf("unexpected </%s> inside <style> block", token.Data))
					break scan
				}
				descriptor.Styles = append(descriptor.Styles, buf.String())
				block = ""
			}
		}
	}

	if block != "" {
		diagnostics = append(diagnostics, fmt.Sprintf("unclosed <%s> block", block))
	}
	if len(diagnostics) > 0 {
		return nil, &ParseError{Path: path, Diagnostics: diagnostics}
	}
	return descriptor, nil
}

func hasAttr(token html.Token, name string) bool {
	for _, attr := range token.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}
