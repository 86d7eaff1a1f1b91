package util

import (
	"go/ast"
	"strings"
)

// DirectivePrefix marks tsgen directives inside Go doc comments, e.g. //tsgen:ignore
const DirectivePrefix = "//tsgen:"

// DocText extracts the prose of a doc comment, one space between lines.
// Directive lines are left out.
func DocText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}

	var lines []string
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, DirectivePrefix) {
			continue
		}
		if text := CleanCommentText(c.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, " ")
}

// Directives returns the //tsgen:<name> [arg] lines of a doc comment keyed by name.
// A directive without an argument maps to the empty string.
func Directives(doc *ast.CommentGroup) map[string]string {
	if doc == nil {
		return nil
	}

	var out map[string]string
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
		if !ok {
			continue
		}
		name, arg, _ := strings.Cut(rest, " ")
		if name == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[name] = strings.TrimSpace(arg)
	}
	return out
}

// CleanCommentText removes comment markers and trims whitespace
func CleanCommentText(text string) string {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}
