package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sqlMarkerPattern  = regexp.MustCompile(`(?i)\b(select|insert|update|delete|with)\b`)
	uuidMarkerPattern = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

type violation struct {
	file    string
	name    string
	line    int
	message string
}

func main() {
	flag.Parse()
	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"."}
	}

	violations, err := lint(targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
		os.Exit(1)
	}
	if len(violations) > 0 {
		fmt.Fprintln(os.Stderr, "sqllint: SQL audit marker violations")
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "  %s:%d %s (%s)\n", v.file, v.line, v.message, v.name)
		}
		os.Exit(1)
	}
}

// linter remembers where each marker was first seen so reuse across files is
// reported.
type linter struct {
	seen       map[string]violation
	violations []violation
}

func lint(targets []string) ([]violation, error) {
	l := &linter{seen: map[string]violation{}}
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if filepath.Ext(target) == ".go" {
				if err := l.lintFile(target); err != nil {
					return nil, err
				}
			}
			continue
		}
		walkErr := filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != target && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "node_modules") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			return l.lintFile(path)
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	return l.violations, nil
}

func (l *linter) lintFile(path string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return err
	}
	ast.Inspect(file, func(n ast.Node) bool {
		vs, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for _, value := range vs.Values {
			head, text, ok := stringParts(value)
			if !ok || !sqlMarkerPattern.MatchString(text) {
				continue
			}
			at := violation{
				file: path,
				line: fset.Position(value.Pos()).Line,
				name: joinNames(vs.Names),
			}
			marker := firstLine(head)
			if !uuidMarkerPattern.MatchString(marker) {
				at.message = "missing or invalid --sql <uuid> marker"
				l.violations = append(l.violations, at)
				continue
			}
			if first, dup := l.seen[marker]; dup {
				at.message = fmt.Sprintf("marker already used by %s at %s:%d", first.name, first.file, first.line)
				l.violations = append(l.violations, at)
				continue
			}
			l.seen[marker] = at
		}
		return true
	})
	return nil
}

// stringParts returns the leftmost string literal of a value and the text of
// every literal in it. Values built with + keep their marker in the leftmost
// operand; identifiers in between are fragments checked on their own.
func stringParts(expr ast.Expr) (string, string, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return "", "", false
		}
		raw, err := unquote(e.Value)
		if err != nil {
			return "", "", false
		}
		return raw, raw, true
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return "", "", false
		}
		head, left, ok := stringParts(e.X)
		if !ok {
			return "", "", false
		}
		_, right, _ := stringParts(e.Y)
		return head, left + "\n" + right, true
	case *ast.ParenExpr:
		return stringParts(e.X)
	}
	return "", "", false
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\n\r \t")
	if idx := strings.IndexAny(s, "\n\r"); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

func unquote(v string) (string, error) {
	if len(v) == 0 {
		return v, nil
	}
	if v[0] == '`' {
		return v[1 : len(v)-1], nil
	}
	return strconv.Unquote(v)
}

func joinNames(idents []*ast.Ident) string {
	parts := make([]string, 0, len(idents))
	for _, ident := range idents {
		if ident == nil {
			continue
		}
		parts = append(parts, ident.Name)
	}
	return strings.Join(parts, ",")
}
