// Package css parses CSS fragments into ordered declaration lists.
//
// Parsing is AST-first via tree-sitter; on any syntax error the walker
// records the error position and falls back to a tolerant character-level
// tokenizer, so it always produces a (possibly empty) declaration list.
package css

import (
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// Parser handles parsing CSS with tree-sitter
type Parser struct {
	parser *sitter.Parser
}

// parserPool reuses tree-sitter parsers, which are expensive to construct
var parserPool = sync.Pool{
	New: func() interface{} {
		parser := sitter.NewParser()
		lang := sitter.NewLanguage(tree_sitter_css.Language())
		parser.SetLanguage(lang)
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// wrapper is prepended to brace-less fragments so tree-sitter sees a valid
// rule set. It contains no newline, so only first-line columns need fixing.
const wrapper = "*{"

// Parse extracts the ordered declaration list from a CSS fragment. The
// fragment may be a bare declaration list or a full rule with selector and
// braces. Parse never fails: a syntax error is reported in the result and
// declarations come from the fallback tokenizer instead.
func (p *Parser) Parse(source string) *Result {
	parseSource := source
	shift := uint32(0)
	if !strings.Contains(source, "{") {
		parseSource = wrapper + source + "}"
		shift = uint32(len(wrapper))
	}

	tree := p.parser.Parse([]byte(parseSource), nil)
	if tree == nil {
		return &Result{
			Declarations: tokenizeFallback(source),
			SyntaxErr:    &SyntaxError{Message: "failed to parse CSS"},
		}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		syntaxErr := &SyntaxError{Message: "invalid CSS syntax"}
		if errNode := findErrorNode(root); errNode != nil {
			pos := errNode.StartPosition()
			line := uint32(pos.Row)
			col := uint32(pos.Column)
			if line == 0 && col >= shift {
				col -= shift
			}
			syntaxErr.Line = line
			syntaxErr.Column = col
		}
		return &Result{
			Declarations: tokenizeFallback(source),
			SyntaxErr:    syntaxErr,
		}
	}

	result := &Result{}
	p.walkTree(root, []byte(parseSource), shift, result)
	return result
}

// walkTree recursively walks the tree collecting declarations in source order
func (p *Parser) walkTree(node *sitter.Node, source []byte, shift uint32, result *Result) {
	if node == nil {
		return
	}

	if node.Kind() == "declaration" {
		if decl, ok := extractDeclaration(node, source, shift); ok {
			result.Declarations = append(result.Declarations, decl)
		}
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		p.walkTree(node.Child(i), source, shift, result)
	}
}

// extractDeclaration pulls property and raw value text out of a declaration
// node. The value is everything between the ':' and the declaration end,
// so function expressions like rgba() or blur() survive intact.
func extractDeclaration(node *sitter.Node, source []byte, shift uint32) (Declaration, bool) {
	var propertyNode *sitter.Node
	valueStart := uint(0)

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "property_name":
			propertyNode = child
		case ":":
			valueStart = child.EndByte()
		}
	}

	if propertyNode == nil || valueStart == 0 {
		return Declaration{}, false
	}

	value := string(source[valueStart:node.EndByte()])
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";"))

	pos := propertyNode.StartPosition()
	line := uint32(pos.Row)
	col := uint32(pos.Column)
	if line == 0 && col >= shift {
		col -= shift
	}

	return Declaration{
		Property: strings.ToLower(string(source[propertyNode.StartByte():propertyNode.EndByte()])),
		Value:    value,
		Line:     line,
		Column:   col,
	}, true
}

// findErrorNode returns the first ERROR or missing node in document order
func findErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := findErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
