package javadoc

import (
	"strings"
	"unicode"
)

// Parser is a recursive-descent parser for Javadoc comments. It is tolerant:
// malformed input degrades to Text or Erroneous nodes and never fails.
type Parser struct {
	input []rune
	pos   int
	len   int
}

// Parse parses a Javadoc comment string and returns a DocComment AST.
// The input may or may not carry the /** ... */ delimiters and per-line
// asterisk prefixes.
func Parse(comment string) *DocComment {
	p := &Parser{input: []rune(comment)}
	p.len = len(p.input)
	p.skipCommentStart()

	doc := &DocComment{}
	doc.Body = p.parseContent(false)
	doc.BlockTags = p.parseBlockTags()
	return doc
}

func (p *Parser) skipCommentStart() {
	p.skipWhitespace()
	if p.match("/**") {
		p.advance(3)
	}
	p.skipLinePrefix()
}

// skipLinePrefix skips leading whitespace and a single asterisk at the start of a line.
func (p *Parser) skipLinePrefix() {
	p.skipHorizontalWhitespace()
	if p.peek() == '*' && p.peekAt(1) != '/' {
		p.advance(1)
		if p.peek() == ' ' {
			p.advance(1)
		}
	}
}

// parseContent parses rich text content (text, HTML, inline tags).
// If inInlineTag is true, parsing stops at an unmatched '}'.
func (p *Parser) parseContent(inInlineTag bool) []Node {
	var nodes []Node
	var text strings.Builder
	depth := 0

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Text{Content: text.String()})
			text.Reset()
		}
	}

	for p.pos < p.len {
		ch := p.peek()

		if ch == '*' && p.peekAt(1) == '/' {
			break
		}
		if !inInlineTag && p.atBlockTag() {
			break
		}

		switch ch {
		case '\n', '\r':
			text.WriteRune('\n')
			p.advance(1)
			if ch == '\r' && p.peek() == '\n' {
				p.advance(1)
			}
			p.skipLinePrefix()

		case '{':
			if p.peekAt(1) == '@' {
				flush()
				if node := p.parseInlineTag(); node != nil {
					nodes = append(nodes, node)
				}
			} else {
				if inInlineTag {
					depth++
				}
				text.WriteRune(ch)
				p.advance(1)
			}

		case '}':
			if inInlineTag {
				if depth == 0 {
					flush()
					return nodes
				}
				depth--
			}
			text.WriteRune(ch)
			p.advance(1)

		case '<':
			flush()
			if node := p.parseHTML(); node != nil {
				nodes = append(nodes, node)
			}

		case '&':
			flush()
			if node := p.parseEntity(); node != nil {
				nodes = append(nodes, node)
			}

		default:
			text.WriteRune(ch)
			p.advance(1)
		}
	}

	flush()
	return nodes
}

// atBlockTag reports whether the cursor sits on a block tag, i.e. an '@'
// preceded only by whitespace and the line-prefix asterisk since the last newline.
func (p *Parser) atBlockTag() bool {
	if p.peek() != '@' {
		return false
	}
	i := p.pos - 1
	for i >= 0 {
		ch := p.input[i]
		if ch == '\n' || ch == '\r' {
			return true
		}
		if ch == '*' {
			j := i - 1
			for j >= 0 && (p.input[j] == ' ' || p.input[j] == '\t') {
				j--
			}
			if j < 0 || p.input[j] == '\n' || p.input[j] == '\r' {
				return true
			}
		}
		if ch != ' ' && ch != '\t' {
			return false
		}
		i--
	}
	return true
}

func (p *Parser) parseInlineTag() Node {
	if !p.match("{@") {
		return nil
	}
	p.advance(2)

	name := p.readTagName()
	if name == "" {
		return Erroneous{Content: "{@", Message: "missing tag name"}
	}
	p.skipHorizontalWhitespace()

	var node Node
	switch name {
	case "code":
		node = Code{Content: p.readBalanced()}
	case "literal":
		node = Literal{Content: p.readBalanced()}
	case "link":
		node = p.parseLinkTag(false)
	case "linkplain":
		node = p.parseLinkTag(true)
	case "inheritDoc":
		node = InheritDoc{Reference: p.readReference()}
	default:
		node = UnknownInline{Name: name, Content: p.readBalanced()}
	}

	if p.peek() == '}' {
		p.advance(1)
	}
	return node
}

func (p *Parser) parseLinkTag(plain bool) Node {
	ref := p.readReference()
	p.skipHorizontalWhitespace()

	var label []Node
	if p.peek() != '}' {
		label = p.parseContent(true)
	}
	return Link{Reference: ref, Label: label, Plain: plain}
}

func (p *Parser) parseHTML() Node {
	if p.match("<!--") {
		return p.parseHTMLComment()
	}
	p.advance(1)

	if p.peek() == '/' {
		p.advance(1)
		name := p.readHTMLName()
		p.skipHorizontalWhitespace()
		if p.peek() == '>' {
			p.advance(1)
		}
		return EndElement{Name: name}
	}

	name := p.readHTMLName()
	if name == "" {
		return Text{Content: "<"}
	}

	attrs := p.parseHTMLAttributes()

	selfClose := false
	p.skipHorizontalWhitespace()
	if p.peek() == '/' {
		selfClose = true
		p.advance(1)
	}
	if p.peek() == '>' {
		p.advance(1)
	}
	return StartElement{Name: name, Attributes: attrs, SelfClose: selfClose}
}

func (p *Parser) parseHTMLComment() Node {
	p.advance(4)
	start := p.pos
	for p.pos < p.len {
		if p.match("-->") {
			content := string(p.input[start:p.pos])
			p.advance(3)
			return Text{Content: "<!--" + content + "-->"}
		}
		p.advance(1)
	}
	return Text{Content: "<!--" + string(p.input[start:])}
}

func (p *Parser) parseHTMLAttributes() []Attribute {
	var attrs []Attribute
	for {
		p.skipWhitespace()
		if p.peek() == '>' || p.peek() == '/' || p.pos >= p.len {
			break
		}
		name := p.readHTMLName()
		if name == "" {
			break
		}
		p.skipWhitespace()

		var value string
		if p.peek() == '=' {
			p.advance(1)
			p.skipWhitespace()
			if p.peek() == '"' || p.peek() == '\'' {
				value = p.readQuoted()
			} else {
				value = p.readAttrValue()
			}
		}
		attrs = append(attrs, Attribute{Name: name, Value: value})
	}
	return attrs
}

func (p *Parser) parseEntity() Node {
	p.advance(1)
	start := p.pos
	if p.peek() == '#' {
		p.advance(1)
		if p.peek() == 'x' || p.peek() == 'X' {
			p.advance(1)
		}
		for isHexDigit(p.peek()) {
			p.advance(1)
		}
	} else {
		for unicode.IsLetter(p.peek()) || isDigit(p.peek()) {
			p.advance(1)
		}
	}

	name := string(p.input[start:p.pos])
	if p.peek() == ';' && name != "" {
		p.advance(1)
		return Entity{Name: name}
	}
	return Text{Content: "&" + name}
}

func (p *Parser) parseBlockTags() []Node {
	var tags []Node
	for p.pos < p.len {
		p.skipWhitespace()
		p.skipLinePrefix()
		if p.match("*/") {
			break
		}
		if p.peek() != '@' {
			p.advance(1)
			continue
		}
		p.advance(1)

		name := p.readTagName()
		if name == "" {
			continue
		}
		p.skipHorizontalWhitespace()

		switch name {
		case "param":
			tags = append(tags, p.parseParamTag())
		case "return":
			tags = append(tags, Return{Description: p.parseContent(false)})
		case "throws", "exception":
			exc := p.readReference()
			p.skipHorizontalWhitespace()
			tags = append(tags, Throws{Exception: exc, Description: p.parseContent(false)})
		default:
			tags = append(tags, UnknownBlock{Name: name, Content: p.parseContent(false)})
		}
	}
	return tags
}

func (p *Parser) parseParamTag() Node {
	isTypeParam := false
	if p.peek() == '<' {
		isTypeParam = true
		p.advance(1)
	}
	name := p.readIdentifier()
	if isTypeParam && p.peek() == '>' {
		p.advance(1)
	}
	p.skipHorizontalWhitespace()
	return Param{Name: name, IsTypeParam: isTypeParam, Description: p.parseContent(false)}
}

// Cursor helpers.

func (p *Parser) peek() rune {
	if p.pos >= p.len {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) peekAt(offset int) rune {
	pos := p.pos + offset
	if pos >= p.len || pos < 0 {
		return 0
	}
	return p.input[pos]
}

func (p *Parser) advance(n int) {
	p.pos += n
	if p.pos > p.len {
		p.pos = p.len
	}
}

func (p *Parser) match(s string) bool {
	if p.pos+len(s) > p.len {
		return false
	}
	for i, ch := range s {
		if p.input[p.pos+i] != ch {
			return false
		}
	}
	return true
}

func (p *Parser) skipWhitespace() {
	for p.pos < p.len && isWhitespace(p.peek()) {
		p.advance(1)
	}
}

func (p *Parser) skipHorizontalWhitespace() {
	for p.peek() == ' ' || p.peek() == '\t' {
		p.advance(1)
	}
}

func (p *Parser) readTagName() string {
	start := p.pos
	for isIdentifierPart(p.peek()) {
		p.advance(1)
	}
	return string(p.input[start:p.pos])
}

func (p *Parser) readIdentifier() string {
	start := p.pos
	if isIdentifierStart(p.peek()) {
		p.advance(1)
		for isIdentifierPart(p.peek()) {
			p.advance(1)
		}
	}
	return string(p.input[start:p.pos])
}

// readReference reads a type or member reference like package.Class#member(params).
func (p *Parser) readReference() string {
	start := p.pos
	for p.pos < p.len {
		ch := p.peek()
		if isWhitespace(ch) || ch == '}' {
			break
		}
		p.advance(1)
	}
	return strings.TrimSpace(string(p.input[start:p.pos]))
}

func (p *Parser) readQuoted() string {
	quote := p.peek()
	p.advance(1)
	start := p.pos
	for p.pos < p.len && p.peek() != quote {
		if p.peek() == '\\' && p.peekAt(1) == quote {
			p.advance(1)
		}
		p.advance(1)
	}
	result := string(p.input[start:p.pos])
	if p.peek() == quote {
		p.advance(1)
	}
	return result
}

func (p *Parser) readAttrValue() string {
	start := p.pos
	for p.pos < p.len {
		ch := p.peek()
		if isWhitespace(ch) || ch == '>' || ch == '}' {
			break
		}
		p.advance(1)
	}
	return string(p.input[start:p.pos])
}

func (p *Parser) readHTMLName() string {
	start := p.pos
	for {
		ch := p.peek()
		if unicode.IsLetter(ch) || isDigit(ch) || ch == '-' || ch == '_' || ch == ':' {
			p.advance(1)
		} else {
			break
		}
	}
	return string(p.input[start:p.pos])
}

// readBalanced reads content until a closing '}', handling nested braces.
func (p *Parser) readBalanced() string {
	start := p.pos
	depth := 0
	for p.pos < p.len {
		ch := p.peek()
		if ch == '{' {
			depth++
		} else if ch == '}' {
			if depth == 0 {
				break
			}
			depth--
		} else if ch == '*' && p.peekAt(1) == '/' {
			break
		}
		p.advance(1)
	}
	result := string(p.input[start:p.pos])
	return strings.TrimPrefix(result, " ")
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}

func isIdentifierPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '$'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
