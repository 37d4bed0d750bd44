package steamclient

import (
	"strings"

	"github.com/teknology-hub/tek-game-runtime/errors"
)

// VDFNode is one object in a Valve KeyValues (VDF) text document: string
// attributes plus nested child objects.
type VDFNode struct {
	Attribs map[string]string
	Childs  map[string]*VDFNode
}

// Attrib reads a string attribute along a child path: the last element is
// the attribute key, everything before it names child objects.
func (n *VDFNode) Attrib(path ...string) (string, bool) {
	if n == nil || len(path) == 0 {
		return "", false
	}
	for _, key := range path[:len(path)-1] {
		n = n.Childs[key]
		if n == nil {
			return "", false
		}
	}
	value, ok := n.Attribs[path[len(path)-1]]
	return value, ok
}

// ParseVDF parses a KeyValues text document. The top-level object's body is
// returned; its name is ignored.
func ParseVDF(data []byte) (*VDFNode, error) {
	p := &vdfParser{input: string(data)}
	// Root name, then root body.
	if _, err := p.token(); err != nil {
		return nil, err
	}
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	return p.object()
}

type vdfParser struct {
	input string
	pos   int
}

func (p *vdfParser) errInvalid(detail string) error {
	return errors.New(errors.PhaseRefresh, errors.KindInvalidData).
		Detail("VDF at offset %d: %s", p.pos, detail).Build()
}

func (p *vdfParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		case '/':
			// Line comment.
			if p.pos+1 < len(p.input) && p.input[p.pos+1] == '/' {
				for p.pos < len(p.input) && p.input[p.pos] != '\n' {
					p.pos++
				}
				continue
			}
			return
		default:
			return
		}
	}
}

// token reads a quoted or bare string, or a single brace character.
func (p *vdfParser) token() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return "", p.errInvalid("unexpected end of document")
	}
	switch c := p.input[p.pos]; c {
	case '{', '}':
		p.pos++
		return string(c), nil
	case '"':
		p.pos++
		var sb strings.Builder
		for p.pos < len(p.input) {
			c := p.input[p.pos]
			switch c {
			case '"':
				p.pos++
				return sb.String(), nil
			case '\\':
				p.pos++
				if p.pos >= len(p.input) {
					return "", p.errInvalid("unterminated escape")
				}
				switch e := p.input[p.pos]; e {
				case 'n':
					sb.WriteByte('\n')
				case 't':
					sb.WriteByte('\t')
				default:
					sb.WriteByte(e)
				}
				p.pos++
			default:
				sb.WriteByte(c)
				p.pos++
			}
		}
		return "", p.errInvalid("unterminated string")
	default:
		start := p.pos
		for p.pos < len(p.input) && !isVDFDelim(p.input[p.pos]) {
			p.pos++
		}
		return p.input[start:p.pos], nil
	}
}

func isVDFDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '"':
		return true
	}
	return false
}

func (p *vdfParser) expect(c byte) error {
	tok, err := p.token()
	if err != nil {
		return err
	}
	if tok != string(c) {
		return p.errInvalid("expected " + string(c))
	}
	return nil
}

// object parses key/value and key/child pairs until the closing brace.
func (p *vdfParser) object() (*VDFNode, error) {
	node := &VDFNode{
		Attribs: make(map[string]string),
		Childs:  make(map[string]*VDFNode),
	}
	for {
		key, err := p.token()
		if err != nil {
			return nil, err
		}
		switch key {
		case "}":
			return node, nil
		case "{":
			return nil, p.errInvalid("object in key position")
		}
		value, err := p.token()
		if err != nil {
			return nil, err
		}
		switch value {
		case "{":
			child, err := p.object()
			if err != nil {
				return nil, err
			}
			node.Childs[key] = child
		case "}":
			return nil, p.errInvalid("key without value")
		default:
			node.Attribs[key] = value
		}
	}
}
