package descriptor

import (
	"strings"
	"unicode"

	"github.com/teranos/tsgen/errors"
)

// ParseTypeExpr parses a compact type expression as used in catalog files:
//
//	int32            primitive kind
//	Point            user type, namespace left empty for the caller to resolve
//	geo.Point        qualified user type (split at the last dot)
//	Point[]          collection
//	int32?           nullable value
//	map<string, T>   dictionary
//	Page<Point>      generic user type
//	(int32?)[]       grouping
//
// The result is unresolved: every non-primitive name is a RefUser or RefGeneric.
// Callers turn enumeration names and type parameters into RefEnum/RefTypeParam.
func ParseTypeExpr(expr string) (TypeReference, error) {
	p := &exprParser{src: expr}
	ref, err := p.parseExpr()
	if err != nil {
		return TypeReference{}, errors.Wrapf(err, "invalid type expression %q", expr)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return TypeReference{}, errors.Newf("invalid type expression %q: unexpected %q at offset %d", expr, p.src[p.pos:], p.pos)
	}
	return ref, nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return errors.Newf("expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

func (p *exprParser) parseExpr() (TypeReference, error) {
	ref, err := p.parsePrimary()
	if err != nil {
		return TypeReference{}, err
	}

	for {
		p.skipSpace()
		switch {
		case strings.HasPrefix(p.src[p.pos:], "[]"):
			p.pos += 2
			ref = CollectionOf(ref)
		case p.peek() == '?':
			p.pos++
			ref = NullableOf(ref)
		default:
			return ref, nil
		}
	}
}

func (p *exprParser) parsePrimary() (TypeReference, error) {
	p.skipSpace()

	if p.peek() == '(' {
		p.pos++
		ref, err := p.parseExpr()
		if err != nil {
			return TypeReference{}, err
		}
		return ref, p.expect(')')
	}

	name := p.ident()
	if name == "" {
		return TypeReference{}, errors.Newf("expected type name at offset %d", p.pos)
	}

	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		args, err := p.parseArgs()
		if err != nil {
			return TypeReference{}, err
		}
		if name == "map" {
			if len(args) != 2 {
				return TypeReference{}, errors.Newf("map takes 2 type arguments, got %d", len(args))
			}
			return MapOf(args[0], args[1]), nil
		}
		ns, short := splitQualified(name)
		return GenericOf(short, ns, args...), nil
	}

	if IsPrimitiveKind(name) {
		return Primitive(name), nil
	}
	ns, short := splitQualified(name)
	return UserType(short, ns), nil
}

// parseArgs parses "T1, T2>" after the opening angle bracket
func (p *exprParser) parseArgs() ([]TypeReference, error) {
	var args []TypeReference
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return args, nil
		default:
			return nil, errors.Newf("expected ',' or '>' at offset %d", p.pos)
		}
	}
}

func (p *exprParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '/' || r == '-' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// splitQualified splits "a.b.Name" into ("a.b", "Name")
func splitQualified(name string) (namespace, short string) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
