package syntax

import "io"

// Maximum number of errors before aborting parse.
const maxErrors = 10

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on declaration files.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	// Error handling
	errh   func(pos Pos, msg string)
	errcnt int
	first  error // first error encountered
	abort  bool  // set to true when error limit reached
}

// NewParser creates a new Parser for the given source.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh}
	scanErrh := func(line, col uint32, msg string) {
		p.errorAt(NewPos(filename, line, col), msg)
	}
	p.scanner = NewScanner(filename, src, scanErrh)
	p.next()
	return p
}

// SetASIEnabled passes the ASI setting to the underlying scanner.
func (p *Parser) SetASIEnabled(enabled bool) {
	p.scanner.SetASIEnabled(enabled)
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error and skips to a synchronization point.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String())
		p.advance()
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token.
func (p *Parser) syntaxError(msg string) {
	if p.tok == _EOF {
		msg += ", found EOF"
	} else if p.tok == _Name || p.tok == _Literal {
		msg += ", found " + p.lit
	} else {
		msg += ", found '" + p.tok.String() + "'"
	}
	p.errorAt(p.pos, msg)
}

// errorAt records an error at pos. Scanner errors arrive here too.
func (p *Parser) errorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}

	if p.errcnt >= maxErrors {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = _EOF
	}
}

// syncTokens are the tokens advance stops at.
var syncTokens = map[Token]bool{
	_Semi:    true,
	_Rbrace:  true,
	_Package: true,
	_Type:    true,
	_Var:     true,
	_EOF:     true,
}

// advance skips tokens until it finds a synchronization point.
// A terminating semicolon or brace is consumed to avoid repeated errors
// at the same position; keywords are left for the caller.
func (p *Parser) advance() {
	for !syncTokens[p.tok] {
		p.next()
	}
	if p.tok == _Semi || p.tok == _Rbrace {
		p.next()
	}
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete declaration file and returns the AST.
func (p *Parser) Parse() *File {
	f := &File{}
	f.pos = p.pos

	p.want(_Package)
	f.PkgName = p.name()
	p.want(_Semi)

	for !p.abort && p.tok != _EOF {
		if p.got(_Semi) {
			continue
		}
		if d := p.decl(); d != nil {
			f.Decls = append(f.Decls, d)
		}
	}

	return f
}

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: p.lit}
	n.pos = p.pos
	if p.tok != _Name {
		p.syntaxError("expected identifier")
		n.Value = "_"
		return n
	}
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Declarations

// decl parses a top-level declaration.
func (p *Parser) decl() Decl {
	switch p.tok {
	case _Type:
		return p.typeDecl()
	case _Var:
		return p.varDecl()
	default:
		p.syntaxError("expected declaration")
		p.next()
		p.advance()
		return nil
	}
}

// typeDecl parses: type Name Type or type Name = Type
func (p *Parser) typeDecl() *TypeDecl {
	d := &TypeDecl{}
	d.pos = p.pos

	p.want(_Type)
	d.Name = p.name()
	d.Alias = p.got(_Assign)
	d.Type = p.type_()
	p.want(_Semi)

	return d
}

// varDecl parses: var Name Type
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	p.want(_Var)
	d.Name = p.name()
	d.Type = p.type_()
	p.want(_Semi)

	return d
}

// ----------------------------------------------------------------------------
// Type expressions

// type_ parses a type expression.
func (p *Parser) type_() Expr {
	switch p.tok {
	case _Name:
		return p.name()

	case _Star:
		pt := &PointerType{}
		pt.pos = p.pos
		p.next()
		pt.Base = p.type_()
		return pt

	case _Lbrack:
		at := &ArrayType{}
		at.pos = p.pos
		at.Len, at.Elem = p.sizedElem()
		return at

	case _Vector:
		vt := &VectorType{}
		vt.pos = p.pos
		p.next()
		if p.tok != _Lbrack {
			p.syntaxError("expected [ after vector")
			return p.badType(vt.pos)
		}
		vt.Len, vt.Elem = p.sizedElem()
		return vt

	case _Struct:
		return p.structType()

	default:
		p.syntaxError("expected type")
		return p.badType(p.pos)
	}
}

// badType returns a placeholder name used for error recovery.
func (p *Parser) badType(pos Pos) Expr {
	n := &Name{Value: "_"}
	n.pos = pos
	return n
}

// sizedElem parses [N]Elem, shared by array and vector types.
func (p *Parser) sizedElem() (*BasicLit, Expr) {
	p.want(_Lbrack)
	var n *BasicLit
	if p.tok == _Literal {
		n = &BasicLit{Value: p.lit, Kind: p.scanner.LitKind()}
		n.pos = p.pos
		p.next()
	} else {
		p.syntaxError("expected integer length")
	}
	p.want(_Rbrack)
	return n, p.type_()
}

// structType parses struct { Fields... }
func (p *Parser) structType() Expr {
	st := &StructType{}
	st.pos = p.pos

	p.want(_Struct)
	p.want(_Lbrace)

	for !p.abort && p.tok != _Rbrace && p.tok != _EOF {
		if p.got(_Semi) {
			continue
		}
		st.Fields = append(st.Fields, p.fieldDecl())
	}

	if p.tok != _Rbrace {
		p.syntaxError("expected }")
		return st
	}
	p.next()
	return st
}

// fieldDecl parses a struct field: Name Type
func (p *Parser) fieldDecl() *Field {
	f := &Field{}
	f.pos = p.pos
	f.Name = p.name()
	f.Type = p.type_()
	if p.tok != _Rbrace {
		p.want(_Semi)
	}
	return f
}
