// Package syntax implements lexical and syntactic analysis for script header
// declaration files.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of file
	_Error              // lexical error

	// Literals
	_Name    // identifier: rs_pixel_rgb, Sprite
	_Literal // integer literal

	// Operators and delimiters
	_Assign // =
	_Star   // *
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Package
	_Struct
	_Type
	_Var
	_Vector

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",
	_Star:   "*",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Package: "package",
	_Struct:  "struct",
	_Type:    "type",
	_Var:     "var",
	_Vector:  "vector",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Package && t <= _Vector
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t == _Literal
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit LitKind = iota // 123, 0x1F, 0o77, 0b1010
)

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k == IntLit {
		return "int"
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// Predeclared type names (uchar, float4, ...) are not keywords; they are
// scanned as _Name and bound in the Universe by the checker.
var keywords = map[string]Token{
	"package": _Package,
	"struct":  _Struct,
	"type":    _Type,
	"var":     _Var,
	"vector":  _Vector,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
