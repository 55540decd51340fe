package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on declaration files.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name or number text)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	// ASI (Automatic Semicolon Insertion) state
	nlsemi     bool // whether to insert semicolon at newline
	asiEnabled bool // whether ASI is enabled (default true)

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{
		source:     *newSource(filename, src, errh),
		asiEnabled: true,
	}
}

// SetASIEnabled enables or disables automatic semicolon insertion.
func (s *Scanner) SetASIEnabled(enabled bool) {
	s.asiEnabled = enabled
}

// Next advances to the next token.
func (s *Scanner) Next() {
	nlsemi := s.nlsemi
	s.nlsemi = false

redo:
	s.skipWhitespace()

	// Insert a semicolon before a newline or EOF if the previous
	// token may end a declaration.
	if s.asiEnabled && nlsemi && (s.ch == '\n' || s.ch < 0) {
		s.tokPos = s.pos()
		s.tok = _Semi
		if s.ch == '\n' {
			s.lit = "newline"
			s.nextch()
		} else {
			s.lit = "EOF"
		}
		return
	}

	if s.ch == '\n' {
		s.nextch()
		goto redo
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '/':
		s.nextch()
		switch s.ch {
		case '/':
			s.skipLineComment()
			goto redo
		case '*':
			if s.skipBlockComment() && nlsemi && s.asiEnabled {
				// A comment spanning lines acts like a newline.
				s.tokPos = s.pos()
				s.tok = _Semi
				s.lit = "newline"
				return
			}
			goto redo
		}
		s.error("unexpected character '/'")
		goto redo

	default:
		if !s.scanDelim() {
			s.error(fmt.Sprintf("unexpected character %q", s.ch))
			s.nextch()
			goto redo
		}
	}

	s.nlsemi = s.shouldInsertSemi()
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips space, tab, and carriage return.
// Newline is not skipped here because it may trigger ASI.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// shouldInsertSemi reports whether a semicolon should be inserted
// after the current token when followed by a newline.
func (s *Scanner) shouldInsertSemi() bool {
	switch s.tok {
	case _Name, _Literal, _Rbrace:
		return true
	}
	return false
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans an integer literal.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.kind = IntLit
	s.tok = _Literal

	if s.ch == '0' {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		switch lower(s.ch) {
		case 'x':
			s.litBuf.WriteRune(s.ch)
			s.nextch()
			s.scanDigits(isHexDigit, "hex")
		case 'o':
			s.litBuf.WriteRune(s.ch)
			s.nextch()
			s.scanDigits(isOctalDigit, "octal")
		case 'b':
			s.litBuf.WriteRune(s.ch)
			s.nextch()
			s.scanDigits(isBinaryDigit, "binary")
		default:
			s.scanDigits(isDigit, "")
		}
	} else {
		s.scanDigits(isDigit, "")
	}

	if isLetter(s.ch) || isDigit(s.ch) {
		s.error(fmt.Sprintf("invalid character %q in integer literal", s.ch))
		for isLetter(s.ch) || isDigit(s.ch) {
			s.nextch()
		}
	}

	s.lit = s.litBuf.String()
}

// scanDigits accumulates digits accepted by valid. A non-empty base name
// requires at least one digit after the base prefix.
func (s *Scanner) scanDigits(valid func(rune) bool, base string) {
	if base != "" && !valid(s.ch) {
		s.error("invalid " + base + " digit")
		return
	}
	for valid(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// scanDelim scans a single-character operator or delimiter.
// It reports false if the current character starts no token.
func (s *Scanner) scanDelim() bool {
	var tok Token
	switch s.ch {
	case '=':
		tok = _Assign
	case '*':
		tok = _Star
	case '[':
		tok = _Lbrack
	case ']':
		tok = _Rbrack
	case '{':
		tok = _Lbrace
	case '}':
		tok = _Rbrace
	case ',':
		tok = _Comma
	case ';':
		tok = _Semi
	default:
		return false
	}
	s.tok = tok
	s.lit = tok.String()
	s.nextch()
	return true
}

// skipLineComment skips a line comment; the first '/' was consumed.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* */ comment; the first '/' was consumed.
// It reports whether the comment contained a newline.
func (s *Scanner) skipBlockComment() bool {
	s.nextch() // skip *
	newline := false
	for s.ch >= 0 {
		if s.ch == '\n' {
			newline = true
		}
		if s.ch == '*' {
			s.nextch()
			if s.ch == '/' {
				s.nextch()
				return newline
			}
			continue
		}
		s.nextch()
	}
	s.error("comment not terminated")
	return newline
}
