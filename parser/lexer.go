package parser

import (
	"go/token"
	"strings"
	"text/scanner"
)

// tok is one lexed token. Punctuation is one rune per token: :: is two ':'
// and >> is two '>', which keeps nested generics trivial to close.
type tok struct {
	kind rune
	text string
	// pos is the 1-based offset of the token, usable as a token.Pos
	pos token.Pos
	end token.Pos
	// spaceBefore is set if whitespace separates this token from the previous one
	spaceBefore bool
}

const (
	tokEOF    = scanner.EOF
	tokIdent  = scanner.Ident
	tokInt    = scanner.Int
	tokFloat  = scanner.Float
	tokString = scanner.String
	tokRaw    = scanner.RawString
)

func lex(src string) ([]tok, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	// no ScanChars: a quote starts a lifetime, never a char literal
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings | scanner.ScanRawStrings | scanner.SkipComments | scanner.ScanComments
	var lexErr error
	s.Error = func(s *scanner.Scanner, msg string) {
		if lexErr == nil {
			lexErr = &ParseError{Offset: s.Position.Offset, Msg: msg}
		}
	}

	var toks []tok
	prevEnd := -1
	for {
		kind := s.Scan()
		offset := s.Position.Offset
		text := s.TokenText()
		toks = append(toks, tok{
			kind:        kind,
			text:        text,
			pos:         token.Pos(offset + 1),
			end:         token.Pos(offset + 1 + len(text)),
			spaceBefore: prevEnd >= 0 && offset > prevEnd,
		})
		if lexErr != nil {
			return nil, lexErr
		}
		if kind == tokEOF {
			return toks, nil
		}
		prevEnd = offset + len(text)
	}
}
