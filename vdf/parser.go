package vdf

import (
	"bufio"
	"io"
)

// Parse reads a VDF document from r and returns its root OrderedMultiMap.
// Grounded on original_source/src/scvdf.py's recursive-descent parser: key
// and value tokens alternate at each nesting depth; an unpaired key, a
// stray '}', or unclosed nesting at EOF are parse errors.
func Parse(r io.Reader) (*OrderedMultiMap, error) {
	t := newTokenizer()
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if ferr := t.Feed(ch); ferr != nil {
			return nil, &ParseError{t.line, t.col, ferr}
		}
	}
	if ferr := t.Finish(); ferr != nil {
		return nil, &ParseError{t.line, t.col, ferr}
	}
	return buildTree(t.Tokens())
}

// ParseString is a convenience wrapper over Parse for in-memory input.
func ParseString(s string) (*OrderedMultiMap, error) {
	return Parse(stringReader(s))
}

type stringReaderT struct {
	s   string
	pos int
}

func stringReader(s string) io.Reader { return &stringReaderT{s: s} }

func (r *stringReaderT) Read(p []byte) (int, error) {
	if r.pos >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.pos:])
	r.pos += n
	return n, nil
}

func buildTree(tokens []token) (*OrderedMultiMap, error) {
	root := NewOMM()
	stack := []*OrderedMultiMap{root}
	var pendingKey *string
	var pendingPos token

	top := func() *OrderedMultiMap { return stack[len(stack)-1] }

	for _, tk := range tokens {
		switch tk.kind {
		case tokString:
			if pendingKey == nil {
				key := tk.text
				pendingKey = &key
				pendingPos = tk
			} else {
				top().Set(*pendingKey, tk.text)
				pendingKey = nil
			}
		case tokOpenBrace:
			if pendingKey == nil {
				return nil, &ParseError{tk.line, tk.col, ErrUnpaired}
			}
			block := NewOMM()
			top().Set(*pendingKey, block)
			stack = append(stack, block)
			pendingKey = nil
		case tokCloseBrace:
			if pendingKey != nil {
				return nil, &ParseError{pendingPos.line, pendingPos.col, ErrUnpaired}
			}
			if len(stack) <= 1 {
				return nil, &ParseError{tk.line, tk.col, ErrStrayBrace}
			}
			stack = stack[:len(stack)-1]
		case tokEOF:
			if pendingKey != nil {
				return nil, &ParseError{pendingPos.line, pendingPos.col, ErrUnpaired}
			}
			if len(stack) != 1 {
				return nil, &ParseError{tk.line, tk.col, ErrNestingUnderflow}
			}
		}
	}
	return root, nil
}
