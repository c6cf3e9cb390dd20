package vdf

import (
	"strings"
)

// tokenizer is a character-fed state machine, grounded on
// original_source/src/scvdf.py's tokenizer states (Begin, Quoted, Escaped,
// Unquoted, Nesting, Denesting, Semicomment, Comment, Finish, Error). Each
// state other than Nesting and Denesting is a distinct Go type
// implementing tokenState; beginState emits brace tokens directly. This
// follows the
// per-state-type decomposition used by ansi.go's ansiState handling in the
// teacher and by gdamore/tcell's escape-sequence scanner.
type tokenizer struct {
	state   tokenState
	buf     strings.Builder
	pending []token
	line    int
	col     int
	pushed  bool
	pushCh  rune
	done    bool
	err     error
}

func newTokenizer() *tokenizer {
	t := &tokenizer{line: 1, col: 0}
	t.state = beginState{}
	return t
}

// tokenState is implemented by each tokenizer state. feed consumes one rune
// and returns the next state. A state may request "pushback" (re-examine
// the same rune in the new state) by returning again=true.
type tokenState interface {
	feed(t *tokenizer, ch rune, eof bool) (next tokenState, again bool)
}

func (t *tokenizer) advance() {
	t.col++
}

func (t *tokenizer) newline() {
	t.line++
	t.col = 0
}

func (t *tokenizer) emit(kind tokenKind) {
	t.pending = append(t.pending, token{kind: kind, text: t.buf.String(), line: t.line, col: t.col})
	t.buf.Reset()
}

func (t *tokenizer) emitStructural(kind tokenKind, text string) {
	t.pending = append(t.pending, token{kind: kind, text: text, line: t.line, col: t.col})
}

// Feed pushes one rune through the state machine, looping internally while
// states request pushback of the same character.
func (t *tokenizer) Feed(ch rune) error {
	if t.err != nil {
		return t.err
	}
	if ch == '\n' {
		defer t.newline()
	} else {
		defer t.advance()
	}
	for {
		next, again := t.state.feed(t, ch, false)
		t.state = next
		if errState, ok := next.(errorState); ok {
			t.err = errState.err
			return t.err
		}
		if !again {
			return nil
		}
	}
}

// Finish signals end of input.
func (t *tokenizer) Finish() error {
	if t.err != nil {
		return t.err
	}
	next, _ := t.state.feed(t, 0, true)
	t.state = next
	if errState, ok := next.(errorState); ok {
		t.err = errState.err
		return t.err
	}
	t.done = true
	return nil
}

// Tokens drains and returns all tokens produced so far.
func (t *tokenizer) Tokens() []token {
	out := t.pending
	t.pending = nil
	return out
}

type errorState struct{ err error }

func (e errorState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) { return e, false }

// beginState: skip whitespace, dispatch on first meaningful character.
type beginState struct{}

func (beginState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	if eof {
		t.emitStructural(tokEOF, "")
		return finishState{}, false
	}
	switch {
	case ch == '"':
		return quotedState{}, false
	case ch == '{':
		t.emitStructural(tokOpenBrace, "{")
		return beginState{}, false
	case ch == '}':
		t.emitStructural(tokCloseBrace, "}")
		return beginState{}, false
	case ch == '/':
		return semicommentState{}, false
	case isSpace(ch):
		return beginState{}, false
	default:
		t.buf.WriteRune(ch)
		return unquotedState{}, false
	}
}

// quotedState: inside a double-quoted string.
type quotedState struct{}

func (quotedState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	if eof {
		t.emit(tokString)
		t.emitStructural(tokEOF, "")
		return finishState{}, false
	}
	switch ch {
	case '"':
		t.emit(tokString)
		return beginState{}, false
	case '\\':
		return escapedState{}, false
	default:
		t.buf.WriteRune(ch)
		return quotedState{}, false
	}
}

// escapedState: one character after a backslash inside a quoted string.
type escapedState struct{}

func (escapedState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	if eof {
		t.emit(tokString)
		t.emitStructural(tokEOF, "")
		return finishState{}, false
	}
	switch ch {
	case 'n':
		t.buf.WriteRune('\n')
	case 't':
		t.buf.WriteRune('\t')
	case '\\', '"':
		t.buf.WriteRune(ch)
	default:
		t.buf.WriteRune('\\')
		t.buf.WriteRune(ch)
	}
	return quotedState{}, false
}

// unquotedState: a bareword token outside quotes, terminated by
// whitespace or a structural character. The terminating character is
// pushed back so beginState can reprocess it.
type unquotedState struct{}

func (unquotedState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	if eof {
		t.emit(tokString)
		t.emitStructural(tokEOF, "")
		return finishState{}, false
	}
	if isSpace(ch) || ch == '{' || ch == '}' || ch == '"' {
		t.emit(tokString)
		return beginState{}, true
	}
	t.buf.WriteRune(ch)
	return unquotedState{}, false
}

// semicommentState: saw a single '/', deciding whether this is a "//"
// comment or a literal slash starting a bareword.
type semicommentState struct{}

func (semicommentState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	if eof {
		t.buf.WriteRune('/')
		t.emit(tokString)
		t.emitStructural(tokEOF, "")
		return finishState{}, false
	}
	if ch == '/' {
		return commentState{}, false
	}
	t.buf.WriteRune('/')
	return unquotedState{}, true
}

// commentState: consume through end of line.
type commentState struct{}

func (commentState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	if eof {
		t.emitStructural(tokEOF, "")
		return finishState{}, false
	}
	if ch == '\n' {
		return beginState{}, false
	}
	return commentState{}, false
}

type finishState struct{}

func (finishState) feed(t *tokenizer, ch rune, eof bool) (tokenState, bool) {
	return finishState{}, false
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
