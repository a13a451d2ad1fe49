// Package reader turns a stream of tokens into Scheme values, one datum
// per call, per spec.md §4.3: numeric tokens become integers or floats,
// boolean tokens the two singletons, symbol tokens interned symbols,
// "'" sugars to (quote X), "(" opens a list with an optional dotted
// tail, and end of input before a datum starts yields the eof-object.
package reader

import (
	"io"

	"github.com/leinonen/goscheme/pkg/scheme"
	"github.com/leinonen/goscheme/pkg/tokenizer"
)

var quoteSym = scheme.Intern("quote")

// Reader reads successive data from an underlying token stream,
// transparently pulling more input lines as a single datum spans them.
type Reader struct {
	tok     *tokenizer.Tokenizer
	pending []tokenizer.Token
	pos     int
	atEOF   bool
}

// New wraps src (typically a file or the REPL's stdin) for reading.
func New(src io.Reader) *Reader {
	return &Reader{tok: tokenizer.New(src)}
}

// Tokenizer exposes the underlying tokenizer so callers can set its Warn
// hook (tokenizer warnings are printed, not raised, per spec.md §7).
func (r *Reader) Tokenizer() *tokenizer.Tokenizer {
	return r.tok
}

// fill ensures there is at least one pending token, unless the
// underlying source is exhausted, by pulling further lines.
func (r *Reader) fill() error {
	for r.pos >= len(r.pending) {
		if r.atEOF {
			return nil
		}
		line, err := r.tok.NextLine()
		if err == io.EOF {
			r.atEOF = true
			return nil
		}
		if err != nil {
			return err
		}
		r.pending = line
		r.pos = 0
	}
	return nil
}

func (r *Reader) current() (*tokenizer.Token, error) {
	if err := r.fill(); err != nil {
		return nil, err
	}
	if r.pos >= len(r.pending) {
		return nil, nil
	}
	return &r.pending[r.pos], nil
}

func (r *Reader) pop() (tokenizer.Token, error) {
	tok, err := r.current()
	if err != nil {
		return tokenizer.Token{}, err
	}
	t := *tok
	r.pos++
	return t, nil
}

// Read returns the next datum, or scheme.EOF once the source is
// exhausted before a new datum begins.
func (r *Reader) Read() (scheme.Value, error) {
	cur, err := r.current()
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return scheme.EOF, nil
	}

	tok, err := r.pop()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case tokenizer.NUMERAL:
		switch v := tok.Value.(type) {
		case int64:
			return scheme.Integer(v), nil
		case float64:
			return scheme.Float(v), nil
		}
		return nil, scheme.NewError("malformed list")

	case tokenizer.BOOLEAN:
		if tok.Value.(bool) {
			return scheme.True, nil
		}
		return scheme.False, nil

	case tokenizer.SYMBOL:
		return scheme.Intern(tok.Value.(string)), nil

	case tokenizer.QUOTE:
		datum, err := r.Read()
		if err != nil {
			return nil, err
		}
		if datum == scheme.EOF {
			return nil, scheme.NewError("unexpected EOF")
		}
		return scheme.NewList(quoteSym, datum), nil

	case tokenizer.LPAREN:
		return r.readTail()

	default:
		return nil, scheme.NewError("unexpected token")
	}
}

// readTail reads the remainder of a list or dotted pair starting just
// after its opening "(": the items up to the matching ")", recognizing
// a single "." before the final item as a dotted-pair marker.
func (r *Reader) readTail() (scheme.Value, error) {
	cur, err := r.current()
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, scheme.NewError("unexpected EOF")
	}

	switch cur.Kind {
	case tokenizer.RPAREN:
		if _, err := r.pop(); err != nil {
			return nil, err
		}
		return scheme.Nil, nil

	case tokenizer.DOT:
		if _, err := r.pop(); err != nil {
			return nil, err
		}
		rest, err := r.readTail()
		if err != nil {
			return nil, err
		}
		restPair, ok := rest.(*scheme.Pair)
		if !ok || !scheme.IsNull(restPair.Cdr) {
			return nil, scheme.NewError("malformed pair")
		}
		return restPair.Car, nil

	default:
		item, err := r.Read()
		if err != nil {
			return nil, err
		}
		if item == scheme.EOF {
			return nil, scheme.NewError("unexpected EOF")
		}
		rest, err := r.readTail()
		if err != nil {
			return nil, err
		}
		return scheme.Cons(item, rest), nil
	}
}
