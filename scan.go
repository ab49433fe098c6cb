// Copyright 2025 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package infiniteint

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/juju/errors"

	"github.com/juju/infiniteint/digitqueue"
)

// Scanner adapts an io.RuneScanner with a pushback stack that can
// hold more than the single rune guaranteed by bufio. Scan needs two:
// the first non-digit rune terminating a number, and a tentatively
// consumed minus sign that turned out to have no digits after it.
type Scanner struct {
	r        io.RuneScanner
	pending  []rune
	last     rune
	haveLast bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.RuneScanner) *Scanner {
	return &Scanner{r: r}
}

// NewScannerString returns a Scanner reading from s.
func NewScannerString(s string) *Scanner {
	return &Scanner{r: strings.NewReader(s)}
}

// ReadRune returns the next rune: the most recently pushed-back rune
// if any are pending, otherwise the next rune from the underlying
// scanner.
func (s *Scanner) ReadRune() (rune, int, error) {
	var r rune
	if n := len(s.pending); n > 0 {
		r = s.pending[n-1]
		s.pending = s.pending[:n-1]
	} else {
		var err error
		r, _, err = s.r.ReadRune()
		if err != nil {
			s.haveLast = false
			return 0, 0, err
		}
	}
	s.last, s.haveLast = r, true
	return r, utf8.RuneLen(r), nil
}

// PushBack returns r to the scanner so that the next ReadRune yields
// it. Successive pushbacks stack in last-in first-out order,
// mirroring stream putback.
func (s *Scanner) PushBack(r rune) {
	s.pending = append(s.pending, r)
	s.haveLast = false
}

// UnreadRune implements io.RuneScanner by pushing back the rune most
// recently returned from ReadRune. It fails if no rune has been read
// since the last pushback.
func (s *Scanner) UnreadRune() error {
	if !s.haveLast {
		return errors.New("no rune to unread")
	}
	s.pending = append(s.pending, s.last)
	s.haveLast = false
	return nil
}

// Scan reads an InfiniteInt from s. Leading whitespace is skipped, a
// minus sign is consumed tentatively, leading zero digits are
// discarded, and consecutive decimal digits are consumed up to the
// first rune that is not a digit, which is pushed back unread.
//
// When no digits are present the result is canonical zero, and a
// tentatively consumed minus sign is pushed back as well. Reaching
// the end of input is not an error.
func Scan(s *Scanner) (*InfiniteInt, error) {
	digits := digitqueue.New()
	negative := false

	// Skip leading whitespace.
	for {
		r, _, err := s.ReadRune()
		if err == io.EOF {
			return New(), nil
		} else if err != nil {
			return nil, errors.Trace(err)
		}
		if !unicode.IsSpace(r) {
			s.PushBack(r)
			break
		}
	}

	// A minus sign is consumed tentatively: it only sticks if at
	// least one digit follows.
	r, _, err := s.ReadRune()
	if err == io.EOF {
		return New(), nil
	} else if err != nil {
		return nil, errors.Trace(err)
	}
	if r == '-' {
		negative = true
	} else {
		s.PushBack(r)
	}

	for {
		r, _, err := s.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Trace(err)
		}
		if r == '0' && digits.Len() == 0 {
			// Leading zero, discard.
			continue
		}
		if r < '0' || r > '9' {
			s.PushBack(r)
			break
		}
		digits.PushBack(int(r - '0'))
	}

	if digits.Len() == 0 {
		digits.PushBack(0)
		if negative {
			// The minus sign had no digits after it; it goes back
			// to the stream unconsumed.
			s.PushBack('-')
			negative = false
		}
	}
	return &InfiniteInt{digits: digits, negative: negative}, nil
}

// Parse converts a string in the form produced by String into an
// InfiniteInt. Unlike Scan, the whole input must be consumed.
func Parse(text string) (*InfiniteInt, error) {
	if text == "" {
		return nil, errors.NotValidf("empty number")
	}
	s := NewScannerString(text)
	ii, err := Scan(s)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if _, _, err := s.ReadRune(); err == nil {
		return nil, errors.NotValidf("number %q", text)
	}
	return ii, nil
}
