package cbor

import (
	"io"
	"strconv"
)

// StreamValidator validates consecutive CBOR data items read from an
// io.Reader, as in a CBOR sequence (RFC 8742). Offsets reported in errors
// count from the first byte read by the StreamValidator.
type StreamValidator struct {
	v   *Validator
	src *ReaderSource
	c   cursor
	err error
}

// NewStreamValidator returns a StreamValidator reading from r.
func NewStreamValidator(r io.Reader, opts Options) *StreamValidator {
	src := NewReaderSource(r)
	return &StreamValidator{
		v:   NewValidator(opts),
		src: src,
		c:   cursor{src: src},
	}
}

// Next validates the next data item. It returns io.EOF when the input ends
// cleanly between items; input that ends inside an item is ErrTruncated.
// After the first error every call returns that error again.
func (s *StreamValidator) Next() (Item, error) {
	if s.err != nil {
		return Item{}, s.err
	}
	more, err := s.src.more()
	if err != nil {
		s.err = WrapError(err, "offset "+strconv.FormatInt(s.c.off, 10))
		return Item{}, s.err
	}
	if !more {
		s.err = io.EOF
		return Item{}, s.err
	}
	it, err := s.v.validate(&s.c)
	if err != nil {
		s.err = err
		return Item{}, err
	}
	return it, nil
}

// More reports whether input remains after the items validated so far,
// without consuming or validating it.
func (s *StreamValidator) More() (bool, error) {
	if s.err == io.EOF {
		return false, nil
	}
	if s.err != nil {
		return false, s.err
	}
	more, err := s.src.more()
	if err != nil {
		return false, WrapError(err, "offset "+strconv.FormatInt(s.c.off, 10))
	}
	return more, nil
}

// Offset returns the number of bytes consumed so far.
func (s *StreamValidator) Offset() int64 { return s.c.off }

// ForEach calls fn for every item until the input is exhausted.
// It returns nil at a clean end of input.
func (s *StreamValidator) ForEach(fn func(Item) error) error {
	for {
		it, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(it); err != nil {
			return err
		}
	}
}

// ForEachSequenceBytes validates the CBOR sequence in b and calls onItem
// with the encoded bytes of each item, in order.
func ForEachSequenceBytes(b []byte, onItem func(item []byte) error) error {
	return defaultValidator.ForEachSequenceBytes(b, onItem)
}

// ForEachSequenceBytes is the package ForEachSequenceBytes with v's options.
func (v *Validator) ForEachSequenceBytes(b []byte, onItem func(item []byte) error) error {
	src := NewSliceSource(b)
	c := cursor{src: src}
	for src.Len() > 0 {
		start := c.off
		if _, err := v.validate(&c); err != nil {
			return err
		}
		if err := onItem(b[start:c.off]); err != nil {
			return err
		}
	}
	return nil
}

// AppendSequence appends already-encoded items to b, forming a CBOR sequence.
// The items are not validated.
func AppendSequence(b []byte, items ...[]byte) []byte {
	for _, it := range items {
		b = append(b, it...)
	}
	return b
}

// SplitSequenceBytes validates the CBOR sequence in b and returns its items.
// The returned slices alias b.
func SplitSequenceBytes(b []byte) (out [][]byte, err error) {
	err = ForEachSequenceBytes(b, func(item []byte) error {
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
