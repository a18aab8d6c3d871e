package cbor

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
)

// Source is an ordered, read-only byte supply consumed strictly in order.
// The validator never rewinds a Source.
type Source interface {
	// ReadByte returns the next byte, or io.EOF when the source is exhausted.
	ReadByte() (byte, error)

	// Skip consumes exactly n bytes without materializing them.
	// It returns io.EOF or io.ErrUnexpectedEOF when fewer than n remain;
	// how many bytes were consumed in that case is unspecified.
	Skip(n uint64) error
}

// SliceSource is a zero-copy Source over an in-memory buffer.
type SliceSource struct {
	buf []byte
}

// NewSliceSource returns a Source reading from b.
func NewSliceSource(b []byte) *SliceSource { return &SliceSource{buf: b} }

// ReadByte implements Source.
func (s *SliceSource) ReadByte() (byte, error) {
	if len(s.buf) < 1 {
		return 0, io.EOF
	}
	c := s.buf[0]
	s.buf = s.buf[1:]
	return c, nil
}

// Skip implements Source.
func (s *SliceSource) Skip(n uint64) error {
	if uint64(len(s.buf)) < n {
		s.buf = s.buf[len(s.buf):]
		return io.ErrUnexpectedEOF
	}
	s.buf = s.buf[n:]
	return nil
}

// Rest returns the unread portion of the buffer.
func (s *SliceSource) Rest() []byte { return s.buf }

// Len returns the number of unread bytes.
func (s *SliceSource) Len() int { return len(s.buf) }

// ReaderSource is a Source over an io.Reader.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource returns a Source reading from r. If r is already a
// *bufio.Reader it is used directly.
func NewReaderSource(r io.Reader) *ReaderSource {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &ReaderSource{r: br}
}

// ReadByte implements Source.
func (s *ReaderSource) ReadByte() (byte, error) { return s.r.ReadByte() }

// Skip implements Source. Lengths beyond the platform int are
// discarded in pieces.
func (s *ReaderSource) Skip(n uint64) error {
	for n > 0 {
		step := n
		if step > math.MaxInt32 {
			step = math.MaxInt32
		}
		d, err := s.r.Discard(int(step))
		n -= uint64(d)
		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// more reports whether at least one more byte is available, without consuming it.
func (s *ReaderSource) more() (bool, error) {
	_, err := s.r.Peek(1)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	return false, err
}

// cursor counts the bytes taken from a Source. Its offset only grows.
type cursor struct {
	src   Source
	off   int64
	trace bool // log each header read
}

// readByte reads one byte; exhaustion is reported as a Truncated failure
// at the current offset.
func (c *cursor) readByte() (byte, error) {
	b, err := c.src.ReadByte()
	if err != nil {
		return 0, c.fail(err)
	}
	c.off++
	return b, nil
}

// skip consumes exactly n bytes of content.
func (c *cursor) skip(n uint64) error {
	if l, ok := c.src.(interface{ Len() int }); ok && uint64(l.Len()) < n {
		c.off += int64(l.Len())
		_ = c.src.Skip(n)
		return malformed(ErrTruncated, c.off, -1)
	}
	// Other sources do not report a partial count, so a short skip is
	// reported where the content started.
	if err := c.src.Skip(n); err != nil {
		return c.fail(err)
	}
	c.off += int64(n)
	return nil
}

func (c *cursor) fail(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return malformed(ErrTruncated, c.off, -1)
	}
	return WrapError(err, "offset "+strconv.FormatInt(c.off, 10))
}
