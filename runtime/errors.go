package cbor

import (
	"errors"
	"strconv"
)

const resumableDefault = false

var (
	// ErrTruncated is returned when the input ends before the
	// header or content of a data item is complete.
	ErrTruncated error = errShort{}

	// ErrShortBytes is the historical name of ErrTruncated.
	ErrShortBytes = ErrTruncated

	// ErrReserved is returned for the additional information values
	// 28, 29 and 30, which are not well-formed for any major type.
	ErrReserved error = errors.New("cbor: reserved additional information value")

	// ErrInvalidSimple is returned when a simple value below 32 uses the
	// one-byte extended form (0xf8 xx) instead of the direct encoding.
	ErrInvalidSimple error = errors.New("cbor: simple value below 32 in two-byte form")

	// ErrInvalidChunkType is returned when an indefinite-length byte or text
	// string contains a chunk that is not a definite-length string of the
	// same major type.
	ErrInvalidChunkType error = errors.New("cbor: invalid chunk in indefinite-length string")

	// ErrUnexpectedBreak is returned when a break stop code appears where a
	// data item was expected.
	ErrUnexpectedBreak error = errors.New("cbor: unexpected break stop code")

	// ErrInvalidIndefiniteMajorType is returned when additional information
	// 31 is used with a major type that has no indefinite-length form.
	ErrInvalidIndefiniteMajorType error = errors.New("cbor: indefinite length not allowed for major type")

	// ErrMaxDepthExceeded is returned when nesting exceeds the configured depth.
	// This should only realistically be seen on adversarial data trying to exhaust the stack.
	ErrMaxDepthExceeded error = errors.New("cbor: max depth exceeded")

	// ErrContainerTooLarge is returned when a declared length exceeds Options.MaxContainerLen.
	ErrContainerTooLarge error = errors.New("cbor: container too large")
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether
	// or not the error means that
	// the stream of data is malformed
	// and the information is unrecoverable.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	switch e := e.(type) {
	case errWrapped:
		if e.cause != nil {
			return e.cause
		}
	case *MalformedError:
		if e.Err != nil {
			return e.Err
		}
	}
	return e
}

// Resumable returns whether or not the error means that the stream of data is
// malformed and the information is unrecoverable.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of the
// input that caused the problem to be identified. Underlying errors
// can be retrieved using Cause()
//
// The input error is not modified - a new error should be returned.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []any) string {
	out := ""
	for idx, cv := range ctx {
		if idx > 0 {
			out += "/"
		}
		switch c := cv.(type) {
		case string:
			out += c
		case int:
			out += strconv.Itoa(c)
		case uint64:
			out += strconv.FormatUint(c, 10)
		case interface{ String() string }:
			out += c.String()
		default:
			out += "?"
		}
	}
	return out
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	} else {
		return e.cause.Error()
	}
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errShort struct{}

func (e errShort) Error() string   { return "cbor: too few bytes left to read object" }
func (e errShort) Resumable() bool { return false }

// MalformedError is returned for every input that is not well-formed.
// Err is one of the package sentinels and is matched with errors.Is.
type MalformedError struct {
	Err     error      // sentinel describing the failure
	Offset  int64      // zero-based offset of the offending initial byte, or of the end of input
	Initial int        // offending initial byte, or -1 when none was read
	path    []pathElem // innermost first
}

// Error implements the error interface
func (m *MalformedError) Error() string {
	out := m.Err.Error() + " at offset " + strconv.FormatInt(m.Offset, 10)
	if m.Initial >= 0 {
		b := byte(m.Initial)
		out += " (" + hexByte(b) + ": " + DescribeInitialByte(b) + ")"
	}
	if len(m.path) > 0 {
		out += " in " + m.Path()
	}
	return out
}

// Unwrap returns the sentinel.
func (m *MalformedError) Unwrap() error { return m.Err }

// Resumable is always 'false' for malformed input
func (m *MalformedError) Resumable() bool { return false }

// Path returns the location of the failure within the nesting, outermost
// first, e.g. "[2]/{0}.value/chunk[1]". It is empty for top-level failures.
func (m *MalformedError) Path() string {
	var b []byte
	for i := len(m.path) - 1; i >= 0; i-- {
		b = m.path[i].appendTo(b)
		if i > 0 {
			b = append(b, '/')
		}
	}
	return string(b)
}

func (m *MalformedError) withContext(ctx string) error {
	o := *m
	o.path = append(m.path[:len(m.path):len(m.path)], pathElem{kind: elemText, text: ctx})
	return &o
}

// push records the enclosing element while the validator unwinds. The
// error must still be owned by the failing call chain.
func (m *MalformedError) push(kind elemKind, n uint64) {
	m.path = append(m.path, pathElem{kind: kind, n: n})
}

type elemKind uint8

const (
	elemText elemKind = iota
	elemIndex
	elemKey
	elemValue
	elemTag
	elemChunk
)

// pathElem is one step of a MalformedError path, rendered only on demand.
type pathElem struct {
	kind elemKind
	n    uint64
	text string
}

func (p pathElem) appendTo(b []byte) []byte {
	switch p.kind {
	case elemIndex:
		b = append(b, '[')
		b = strconv.AppendUint(b, p.n, 10)
		return append(b, ']')
	case elemKey:
		b = append(b, '{')
		b = strconv.AppendUint(b, p.n, 10)
		return append(b, "}.key"...)
	case elemValue:
		b = append(b, '{')
		b = strconv.AppendUint(b, p.n, 10)
		return append(b, "}.value"...)
	case elemTag:
		b = append(b, "tag("...)
		b = strconv.AppendUint(b, p.n, 10)
		return append(b, ')')
	case elemChunk:
		b = append(b, "chunk["...)
		b = strconv.AppendUint(b, p.n, 10)
		return append(b, ']')
	default:
		return append(b, p.text...)
	}
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{'0', 'x', digits[b>>4], digits[b&0x0f]})
}

func malformed(err error, off int64, initial int) error {
	return &MalformedError{Err: err, Offset: off, Initial: initial}
}

// Kind classifies why an input is not well-formed.
type Kind uint8

// Failure kinds
const (
	KindNone Kind = iota
	KindTruncated
	KindReserved
	KindInvalidSimple
	KindInvalidChunkType
	KindUnexpectedBreak
	KindInvalidIndefiniteMajorType
	KindDepthExceeded
	KindContainerTooLarge
	KindOther
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTruncated:
		return "truncated"
	case KindReserved:
		return "reserved"
	case KindInvalidSimple:
		return "invalid-simple"
	case KindInvalidChunkType:
		return "invalid-chunk-type"
	case KindUnexpectedBreak:
		return "unexpected-break"
	case KindInvalidIndefiniteMajorType:
		return "invalid-indefinite-major-type"
	case KindDepthExceeded:
		return "depth-exceeded"
	case KindContainerTooLarge:
		return "container-too-large"
	default:
		return "other"
	}
}

// ErrorKind returns the Kind of err, KindNone for a nil error and
// KindOther for errors that do not originate from this package.
func ErrorKind(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrTruncated):
		return KindTruncated
	case errors.Is(err, ErrReserved):
		return KindReserved
	case errors.Is(err, ErrInvalidSimple):
		return KindInvalidSimple
	case errors.Is(err, ErrInvalidChunkType):
		return KindInvalidChunkType
	case errors.Is(err, ErrUnexpectedBreak):
		return KindUnexpectedBreak
	case errors.Is(err, ErrInvalidIndefiniteMajorType):
		return KindInvalidIndefiniteMajorType
	case errors.Is(err, ErrMaxDepthExceeded):
		return KindDepthExceeded
	case errors.Is(err, ErrContainerTooLarge):
		return KindContainerTooLarge
	default:
		return KindOther
	}
}
