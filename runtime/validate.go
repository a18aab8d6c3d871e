package cbor

import (
	"context"
	"log/slog"
)

// Options configures a Validator. The zero value is ready to use.
type Options struct {
	// MaxDepth bounds the nesting of arrays, maps and tags. Zero means DefaultMaxDepth.
	MaxDepth int

	// MaxContainerLen bounds the declared length of definite arrays, maps,
	// byte strings, text strings and string chunks. Zero disables the limit.
	MaxContainerLen uint64

	// Logger, when set, receives one debug record per header read.
	Logger *slog.Logger
}

// Validator checks that a Source starts with one well-formed CBOR data item.
// A Validator holds no per-call state and is safe for concurrent use.
type Validator struct {
	maxDepth     int
	maxContainer uint64
	log          *slog.Logger
}

// NewValidator constructs a Validator from opts.
func NewValidator(opts Options) *Validator {
	v := &Validator{
		maxDepth:     opts.MaxDepth,
		maxContainer: opts.MaxContainerLen,
		log:          opts.Logger,
	}
	if v.maxDepth <= 0 {
		v.maxDepth = DefaultMaxDepth
	}
	return v
}

var defaultValidator = NewValidator(Options{})

// ValidateWellFormedBytes validates that the next CBOR data item in b is well-formed per RFC 8949
// and returns the remaining bytes after that item.
// Checks performed:
// - Structural correctness of arrays, maps, tags, simple values
// - Definite-length, same-type chunks inside indefinite-length strings
// - Prohibits reserved additional info values 28,29,30
// - Prohibits simple values below 32 in the two-byte form
// - Break stop codes only where an indefinite-length item may end
func ValidateWellFormedBytes(b []byte) (rest []byte, err error) {
	return defaultValidator.ValidateBytes(b)
}

// ValidateDocument validates that all items in b are well-formed until input is exhausted.
func ValidateDocument(b []byte) error {
	return defaultValidator.ValidateDocument(b)
}

// ValidateBytes is ValidateWellFormedBytes with v's options.
func (v *Validator) ValidateBytes(b []byte) (rest []byte, err error) {
	src := NewSliceSource(b)
	if _, err := v.Validate(src); err != nil {
		return b, err
	}
	return src.Rest(), nil
}

// ValidateDocument is the package ValidateDocument with v's options.
// Offsets in errors are relative to the start of b.
func (v *Validator) ValidateDocument(b []byte) error {
	src := NewSliceSource(b)
	c := cursor{src: src}
	for src.Len() > 0 {
		if _, err := v.validate(&c); err != nil {
			return err
		}
	}
	return nil
}

// Validate consumes exactly one data item from src and reports what it was.
// On failure the amount consumed from src is unspecified.
func (v *Validator) Validate(src Source) (Item, error) {
	c := cursor{src: src}
	return v.validate(&c)
}

func (v *Validator) validate(c *cursor) (Item, error) {
	start := c.off
	// The level is checked per item so a slog.LevelVar can turn tracing on later.
	c.trace = v.log != nil && v.log.Enabled(context.Background(), slog.LevelDebug)
	// The outermost item is never breakable: a lone break is not well-formed.
	it, _, err := v.item(c, false, 0)
	if err != nil {
		return Item{}, err
	}
	it.Size = c.off - start
	return it, nil
}

// item validates one data item. brk is true only when breakable is set
// and the item was the break stop code.
func (v *Validator) item(c *cursor, breakable bool, depth int) (it Item, brk bool, err error) {
	h, err := decodeHeader(c)
	if err != nil {
		return it, false, err
	}
	if c.trace {
		v.traceHeader(h, depth)
	}
	if depth > v.maxDepth && !h.isBreak() {
		return it, false, malformed(ErrMaxDepthExceeded, h.off, int(h.lead))
	}
	it.Major = MajorType(h.major)
	if h.indefinite {
		it.Indefinite = true
		brk, err = v.indefinite(c, h, breakable, depth)
		return it, brk, err
	}
	return it, false, v.definite(c, h, depth)
}

// definite consumes the content of a definite-length item whose header
// has been read.
func (v *Validator) definite(c *cursor, h header, depth int) error {
	switch h.major {
	case majorTypeUint, majorTypeNegInt:
		return nil

	case majorTypeBytes, majorTypeText:
		if err := v.checkLen(h); err != nil {
			return err
		}
		// Text is not checked for valid UTF-8; that is a value-level concern.
		return c.skip(h.arg)

	case majorTypeArray:
		if err := v.checkLen(h); err != nil {
			return err
		}
		for i := uint64(0); i < h.arg; i++ {
			if _, _, err := v.item(c, false, depth+1); err != nil {
				return nest(err, elemIndex, i)
			}
		}
		return nil

	case majorTypeMap:
		if err := v.checkLen(h); err != nil {
			return err
		}
		// Count pairs rather than items so that 2*arg cannot overflow.
		for i := uint64(0); i < h.arg; i++ {
			if _, _, err := v.item(c, false, depth+1); err != nil {
				return nest(err, elemKey, i)
			}
			if _, _, err := v.item(c, false, depth+1); err != nil {
				return nest(err, elemValue, i)
			}
		}
		return nil

	case majorTypeTag:
		if _, _, err := v.item(c, false, depth+1); err != nil {
			return nest(err, elemTag, h.arg)
		}
		return nil

	default: // majorTypeSimple
		if h.add == addInfoUint8 && h.arg < simpleMinExtended {
			return malformed(ErrInvalidSimple, h.off, int(h.lead))
		}
		return nil
	}
}

// indefinite consumes the content of an item with additional info 31,
// up to and including its break. For major type 7 the header itself is
// the break; brk reports it to the enclosing loop.
func (v *Validator) indefinite(c *cursor, h header, breakable bool, depth int) (brk bool, err error) {
	switch h.major {
	case majorTypeBytes, majorTypeText:
		for i := uint64(0); ; i++ {
			ch, err := readInitial(c)
			if err != nil {
				return false, nest(err, elemChunk, i)
			}
			if ch.isBreak() {
				return false, nil
			}
			// Chunks must be definite-length strings of the enclosing type.
			if ch.major != h.major || ch.indefinite {
				return false, nest(malformed(ErrInvalidChunkType, ch.off, int(ch.lead)), elemChunk, i)
			}
			if ch, err = readArgument(c, ch); err != nil {
				return false, nest(err, elemChunk, i)
			}
			if c.trace {
				v.traceHeader(ch, depth+1)
			}
			if err := v.checkLen(ch); err != nil {
				return false, nest(err, elemChunk, i)
			}
			if err := c.skip(ch.arg); err != nil {
				return false, nest(err, elemChunk, i)
			}
		}

	case majorTypeArray:
		for i := uint64(0); ; i++ {
			_, brk, err := v.item(c, true, depth+1)
			if err != nil {
				return false, nest(err, elemIndex, i)
			}
			if brk {
				return false, nil
			}
		}

	case majorTypeMap:
		// A break is only accepted in key position, so the number of
		// items before it is always even.
		for i := uint64(0); ; i++ {
			_, brk, err := v.item(c, true, depth+1)
			if err != nil {
				return false, nest(err, elemKey, i)
			}
			if brk {
				return false, nil
			}
			if _, _, err := v.item(c, false, depth+1); err != nil {
				return false, nest(err, elemValue, i)
			}
		}

	case majorTypeSimple:
		if breakable {
			return true, nil
		}
		return false, malformed(ErrUnexpectedBreak, h.off, int(h.lead))

	default: // uint, negint, tag
		return false, malformed(ErrInvalidIndefiniteMajorType, h.off, int(h.lead))
	}
}

func (v *Validator) checkLen(h header) error {
	if v.maxContainer > 0 && h.arg > v.maxContainer {
		return malformed(ErrContainerTooLarge, h.off, int(h.lead))
	}
	return nil
}

func (v *Validator) traceHeader(h header, depth int) {
	v.log.Debug("cbor header",
		slog.Int64("offset", h.off),
		slog.Int("depth", depth),
		slog.String("major", MajorType(h.major).String()),
		slog.Uint64("arg", h.arg),
		slog.Bool("indefinite", h.indefinite),
		slog.String("initial", DescribeInitialByte(h.lead)),
	)
}

// nest adds a path element to errors from this package; other errors
// (for example I/O failures of a Source) pass through unchanged.
// Each failure is freshly allocated, so the path grows in place.
func nest(err error, kind elemKind, n uint64) error {
	if m, ok := err.(*MalformedError); ok {
		m.push(kind, n)
	}
	return err
}
