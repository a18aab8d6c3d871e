package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	fxcbor "github.com/fxamacker/cbor/v2"

	cbor "github.com/synadia-labs/cborwf/runtime"
)

var errTrailing = errors.New("trailing bytes after data item")

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Log every header read at debug level"`
}

// CLI defines the cborwf command-line interface.
type CLI struct {
	Globals

	Check CheckCmd `cmd:"" default:"withargs" help:"Check that inputs are well-formed CBOR (default)."`
	Table TableCmd `cmd:"" help:"Print the RFC 8949 Appendix B initial-byte table."`
}

// streams are the standard streams a command reads from and writes to.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals, &streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	ctx.FatalIfErrorf(err)
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("cborwf"),
		kong.Description("Check that bytes are well-formed CBOR (RFC 8949) without decoding them."),
		kong.UsageOnError(),
	}, opts...)
	return kong.New(cli, opts...)
}

func (g *Globals) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// CheckCmd validates each input and reports the top-level item it holds.
type CheckCmd struct {
	Files           []string `arg:"" optional:"" help:"Input files; none or '-' reads stdin"`
	Hex             bool     `help:"Inputs are hex text; whitespace is ignored"`
	Seq             bool     `help:"Inputs are CBOR sequences (RFC 8742) of zero or more items"`
	MaxDepth        int      `help:"Maximum nesting of arrays, maps and tags; 0 uses the library default" default:"0" env:"CBORWF_MAX_DEPTH"`
	MaxContainerLen uint64   `help:"Maximum declared container or string length; 0 is unlimited" default:"0" env:"CBORWF_MAX_CONTAINER_LEN"`
	Diag            bool     `help:"Print the diagnostic notation of well-formed inputs"`
}

// Run implements the check command.
func (c *CheckCmd) Run(g *Globals, s *streams) error {
	log := g.logger(s.err)
	opts := cbor.Options{
		MaxDepth:        c.MaxDepth,
		MaxContainerLen: c.MaxContainerLen,
		Logger:          log,
	}

	var dm fxcbor.DiagMode
	if c.Diag {
		var err error
		dm, err = fxcbor.DiagOptions{
			CBORSequence:     c.Seq,
			MaxNestedLevels:  65535,
			MaxArrayElements: 2147483647,
			MaxMapPairs:      2147483647,
		}.DiagMode()
		if err != nil {
			return err
		}
	}

	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	failed := 0
	for _, name := range files {
		if err := c.checkOne(name, opts, dm, s); err != nil {
			failed++
			fmt.Fprintf(s.out, "%s: not well-formed: %v\n", name, err)
			log.Debug("check failed", "input", name, "kind", cbor.ErrorKind(err).String())
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs not well-formed", failed, len(files))
	}
	return nil
}

func (c *CheckCmd) checkOne(name string, opts cbor.Options, dm fxcbor.DiagMode, s *streams) error {
	var r io.Reader
	if name == "-" {
		r = s.in
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if !c.Hex && dm == nil {
		return c.checkStream(name, r, opts, s.out)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if c.Hex {
		if data, err = decodeHex(data); err != nil {
			return err
		}
	}
	return c.checkBytes(name, data, opts, dm, s.out)
}

// checkStream validates r without holding the whole input in memory.
func (c *CheckCmd) checkStream(name string, r io.Reader, opts cbor.Options, out io.Writer) error {
	sv := cbor.NewStreamValidator(r, opts)
	if c.Seq {
		n := 0
		err := sv.ForEach(func(it cbor.Item) error {
			fmt.Fprintf(out, "%s[%d]: well-formed %s (%d bytes)\n", name, n, it, it.Size)
			n++
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d items\n", name, n)
		return nil
	}

	it, err := sv.Next()
	if err == io.EOF {
		return fmt.Errorf("%w: empty input", cbor.ErrTruncated)
	}
	if err != nil {
		return err
	}
	more, err := sv.More()
	if err != nil {
		return err
	}
	if more {
		return fmt.Errorf("%w at offset %d", errTrailing, it.Size)
	}
	fmt.Fprintf(out, "%s: well-formed %s (%d bytes)\n", name, it, it.Size)
	return nil
}

func (c *CheckCmd) checkBytes(name string, data []byte, opts cbor.Options, dm fxcbor.DiagMode, out io.Writer) error {
	v := cbor.NewValidator(opts)
	if c.Seq {
		n := 0
		err := v.ForEachSequenceBytes(data, func(item []byte) error {
			fmt.Fprintf(out, "%s[%d]: well-formed (%d bytes)\n", name, n, len(item))
			n++
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d items\n", name, n)
	} else {
		src := cbor.NewSliceSource(data)
		it, err := v.Validate(src)
		if err != nil {
			return err
		}
		if src.Len() > 0 {
			return fmt.Errorf("%w at offset %d", errTrailing, it.Size)
		}
		fmt.Fprintf(out, "%s: well-formed %s (%d bytes)\n", name, it, it.Size)
	}

	if dm != nil && len(data) > 0 {
		notation, err := dm.Diagnose(data)
		if err != nil {
			return fmt.Errorf("diagnostic notation: %w", err)
		}
		fmt.Fprintf(out, "%s: %s\n", name, notation)
	}
	return nil
}

func decodeHex(text []byte) ([]byte, error) {
	clean := bytes.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text)
	clean = bytes.TrimPrefix(clean, []byte("0x"))
	out := make([]byte, hex.DecodedLen(len(clean)))
	if _, err := hex.Decode(out, clean); err != nil {
		return nil, fmt.Errorf("bad hex input: %w", err)
	}
	return out, nil
}

// TableCmd prints the initial-byte table.
type TableCmd struct{}

// Run implements the table command.
func (t *TableCmd) Run(s *streams) error {
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, r := range cbor.InitialByteTable() {
		rng := fmt.Sprintf("0x%02x", r.First)
		if r.Last != r.First {
			rng += fmt.Sprintf("..0x%02x", r.Last)
		}
		fmt.Fprintf(tw, "%s\t%s\n", rng, strings.TrimSpace(r.Description))
	}
	return tw.Flush()
}
