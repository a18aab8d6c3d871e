package core

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	tmplfs "github.com/synadia-labs/cborwf/tablegen/templates"
)

// DefaultTable is the name of the embedded Appendix B table.
const DefaultTable = "rfc8949-appendix-b.txt"

// notWellFormed describes every initial byte the table does not list.
const notWellFormed = "not well-formed (reserved or unassigned initial byte)"

var templateFuncs = template.FuncMap{
	"hex":      hexByte,
	"caseExpr": caseExpr,
}

var tableTemplate = template.Must(template.New("table.go.tpl").Funcs(templateFuncs).ParseFS(tmplfs.FS, "table.go.tpl"))

// Options configures how generation runs.
type Options struct {
	// Input is a table file on disk. Empty means the embedded DefaultTable.
	Input string
	// Package is the package clause of the generated file.
	Package string
	// Logger receives progress messages; nil discards them.
	Logger *slog.Logger
}

// Row is one line of the table: a range of initial bytes sharing a description.
type Row struct {
	First       uint8
	Last        uint8
	Description string
}

// Run parses the table and writes the generated Go source to outputPath.
func Run(outputPath string, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "cbor"
	}

	var (
		in     io.ReadCloser
		source string
		err    error
	)
	if opts.Input == "" {
		in, err = tmplfs.FS.Open(DefaultTable)
		source = DefaultTable
	} else {
		in, err = os.Open(opts.Input)
		source = filepath.Base(opts.Input)
	}
	if err != nil {
		return fmt.Errorf("open table: %w", err)
	}
	defer in.Close()

	rows, err := ParseTable(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}
	log.Debug("parsed table", "source", source, "rows", len(rows))

	src, err := Generate(outputPath, pkg, source, rows)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		return err
	}
	log.Info("wrote table", "output", outputPath, "bytes", len(src))
	return nil
}

// ParseTable reads table lines of the form "0xNN description" or
// "0xNN..0xNN description". Blank lines and lines starting with '#'
// are ignored. Rows must be in ascending order and must not overlap.
func ParseTable(r io.Reader) ([]Row, error) {
	var rows []Row
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lhs, desc, ok := strings.Cut(text, " ")
		if !ok || strings.TrimSpace(desc) == "" {
			return nil, fmt.Errorf("line %d: missing description", line)
		}
		row := Row{Description: strings.TrimSpace(desc)}
		first, last, isRange := strings.Cut(lhs, "..")
		var err error
		if row.First, err = parseHexByte(first); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row.Last = row.First
		if isRange {
			if row.Last, err = parseHexByte(last); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		if row.Last < row.First {
			return nil, fmt.Errorf("line %d: range %s is reversed", line, lhs)
		}
		if n := len(rows); n > 0 && row.First <= rows[n-1].Last {
			return nil, fmt.Errorf("line %d: range %s overlaps or is out of order", line, lhs)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table is empty")
	}
	return rows, nil
}

// Generate renders rows as Go source for package pkg. outputPath is only
// used to resolve imports while formatting.
func Generate(outputPath, pkg, source string, rows []Row) ([]byte, error) {
	data := struct {
		Package string
		Source  string
		Default string
		Rows    []Row
	}{
		Package: pkg,
		Source:  source,
		Default: notWellFormed,
		Rows:    rows,
	}

	var buf bytes.Buffer
	if err := tableTemplate.ExecuteTemplate(&buf, "table.go.tpl", data); err != nil {
		return nil, err
	}

	src, err := imports.Process(outputPath, buf.Bytes(), nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if formatted, ferr := format.Source(buf.Bytes()); ferr == nil {
			src = formatted
		} else {
			return nil, fmt.Errorf("format generated source: %w", err)
		}
	}
	return src, nil
}

func parseHexByte(s string) (uint8, error) {
	if !strings.HasPrefix(s, "0x") || len(s) != 4 {
		return 0, fmt.Errorf("bad initial byte %q", s)
	}
	n, err := strconv.ParseUint(s[2:], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad initial byte %q: %w", s, err)
	}
	return uint8(n), nil
}

func hexByte(b uint8) string {
	return fmt.Sprintf("0x%02x", b)
}

// caseExpr is the switch condition matching every byte of r.
func caseExpr(r Row) string {
	switch {
	case r.First == r.Last:
		return "b == " + hexByte(r.First)
	case r.First == 0:
		return "b <= " + hexByte(r.Last)
	case r.Last == 0xff:
		return "b >= " + hexByte(r.First)
	default:
		return "b >= " + hexByte(r.First) + " && b <= " + hexByte(r.Last)
	}
}
