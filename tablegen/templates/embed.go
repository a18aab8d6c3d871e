package templates

import "embed"

// FS exposes the Appendix B table data and the
// template tablegen renders it with.
//
//go:embed *.go.tpl *.txt
var FS embed.FS
