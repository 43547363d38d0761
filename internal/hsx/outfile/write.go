package outfile

import (
	"os"
	"strings"
)

const header = ";; Code generated by hsx. DO NOT EDIT.\n\n"

// WriteGeneratedFile writes src to outPath with the generated-code header,
// always overwriting any existing file.
func WriteGeneratedFile(outPath string, src []byte) error {
	var b strings.Builder
	b.Grow(len(header) + len(src))
	b.WriteString(header)
	b.Write(src)
	return os.WriteFile(outPath, []byte(b.String()), 0o644)
}
