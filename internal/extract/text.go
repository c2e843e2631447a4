package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// extractText reads a plain-text file. Valid UTF-8 is taken as-is; otherwise
// we walk a small single-byte charset ladder and keep the first decode that
// produces no replacement runes. Latin-1 maps every byte so it terminates
// the ladder.
func (e *Extractor) extractText(path string) Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Method: "plain-text", Warnings: []string{fmt.Sprintf("read %s: %v", path, err)}}
	}

	if utf8.Valid(raw) {
		return Result{Text: string(raw), Pages: 1, Method: "plain-text"}
	}

	var warns []string
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: %v", cm, err))
			continue
		}
		text := string(decoded)
		if strings.ContainsRune(text, utf8.RuneError) {
			warns = append(warns, fmt.Sprintf("%s: undecodable bytes", cm))
			continue
		}
		warns = append(warns, fmt.Sprintf("decoded as %s", cm))
		return Result{Text: text, Pages: 1, Method: "plain-text", Warnings: warns}
	}

	warns = append(warns, "no charset produced a clean decode")
	return Result{Method: "plain-text", Warnings: warns}
}
