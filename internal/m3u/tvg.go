package m3u

import (
	"fmt"
	"io"
	"strings"
)

// attribute extracts the quoted value of key="..." from a marker line.
// It returns "" when the attribute is missing, empty or unterminated.
func attribute(line, key string) string {
	prefix := key + `="`
	idx := strings.Index(line, prefix)
	if idx == -1 {
		return ""
	}
	rest := line[idx+len(prefix):]
	end := strings.Index(rest, `"`)
	if end == -1 {
		return ""
	}
	return rest[:end]
}

func encodeAttribute(w io.Writer, key, value string) error {
	if value == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, " %s=\"%s\"", key, value)
	return err
}
