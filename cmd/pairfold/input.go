package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// line is one non-blank input line with its 1-based position.
type line struct {
	no   int
	text string
}

// readLines returns the non-blank lines of the file at path, or of stdin
// when path is "-".
func readLines(path string, stdin io.Reader) ([]line, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var out []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		if text := strings.TrimSpace(sc.Text()); text != "" {
			out = append(out, line{no: no, text: text})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return out, nil
}
