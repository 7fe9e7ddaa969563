package universe

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a newline-delimited ticker list. Whitespace is trimmed, blank
// lines and #-comments are skipped. Duplicates are kept as-is; the scan
// deduplicates downstream.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tickers file: %w", err)
	}
	defer f.Close()

	var tickers []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tickers = append(tickers, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tickers file: %w", err)
	}
	return tickers, nil
}
