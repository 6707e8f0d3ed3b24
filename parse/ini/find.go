package ini

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Find resolves one key lookup in a single pass over r without building a
// File. O(input) time, O(1) auxiliary space.
//
// With a non-empty section name the search is scoped: entries are only
// tested between the target's header and the next header, and the scan stops
// as soon as the target's body ends. With an empty section name the search is
// unscoped: section headers are ignored entirely and the first key-value line
// anywhere in the file whose key matches wins, even inside a named section.
//
// The boolean reports whether a match was found; absence is not an error.
func Find(r io.Reader, key, section string) (string, bool, error) {
	scoped := section != ""
	insideTarget := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNo++

		cl, err := classifyLine(line)
		if err != nil {
			return "", false, fmt.Errorf("ini:%d: %w", lineNo, err)
		}

		switch cl.class {
		case classSectionHeader:
			if !scoped {
				continue
			}
			if insideTarget {
				// Target body ended before a match; nothing later counts.
				return "", false, nil
			}
			if cl.name == section {
				slog.Debug("entering target section", "section", section)
				insideTarget = true
			}
		case classKeyValue:
			if scoped && !insideTarget {
				continue
			}
			if cl.key == key {
				return cl.value, true, nil
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}
