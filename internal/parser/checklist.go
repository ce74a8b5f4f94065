// Package parser reads digest list files for the filehash CLI.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// entryRE matches one "<hex>  <path>" line as written by md5sum and friends.
// The second separator character is ' ' for text mode or '*' for binary mode.
var entryRE = regexp.MustCompile(`^([0-9a-fA-F]+) [ *](.+)$`)

// CheckEntry is a single expected digest.
type CheckEntry struct {
	Line   int // 1-based line number in the source
	Digest string
	Path   string
}

// Checklist holds the parsed contents of a digest list.
type Checklist struct {
	Entries []CheckEntry

	// Malformed lists the line numbers that were neither blank, comments,
	// nor valid entries.
	Malformed []int
}

// ParseChecklist reads digest lines from r.
//
// Blank lines and lines starting with # are skipped. Digests are lowercased
// so they compare directly against ToHex output. Lines that do not match the
// entry format are recorded in Malformed and otherwise ignored.
func ParseChecklist(r io.Reader) (*Checklist, error) {
	list := &Checklist{}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := entryRE.FindStringSubmatch(text)
		if m == nil {
			list.Malformed = append(list.Malformed, line)
			continue
		}
		list.Entries = append(list.Entries, CheckEntry{
			Line:   line,
			Digest: strings.ToLower(m[1]),
			Path:   m[2],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read checklist: %w", err)
	}
	return list, nil
}

// ParseChecklistFile opens path and parses it with ParseChecklist.
func ParseChecklistFile(path string) (*Checklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checklist: %w", err)
	}
	defer f.Close()

	return ParseChecklist(f)
}
