package headless

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoInputs is returned when no argument resolves to a readable file.
var ErrNoInputs = errors.New("no input files matched")

var errNotRegular = errors.New("not a regular file")

// ExpandInputs resolves file arguments and glob patterns (including ** segments) into a
// list of regular files. Order follows the arguments; duplicates are dropped.
func ExpandInputs(inputs []string) ([]string, error) {
	seen := make(map[string]bool)
	files := make([]string, 0, len(inputs))

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range inputs {
		if !doublestar.ValidatePathPattern(input) {
			return nil, fmt.Errorf("invalid pattern %q: %w", input, doublestar.ErrBadPattern)
		}

		matches, err := doublestar.FilepathGlob(input, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", input, err)
		}

		if len(matches) == 0 {
			// A literal path that does not exist is reported; an empty glob is not.
			if isLiteral(input) {
				_, statErr := os.Stat(input)
				if statErr == nil {
					statErr = errNotRegular
				}

				return nil, fmt.Errorf("reading %q: %w", input, statErr)
			}

			continue
		}

		for _, match := range matches {
			add(match)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoInputs
	}

	return files, nil
}

func isLiteral(input string) bool {
	return !strings.ContainsAny(input, "*?[{")
}
