package pipeline

import (
	"os"
	"strings"

	"github.com/coverforge/coverforge/pkg/errors"
)

// LoadInput reads the source text for a cover from a file. YAML front
// matter delimited by --- lines is stripped so metadata headers do not
// skew the analysis.
func LoadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "read input %s", path)
	}
	return StripFrontMatter(string(data)), nil
}

// StripFrontMatter removes a leading front matter block. Only documents
// that start with --- are touched; an unterminated block is left intact
// rather than guessed at.
func StripFrontMatter(text string) string {
	if !strings.HasPrefix(text, "---") {
		return text
	}
	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return text
	}
	return parts[2]
}
