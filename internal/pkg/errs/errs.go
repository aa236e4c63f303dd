package errs

import (
	stderrors "errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr so callers can detect it with plain errors.Is.
// The join keeps markErr in the standard unwrap chain; cockroachdb marks
// alone are invisible to the stdlib matcher.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(stderrors.Join(err, markErr), markErr)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
