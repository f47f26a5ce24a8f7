// Package options provides shared utilities for option validation across packages.
package options

import (
	"strings"

	"github.com/timepp/uu/uuerrors"
)

// Source is one of several mutually exclusive inputs.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns a *uuerrors.ConfigError unless exactly one source is set.
func ExactlyOne(sources ...Source) error {
	var set []string
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}
	if len(set) == 1 {
		return nil
	}

	err := &uuerrors.ConfigError{
		Option:  strings.Join(names, "/"),
		Message: "exactly one of " + orList(names) + " must be provided",
	}
	if len(set) > 1 {
		err.Value = strings.Join(set, ", ")
	}
	return err
}

// orList joins names as "a or b" / "a, b, or c".
func orList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
