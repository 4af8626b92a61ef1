package julia

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParam is returned for text that is not a complex parameter.
var ErrParam = errors.New("julia: invalid parameter")

// ParseParam reads a complex parameter. Accepted forms are a preset name,
// "(re,im)", "(re)", "re" and Go's "re+imi".
func ParseParam(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrParam)
	}
	if c, ok := Preset(s); ok {
		return c, nil
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := s[1 : len(s)-1]
		re, im, pair := strings.Cut(inner, ",")
		r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrParam, s, err)
		}
		if !pair {
			return complex(r, 0), nil
		}
		i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrParam, s, err)
		}
		return complex(r, i), nil
	}

	if r, err := strconv.ParseFloat(s, 64); err == nil {
		return complex(r, 0), nil
	}
	c, err := strconv.ParseComplex(strings.ReplaceAll(s, "j", "i"), 128)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParam, s)
	}
	return c, nil
}
