package v1handler

import (
	"triangle/pkg/domain"
	"triangle/pkg/serrors"

	"github.com/go-faster/jx"
)

// sides collects a, b and c from a JSON object and tracks which were present.
type sides struct {
	t    domain.Triangle
	seen [3]bool
}

// decodeField decodes key into s if it names a side and reports whether it did.
// Only JSON numbers are accepted as side values.
func (s *sides) decodeField(d *jx.Decoder, key string) (bool, error) {
	var dst *float64
	idx := 0
	switch key {
	case "a":
		dst = &s.t.A
	case "b":
		dst, idx = &s.t.B, 1
	case "c":
		dst, idx = &s.t.C, 2
	default:
		return false, nil
	}

	if d.Next() != jx.Number {
		return true, serrors.With(serrors.ErrBadRequest, "side %s must be a number", key)
	}
	v, err := d.Float64()
	if err != nil {
		return true, serrors.Wrap(serrors.ErrBadRequest, err, "side %s", key)
	}
	*dst = v
	s.seen[idx] = true

	return true, nil
}

// complete returns an error naming the first side that was not decoded.
func (s *sides) complete() error {
	for i, name := range []string{"a", "b", "c"} {
		if !s.seen[i] {
			return serrors.With(serrors.ErrBadRequest, "missing side %s", name)
		}
	}

	return nil
}

// badJSON tags decoder errors that do not already carry a kind as bad requests.
func badJSON(err error) error {
	if serrors.KindOf(err) != nil {
		return err
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON")
}
