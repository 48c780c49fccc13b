package daycount

import "fmt"

// The registry is populated during package initialization and treated as
// immutable afterwards, so lookups need no synchronization. Register exists
// for callers that plug in extra conventions from their own init functions,
// before any lookup runs.
var (
	registry = make(map[string]Convention, len(standards))
	ordered  = make([]Convention, 0, len(standards))
)

func init() {
	for _, s := range standards {
		if err := Register(s); err != nil {
			panic(err)
		}
	}
}

// Of returns the convention registered under the canonical name.
//
// Names are exact and case-sensitive, e.g. "Act/360" or "30E/360 ISDA";
// unknown names return ErrUnknown.
func Of(name string) (Convention, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Of: %q: %w", name, ErrUnknown)
	}
	return c, nil
}

// All returns the registered conventions in registration order, the
// built-ins first. The returned slice is a copy.
func All() []Convention {
	out := make([]Convention, len(ordered))
	copy(out, ordered)
	return out
}

// Register adds a convention under its name.
//
// It must only be called during program initialization, before any Of or
// Fraction call. Duplicate names are rejected so built-ins cannot be
// replaced.
func Register(c Convention) error {
	name := c.Name()
	if name == "" {
		return fmt.Errorf("Register: empty convention name")
	}
	if _, ok := registry[name]; ok {
		return fmt.Errorf("Register: %q already registered", name)
	}
	registry[name] = c
	ordered = append(ordered, c)
	return nil
}
