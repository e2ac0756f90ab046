package bonds

import (
	"fmt"
	"strings"
)

// Method defines how a redemption value is discounted back to today.
type Method int

const (
	// Compound discounts exponentially: VF / (1+i)^n. It is the usual choice for bonds.
	Compound Method = iota
	// Simple discounts linearly: VF / (1 + i*n). It is common for very short term notes.
	Simple
)

func (m Method) String() string {
	switch m {
	case Simple:
		return "simple"
	case Compound:
		return "compound"
	default:
		return "unknown"
	}
}

// ParseMethod parses a string into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "linear":
		return Simple, nil
	case "compound", "exponential":
		return Compound, nil
	default:
		return 0, fmt.Errorf("unknown discounting method: %q", s)
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if m != Simple && m != Compound {
		return nil, fmt.Errorf("unknown discounting method: %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
