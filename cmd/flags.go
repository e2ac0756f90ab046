package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/bonds"
)

// scenarioFlags override the configured scenario parameters.
type scenarioFlags struct {
	tna, opt, pess string
	method         string
}

func (s *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.tna, "tna", "", "Target TNA in percent (e.g., 45)")
	f.StringVar(&s.opt, "opt", "", "Optimistic spread in percentage points, subtracted from the target")
	f.StringVar(&s.pess, "pess", "", "Pessimistic spread in percentage points, added to the target")
	f.StringVar(&s.method, "method", "", "Discounting method (compound, simple)")
}

// changed reports whether any parameter is overridden.
func (s *scenarioFlags) changed() bool {
	return s.tna != "" || s.opt != "" || s.pess != "" || s.method != ""
}

// apply returns p with the overridden parameters.
func (s *scenarioFlags) apply(p bonds.ScenarioParams) (bonds.ScenarioParams, error) {
	for _, v := range []struct {
		name string
		val  string
		dst  *float64
	}{
		{"tna", s.tna, &p.TargetTNA},
		{"opt", s.opt, &p.OptimisticSpread},
		{"pess", s.pess, &p.PessimisticSpread},
	} {
		if v.val == "" {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v.val), "%"), 64)
		if err != nil {
			return p, fmt.Errorf("invalid -%s %q: %w", v.name, v.val, err)
		}
		*v.dst = x
	}
	if s.method != "" {
		m, err := bonds.ParseMethod(s.method)
		if err != nil {
			return p, err
		}
		p.Method = m
	}
	return p, nil
}

// sortFlag is a repeatable -sort flag. Each occurrence behaves like a click
// on a column header: the same key again flips the direction.
type sortFlag struct {
	config bonds.SortConfig
	set    bool
}

func (s *sortFlag) String() string {
	if s == nil {
		return ""
	}
	return string(s.config.Key)
}

func (s *sortFlag) Set(v string) error {
	key, err := bonds.ParseSortKey(v)
	if err != nil {
		return err
	}
	if !s.set {
		s.config, s.set = bonds.SortConfig{Key: key, Direction: bonds.Asc}, true
		return nil
	}
	s.config = s.config.Toggle(key)
	return nil
}
