package bonds

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// this file contains functions to handle the portfolio file format.
//
// The format is a single JSON array of instrument objects, each with the
// properties 'id', 'ticker', 'maturityDate' (YYYY-MM-DD) and 'redemptionValue'.
// The same format is used to store the portfolio and to import or export it.

// ImportInstruments reads instruments from r in the portfolio file format.
// Anything but a JSON array of instruments is rejected with [ErrInvalidInput].
func ImportInstruments(r io.Reader) ([]Instrument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: portfolio must be a JSON array of instruments", ErrInvalidInput)
	}
	var instruments []Instrument
	if err := json.Unmarshal(trimmed, &instruments); err != nil {
		return nil, fmt.Errorf("%w: cannot parse portfolio: %w", ErrInvalidInput, err)
	}
	if instruments == nil {
		instruments = []Instrument{}
	}
	return instruments, nil
}

// ExportInstruments writes instruments to w in the portfolio file format.
func ExportInstruments(w io.Writer, instruments []Instrument) error {
	if instruments == nil {
		instruments = []Instrument{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(instruments); err != nil {
		return fmt.Errorf("cannot write portfolio: %w", err)
	}
	return nil
}

// Import replaces the portfolio content with the instruments read from r.
// On error the portfolio is left unchanged.
func (p *Portfolio) Import(r io.Reader) error {
	instruments, err := ImportInstruments(r)
	if err != nil {
		return err
	}
	p.instruments = instruments
	return nil
}

// Export writes the portfolio to w.
func (p *Portfolio) Export(w io.Writer) error {
	return ExportInstruments(w, p.instruments)
}

// LoadPortfolio reads the portfolio stored in file. A missing file is an
// empty portfolio.
func LoadPortfolio(file string) (*Portfolio, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio %q: %w", file, err)
	}
	defer f.Close()

	p := NewPortfolio()
	if err := p.Import(f); err != nil {
		return nil, fmt.Errorf("cannot load portfolio %q: %w", file, err)
	}
	return p, nil
}

// SavePortfolio stores p into file. The file is replaced atomically.
func SavePortfolio(file string, p *Portfolio) error {
	tmp, err := os.CreateTemp(filepath.Dir(file), filepath.Base(file)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot save portfolio %q: %w", file, err)
	}
	defer os.Remove(tmp.Name())

	if err := p.Export(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot save portfolio %q: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot save portfolio %q: %w", file, err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("cannot save portfolio %q: %w", file, err)
	}
	return nil
}
