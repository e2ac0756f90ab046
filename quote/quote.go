// Package quote reads an observed market price out of a JSON quote
// document, like a broker export or a market data endpoint.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// DefaultPath selects a top level "last" property.
const DefaultPath = "$.last"

// ErrNoPrice is returned when the document does not hold a usable price.
var ErrNoPrice = errors.New("no price in quote")

// Source extracts a price from JSON documents.
type Source struct {
	Path   string       // jsonpath expression selecting the price
	Client *http.Client // used for http(s) locations
	Stdin  io.Reader    // read for the "-" location
	log    zerolog.Logger
}

// New returns a Source selecting path, DefaultPath if empty.
func New(path string, log zerolog.Logger) *Source {
	if path == "" {
		path = DefaultPath
	}
	return &Source{
		Path:   path,
		Client: http.DefaultClient,
		Stdin:  os.Stdin,
		log:    log,
	}
}

// Fetch reads the document at location (a file, "-" for stdin, or an
// http(s) URL) and returns the price it holds.
func (s *Source) Fetch(ctx context.Context, location string) (float64, error) {
	var jobj any
	var err error
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		err = jwget(ctx, s.Client, location, &jobj)
	case location == "-":
		err = json.NewDecoder(s.Stdin).Decode(&jobj)
	default:
		var data []byte
		data, err = os.ReadFile(location)
		if err == nil {
			err = json.Unmarshal(data, &jobj)
		}
	}
	if err != nil {
		return 0, fmt.Errorf("cannot read quote %q: %w", location, err)
	}
	price, err := s.Extract(jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot read quote %q: %w", location, err)
	}
	s.log.Debug().Str("location", location).Str("path", s.Path).Float64("price", price).Msg("quote fetched")
	return price, nil
}

// Extract evaluates the path on a decoded JSON document.
func (s *Source) Extract(jobj any) (float64, error) {
	jval, err := jsonpath.Get(s.Path, jobj)
	if err != nil {
		return 0, fmt.Errorf("%w: path %q: %w", ErrNoPrice, s.Path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return 0, fmt.Errorf("%w: path %q selects nothing", ErrNoPrice, s.Path)
		}
		jval = jlist[0]
	}
	val, err := toFloat(jval)
	if err != nil {
		return 0, fmt.Errorf("%w: path %q: %w", ErrNoPrice, s.Path, err)
	}
	if !(val > 0) {
		return 0, fmt.Errorf("%w: path %q: price must be positive, got %v", ErrNoPrice, s.Path, val)
	}
	return val, nil
}

// toFloat reads a JSON number, or a number written as a string, possibly
// with a decimal comma ("96,85").
func toFloat(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		sval := strings.ReplaceAll(v, " ", "")
		if strings.Contains(sval, ",") {
			// 1.234,56 style
			sval = strings.ReplaceAll(sval, ".", "")
			sval = strings.ReplaceAll(sval, ",", ".")
		}
		val, err := strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("value is an invalid string %q: %w", v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("value is neither a number nor a string: %v", jval)
	}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
