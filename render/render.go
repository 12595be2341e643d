// Package render writes recovered secrets for people and for machines.
//
// Secrets are printed in full decimal with the sign first; the JSON format
// carries them as strings so that no consumer rounds them to a float.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vitalvas/shamirkit/recovery"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrInvalidFormat = errors.New("render: invalid format")

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

type report struct {
	Source       string   `json:"source"`
	K            int      `json:"k,omitempty"`
	Secret       string   `json:"secret,omitempty"`
	Inconsistent []string `json:"inconsistent,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []recovery.Result) error {
	switch format {
	case "", FormatText:
		return writeText(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

func newReport(result recovery.Result) report {
	r := report{Source: result.Source, K: result.K}

	if result.Err != nil {
		r.Error = result.Err.Error()
		return r
	}

	if result.Secret != nil {
		r.Secret = result.Secret.String()
	}

	for _, point := range result.Inconsistent {
		r.Inconsistent = append(r.Inconsistent, point.X.String())
	}

	return r
}

func writeText(w io.Writer, results []recovery.Result) error {
	for _, result := range results {
		r := newReport(result)

		var err error
		switch {
		case r.Error != "":
			_, err = fmt.Fprintf(w, "%s\terror: %s\n", r.Source, r.Error)
		case len(r.Inconsistent) > 0:
			_, err = fmt.Fprintf(w, "%s\t%s\tinconsistent shares: %v\n", r.Source, r.Secret, r.Inconsistent)
		default:
			_, err = fmt.Fprintf(w, "%s\t%s\n", r.Source, r.Secret)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, results []recovery.Result) error {
	reports := make([]report, len(results))
	for i, result := range results {
		reports[i] = newReport(result)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(reports)
}
