package sharefile

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/vitalvas/shamirkit/shamir"
)

// Selection decides which k entries of a document are used.
type Selection string

const (
	// SelectDocument keeps the entries in document order.
	SelectDocument Selection = "document"
	// SelectAscending orders the entries by numeric x-coordinate.
	SelectAscending Selection = "ascending"
)

// ParseSelection validates a selection name. The empty string selects document order.
func ParseSelection(s string) (Selection, error) {
	switch Selection(s) {
	case "", SelectDocument:
		return SelectDocument, nil
	case SelectAscending:
		return SelectAscending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSelection, s)
	}
}

// Validate checks the keys against the entries.
func (d *Document) Validate() error {
	if d.Keys.K < 1 {
		return fmt.Errorf("%w: k=%d", shamir.ErrInvalidThreshold, d.Keys.K)
	}

	if d.Keys.N != 0 && d.Keys.N < d.Keys.K {
		return fmt.Errorf("%w: n=%d is less than k=%d", ErrInvalidDocument, d.Keys.N, d.Keys.K)
	}

	if len(d.Entries) < d.Keys.K {
		return fmt.Errorf("%w: need %d shares, document has %d", shamir.ErrThresholdMismatch, d.Keys.K, len(d.Entries))
	}

	return nil
}

// Missing returns how many of the n issued shares are absent from the document.
func (d *Document) Missing() int {
	if missing := d.Keys.N - len(d.Entries); missing > 0 {
		return missing
	}
	return 0
}

// Records returns every entry as a shamir.Record, ordered by sel.
func (d *Document) Records(sel Selection) ([]shamir.Record, error) {
	entries := make([]Entry, len(d.Entries))
	copy(entries, d.Entries)

	switch sel {
	case "", SelectDocument:
	case SelectAscending:
		if err := sortByX(entries); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, sel)
	}

	records := make([]shamir.Record, len(entries))
	for i, entry := range entries {
		records[i] = shamir.Record{X: entry.X, Base: entry.Base, Value: entry.Value}
	}

	return records, nil
}

func sortByX(entries []Entry) error {
	xs := make(map[string]*big.Int, len(entries))

	for _, entry := range entries {
		x, ok := new(big.Int).SetString(entry.X, 10)
		if !ok {
			return fmt.Errorf("%w: %q on line %d", shamir.ErrInvalidCoordinate, entry.X, entry.Line)
		}
		xs[entry.X] = x
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return xs[entries[i].X].Cmp(xs[entries[j].X]) < 0
	})

	return nil
}
