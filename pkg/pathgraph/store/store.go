// Package store persists completed search results so hosts can reload
// earlier analysis reports without re-running the search.
//
// The core algorithms never touch a Store; hosts drive it after a search
// completes:
//
//	paths, err := pathgraph.FindPaths(ctx, states, start, pathgraph.WithSearchID(id))
//	if err == nil {
//	    st.Save(store.Report{SearchID: id, Kind: store.KindPaths, Paths: paths})
//	}
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/randalmurphal/pathgraph/pkg/pathgraph"
)

// Report kinds.
const (
	KindPaths = "paths"
	KindLoops = "loops"
)

// Report is one persisted search result.
type Report struct {
	// SearchID identifies the search run; reports are keyed by it.
	SearchID string `json:"search_id"`

	// Kind is KindPaths or KindLoops.
	Kind string `json:"kind"`

	// StartState is the start state ID of a path search, empty for loop
	// scans.
	StartState string `json:"start_state,omitempty"`

	// EndState is the end state ID when the search had one.
	EndState string `json:"end_state,omitempty"`

	// CreatedAt is set by Save when zero.
	CreatedAt time.Time `json:"created_at"`

	// Paths holds path search results.
	Paths []pathgraph.Path `json:"paths,omitempty"`

	// Loops holds loop scan results.
	Loops []pathgraph.Loop `json:"loops,omitempty"`
}

// Info provides report metadata without loading the full result set.
type Info struct {
	SearchID  string
	Kind      string
	CreatedAt time.Time
	Size      int64
}

// Store persists search reports. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save stores a report, overwriting any report with the same
	// SearchID.
	Save(report Report) error

	// Load retrieves a report by search ID.
	// Returns ErrNotFound if no report exists.
	Load(searchID string) (Report, error)

	// List returns metadata for all stored reports, newest first.
	// Returns an empty slice (not an error) when the store is empty.
	List() ([]Info, error)

	// Delete removes a report. Returns nil if it doesn't exist.
	Delete(searchID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a report doesn't exist.
	ErrNotFound = errors.New("report not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("report store closed")

	// ErrSearchIDRequired indicates a report was saved without a search
	// ID.
	ErrSearchIDRequired = errors.New("search ID required")
)

// encodeReport serializes a report for storage, stamping CreatedAt when
// unset.
func encodeReport(report *Report) ([]byte, error) {
	if report.SearchID == "" {
		return nil, ErrSearchIDRequired
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}

// decodeReport deserializes a stored report.
func decodeReport(data []byte) (Report, error) {
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}
