// Package docstore provides the shared mutable document store the game
// engines run against: a path-keyed tree of values with last-write-wins
// semantics per path and push-based change notification. The interface is
// deliberately the minimum the room logic needs; any store with these
// operations can host a game.
package docstore

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotFound is returned when decoding a path with no value
var ErrNotFound = errors.New("docstore: path not found")

// Store is a shared document tree addressed by slash-separated paths.
// Write merges fields at a path without clobbering sibling paths; Replace
// overwrites the subtree. No transactional multi-path guarantee is offered
// and the game logic is structured to not need one.
type Store interface {
	// Read returns the value at path, false when nothing is there.
	Read(path string) (interface{}, bool)

	// Write merges the given fields at path. Field keys may themselves be
	// deep paths (e.g. "rounds/round2/status"); each names a subtree that is
	// replaced with the field value.
	Write(path string, fields map[string]interface{})

	// Replace overwrites the subtree at path with value.
	Replace(path string, value interface{})

	// Delete removes the subtree at path.
	Delete(path string)

	// Subscribe registers fn for changes at or below path. fn is fired once
	// with the current value on subscribe and again after every relevant
	// change, asynchronously and in order per subscriber (at-least-once).
	// The returned function cancels the subscription.
	Subscribe(path string, fn func(value interface{})) (unsubscribe func())
}

// Decode reads the subtree at path into out via JSON round-trip, so typed
// views can be built over the raw tree. Returns ErrNotFound when the path
// is empty.
func Decode(s Store, path string, out interface{}) error {
	value, ok := s.Read(path)
	if !ok {
		return ErrNotFound
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// splitPath breaks a slash path into segments, dropping empties
func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// isRelated reports whether a change at one path is visible from the other:
// true when either path is a segment-wise prefix of the other.
func isRelated(a, b []string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
