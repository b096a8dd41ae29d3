package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// ErrInvalidAttribute is returned for a pass-through attribute name that is
// empty or contains characters not allowed in an HTML attribute name.
var ErrInvalidAttribute = errors.New("invalid attribute name")

// consumedKeys never reach the element as pass-through attributes.
var consumedKeys = map[string]bool{
	"src":         true,
	"srcset":      true,
	"lazy":        true,
	"server_url":  true,
	"breakpoints": true,
	"options":     true,
}

// lazyConsumedKeys are re-emitted in transformed form by lazy mode.
var lazyConsumedKeys = map[string]bool{
	"sizes":       true,
	"class":       true,
	"data-src":    true,
	"data-srcset": true,
	"data-sizes":  true,
}

// Attributes are presentation attributes forwarded to the rendered element.
// Names are matched case-insensitively.
type Attributes map[string]string

// Get returns the value of name, ignoring case. When several keys differ
// only in case the lexically smallest one wins.
func (a Attributes) Get(name string) string {
	for _, k := range a.sortedKeys() {
		if strings.EqualFold(k, name) {
			return a[k]
		}
	}
	return ""
}

// UnmarshalJSON accepts string, number and boolean values. Numbers and
// booleans keep their JSON spelling, and null drops the key.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*a = nil
		return nil
	}

	out := make(Attributes, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case bytes.Equal(v, []byte("null")):
			continue
		case len(v) > 0 && v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("attribute %q: %w", k, err)
			}
			out[k] = s
		case len(v) > 0 && (v[0] == '{' || v[0] == '['):
			return fmt.Errorf("attribute %q: value must be a string, number or boolean", k)
		default:
			out[k] = string(v)
		}
	}
	*a = out
	return nil
}

// passThrough returns the attributes left after removing consumed keys,
// lower-cased and sorted by name.
func (a Attributes) passThrough(lazy bool) ([]html.Attribute, error) {
	attrs := make([]html.Attribute, 0, len(a))
	seen := make(map[string]bool, len(a))

	for _, k := range a.sortedKeys() {
		name := strings.ToLower(k)
		if isConsumed(name, lazy) || seen[name] {
			continue
		}
		if !validAttrName(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttribute, k)
		}
		seen[name] = true
		attrs = append(attrs, html.Attribute{Key: name, Val: a[k]})
	}

	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	return attrs, nil
}

func (a Attributes) sortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isConsumed(name string, lazy bool) bool {
	if consumedKeys[name] {
		return true
	}
	return lazy && lazyConsumedKeys[name]
}

// validAttrName follows the HTML attribute-name production: no controls,
// whitespace, quotes, '>', '/' or '='.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= 0x20 || r == 0x7f {
			return false
		}
		switch r {
		case '"', '\'', '>', '/', '=', '<':
			return false
		}
	}
	return true
}
