// pkg/options/options.go
package options

import "sort"

// Options is a string to string mapping. Keys are unique and the last write wins.
// The zero value is not usable; create one with New.
type Options struct {
	vars map[string]string
}

// New creates an empty Options
func New() *Options {
	return &Options{vars: make(map[string]string)}
}

// FromMap copies m into a new Options
func FromMap(m map[string]string) *Options {
	o := New()
	for k, v := range m {
		o.vars[k] = v
	}
	return o
}

// Set stores value under key
func (o *Options) Set(key, value string) {
	o.vars[key] = value
}

// Get returns the value for key, or "" when the key is absent
func (o *Options) Get(key string) string {
	return o.vars[key]
}

// Lookup returns the value for key and whether it was present
func (o *Options) Lookup(key string) (string, bool) {
	v, ok := o.vars[key]
	return v, ok
}

// Has reports whether key is present, even with an empty value
func (o *Options) Has(key string) bool {
	_, ok := o.vars[key]
	return ok
}

// Delete removes key
func (o *Options) Delete(key string) {
	delete(o.vars, key)
}

// Merge copies every entry of other over o
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	for k, v := range other.vars {
		o.vars[k] = v
	}
}

// Len returns the number of keys
func (o *Options) Len() int {
	return len(o.vars)
}

// Keys returns all keys in sorted order
func (o *Options) Keys() []string {
	keys := make([]string, 0, len(o.vars))
	for k := range o.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying mapping
func (o *Options) Map() map[string]string {
	m := make(map[string]string, len(o.vars))
	for k, v := range o.vars {
		m[k] = v
	}
	return m
}
