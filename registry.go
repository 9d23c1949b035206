package morse

import (
	"context"
	"sync"
)

// Registry holds the character tables of every loaded character set.
// It is read-only after construction and safe for concurrent use; the
// only shared mutable state is the internal reverse-table cache.
type Registry struct {
	version     int
	fingerprint string
	sets        []CharacterSet
	entries     map[CharacterSet][]Entry
	forward     map[CharacterSet]map[string]Pattern
	cache       *reverseCache
}

// registryConfig collects RegistryOption values.
type registryConfig struct {
	cacheCapacity int
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// WithCacheCapacity sets how many reverse tables the registry keeps.
// Zero or less disables the cache and rebuilds the table on every lookup.
func WithCacheCapacity(n int) RegistryOption {
	return func(c *registryConfig) {
		c.cacheCapacity = n
	}
}

// NewRegistry validates asset and builds a registry from it.
// If asset.Checksum is set it must match the fingerprint of the tables.
func NewRegistry(asset Asset, opts ...RegistryOption) (*Registry, error) {
	return newRegistry(context.Background(), asset, opts...)
}

func newRegistry(ctx context.Context, asset Asset, opts ...RegistryOption) (*Registry, error) {
	cfg := registryConfig{cacheCapacity: DefaultCacheCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	tables, err := validateAsset(asset)
	if err != nil {
		emitRegistryLoaded(ctx, asset.Version, "", len(asset.Sets), 0, err)
		return nil, err
	}

	fp := fingerprint(tables)
	if asset.Checksum != "" && asset.Checksum != fp {
		err := newAssetError(ErrChecksum, "", "", nil)
		emitRegistryLoaded(ctx, asset.Version, fp, len(tables), 0, err)
		return nil, err
	}

	r := &Registry{
		version:     asset.Version,
		fingerprint: fp,
		sets:        make([]CharacterSet, 0, len(tables)),
		entries:     make(map[CharacterSet][]Entry, len(tables)),
		forward:     make(map[CharacterSet]map[string]Pattern, len(tables)),
		cache:       newReverseCache(cfg.cacheCapacity),
	}

	total := 0
	for _, t := range tables {
		r.sets = append(r.sets, t.set)
		r.entries[t.set] = t.entries
		r.forward[t.set] = t.forward
		total += len(t.entries)
	}

	emitRegistryLoaded(ctx, r.version, fp, len(r.sets), total, nil)
	return r, nil
}

// LoadRegistry decodes an Asset with c and builds a registry from it.
func LoadRegistry(c Codec, data []byte, opts ...RegistryOption) (*Registry, error) {
	var asset Asset
	if err := c.Unmarshal(data, &asset); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return NewRegistry(asset, opts...)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	asset, err := parseEmbeddedAsset()
	if err != nil {
		panic("morse: embedded tables: " + err.Error())
	}
	r, err := NewRegistry(asset)
	if err != nil {
		panic("morse: embedded tables: " + err.Error())
	}
	return r
})

// DefaultRegistry returns the registry built from the embedded tables.
// It is built once, on first use.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Forward returns the pattern for char from the first set in order that
// defines it. Sets not loaded in the registry are skipped.
func (r *Registry) Forward(char string, order PriorityOrder) (Pattern, bool) {
	for _, cs := range order {
		if p, ok := r.forward[cs][char]; ok {
			return p, true
		}
	}
	return "", false
}

// Reverse returns the character that owns p under order. When several
// sets define p, the set listed first in order wins; inside one set, the
// entry listed first wins.
func (r *Registry) Reverse(p Pattern, order PriorityOrder) (string, bool) {
	return r.reverse(context.Background(), p, order)
}

func (r *Registry) reverse(ctx context.Context, p Pattern, order PriorityOrder) (string, bool) {
	char, ok := r.reverseTable(ctx, order)[p]
	return char, ok
}

// ReverseTable returns a copy of the pattern-to-character table for order.
func (r *Registry) ReverseTable(order PriorityOrder) map[Pattern]string {
	table := r.reverseTable(context.Background(), order)
	out := make(map[Pattern]string, len(table))
	for p, char := range table {
		out[p] = char
	}
	return out
}

func (r *Registry) reverseTable(ctx context.Context, order PriorityOrder) reverseTable {
	return r.cache.get(ctx, order, r.buildReverse)
}

// buildReverse merges the sets of order into one table. Existing patterns
// are never overwritten.
func (r *Registry) buildReverse(order PriorityOrder) reverseTable {
	table := make(reverseTable)
	for _, cs := range order {
		for _, e := range r.entries[cs] {
			if _, taken := table[e.Code]; !taken {
				table[e.Code] = e.Char
			}
		}
	}
	return table
}

// Sets returns the loaded character sets in asset order.
func (r *Registry) Sets() []CharacterSet {
	return append([]CharacterSet(nil), r.sets...)
}

// Entries returns a copy of the entries of cs in asset order.
func (r *Registry) Entries(cs CharacterSet) []Entry {
	return append([]Entry(nil), r.entries[cs]...)
}

// Version returns the asset version the registry was built from.
func (r *Registry) Version() int {
	return r.version
}

// Fingerprint returns the hex BLAKE2b-256 digest of the tables.
func (r *Registry) Fingerprint() string {
	return r.fingerprint
}

// CacheLen returns the number of cached reverse tables.
func (r *Registry) CacheLen() int {
	return r.cache.Len()
}

// ResetCache drops every cached reverse table.
func (r *Registry) ResetCache() {
	r.cache.Reset()
}

// Asset returns the registry contents as an Asset with its checksum set.
func (r *Registry) Asset() Asset {
	asset := Asset{
		Version:  r.version,
		Checksum: r.fingerprint,
		Sets:     make([]SetTable, 0, len(r.sets)),
	}
	for _, cs := range r.sets {
		asset.Sets = append(asset.Sets, SetTable{
			Set:     cs.String(),
			Entries: r.Entries(cs),
		})
	}
	return asset
}

// Export encodes the registry contents with c.
func (r *Registry) Export(c Codec) ([]byte, error) {
	data, err := c.Marshal(r.Asset())
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
