package console

// Remote collection cache. Entries are keyed by a tagged (kind, id) pair
// rather than strings; only inquiry details carry a discriminator. The cache
// never fetches by itself: the TUI pump asks PendingFetches each cycle and
// runs one command per key, reporting back through BeginFetch/Resolve.

type Kind int

const (
	KindStats Kind = iota
	KindCategories
	KindPortfolio
	KindInquiries
	KindInquiryDetail
	KindSettings
)

type Key struct {
	Kind Kind
	ID   int
}

func StatsKey() Key               { return Key{Kind: KindStats} }
func CategoriesKey() Key          { return Key{Kind: KindCategories} }
func PortfolioKey() Key           { return Key{Kind: KindPortfolio} }
func InquiriesKey() Key           { return Key{Kind: KindInquiries} }
func InquiryDetailKey(id int) Key { return Key{Kind: KindInquiryDetail, ID: id} }
func SettingsKey() Key            { return Key{Kind: KindSettings} }

// Entry is a cached query result. Data keeps its previous value while a
// background refetch is in flight, so views never flash empty on invalidation.
type Entry struct {
	Data    any
	Err     error
	Loading bool

	stale bool
	gen   uint64
}

type Cache struct {
	entries map[Key]*Entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*Entry)}
}

// Get returns a copy of the entry; ok is false when nothing is cached.
func (c *Cache) Get(key Key) (Entry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// NeedsFetch reports whether the key should be (re)fetched: nothing cached
// yet, or marked stale with no fetch already in flight.
func (c *Cache) NeedsFetch(key Key) bool {
	e, ok := c.entries[key]
	if !ok {
		return true
	}
	return e.stale && !e.Loading
}

// Invalidate marks an entry stale so the next pump refetches it. Missing
// entries are left alone; they are fetched on first mount anyway.
func (c *Cache) Invalidate(key Key) {
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// InvalidateKind marks every entry of the kind stale, covering all inquiry
// detail discriminators at once.
func (c *Cache) InvalidateKind(kind Kind) {
	for key, e := range c.entries {
		if key.Kind == kind {
			e.stale = true
		}
	}
}

// Remove discards an entry outright. Any in-flight fetch for it becomes an
// orphan: its generation no longer exists, so Resolve drops the result.
func (c *Cache) Remove(key Key) {
	delete(c.entries, key)
}

// RemoveAll purges the whole cache (logout). Nothing survives, not even as
// stale data.
func (c *Cache) RemoveAll() {
	c.entries = make(map[Key]*Entry)
}

// BeginFetch marks the key loading and returns the generation token the
// eventual Resolve must present.
func (c *Cache) BeginFetch(key Key) uint64 {
	e, ok := c.entries[key]
	if !ok {
		e = &Entry{}
		c.entries[key] = e
	}
	e.gen++
	e.Loading = true
	e.stale = false
	return e.gen
}

// Resolve stores a fetch result. A result whose generation no longer matches
// (the entry was purged or refetched since) is discarded, which is what keeps
// a late response for a superseded inquiry selection from overwriting anything
// current.
func (c *Cache) Resolve(key Key, gen uint64, data any, err error) bool {
	e, ok := c.entries[key]
	if !ok || e.gen != gen {
		return false
	}
	e.Loading = false
	e.Data = data
	e.Err = err
	return true
}
