package catalog

import "sort"

// Catalog is a keyed collection of game records with stable insertion order.
// Replacing a record keeps its original position so repeated merge passes
// over the same data produce identical output.
type Catalog struct {
	ids     []string
	records map[string]*Record
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{records: make(map[string]*Record)}
}

// Set inserts or fully replaces the record for its id. Records without an id
// are ignored.
func (c *Catalog) Set(record *Record) {
	if record == nil || record.ID == "" {
		return
	}
	if _, exists := c.records[record.ID]; !exists {
		c.ids = append(c.ids, record.ID)
	}
	c.records[record.ID] = record
}

// Get returns the record for an id, or nil when absent.
func (c *Catalog) Get(id string) *Record {
	return c.records[id]
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Records returns all records in insertion order.
func (c *Catalog) Records() []*Record {
	records := make([]*Record, 0, len(c.ids))
	for _, id := range c.ids {
		records = append(records, c.records[id])
	}
	return records
}

// Merge builds a catalog from previously persisted records overlaid by
// freshly built ones. Later records fully replace earlier ones for the same
// id, so fresh records always win over persisted ones, and within the fresh
// batch the last-built record wins.
func Merge(persisted, fresh []*Record) *Catalog {
	merged := New()
	for _, record := range persisted {
		merged.Set(record)
	}
	for _, record := range fresh {
		merged.Set(record)
	}
	return merged
}

// SortByUpdated returns the records ordered most-recently-updated first.
// The sort is stable: records with equal keys keep their catalog order.
func SortByUpdated(records []*Record) []*Record {
	sorted := make([]*Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedTimestamp() > sorted[j].UpdatedTimestamp()
	})
	return sorted
}
