package lut

// Zones is the number of screen zones; Channels the number of color channels
// per zone. A full set is Zones×Channels = 12 tables.
const (
	Zones    = 4
	Channels = 3
)

// Set is the immutable collection of tables for all zone/channel pairs.
// A Set is built as a whole and atomically swapped in when configuration
// changes; the per-pixel evaluator never observes a half-rebuilt table.
type Set struct {
	tables [Zones][Channels]*Table
}

// NewSet builds a set from a builder callback invoked once per zone/channel
// pair. The callback must return a non-nil table.
func NewSet(build func(zone, channel int) *Table) *Set {
	s := &Set{}
	for z := range Zones {
		for c := range Channels {
			s.tables[z][c] = build(z, c)
		}
	}
	return s
}

// Table returns the table for a zone/channel pair. Indices out of range
// return nil.
func (s *Set) Table(zone, channel int) *Table {
	if zone < 0 || zone >= Zones || channel < 0 || channel >= Channels {
		return nil
	}
	return s.tables[zone][channel]
}

// ZoneTables returns the three channel tables for one zone.
func (s *Set) ZoneTables(zone int) [Channels]*Table {
	if zone < 0 || zone >= Zones {
		return [Channels]*Table{}
	}
	return s.tables[zone]
}
