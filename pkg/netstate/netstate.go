// Package netstate holds the emulated network interface table: a plain
// in-memory map from interface name to address, broadcast, and
// administrative status. The table is owned by the CLI context and is only
// touched from the single REPL goroutine.
package netstate

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"sort"
)

// DefaultPrefixLen is assumed for interfaces created through ifconfig,
// which supplies no mask.
const DefaultPrefixLen = 24

// Entry describes one emulated interface.
type Entry struct {
	Addr      netip.Addr
	Broadcast netip.Addr
	Prefix    int
	Up        bool
}

// Table maps interface names to their entries.
type Table struct {
	entries map[string]Entry
}

// NewTable returns an empty interface table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Seeded returns a table with the default interface the emulator ships
// with: ens33 at 192.168.253.135/24, administratively down.
func Seeded() *Table {
	t := NewTable()
	addr := netip.AddrFrom4([4]byte{192, 168, 253, 135})
	t.entries["ens33"] = Entry{
		Addr:      addr,
		Broadcast: Broadcast(addr, DefaultPrefixLen),
		Prefix:    DefaultPrefixLen,
		Up:        false,
	}
	return t
}

// Get returns the entry for name.
func (t *Table) Get(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns all interface names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for n := range t.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of interfaces in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Upsert applies ifconfig semantics: an existing interface gets the new
// address with its broadcast left unchanged; an unseen interface is
// created with a broadcast derived from the address and the default /24
// prefix. Either way the interface comes up. The second return value
// reports whether the entry was created.
func (t *Table) Upsert(name string, addr netip.Addr) (Entry, bool) {
	if e, ok := t.entries[name]; ok {
		e.Addr = addr
		e.Up = true
		t.entries[name] = e
		return e, false
	}
	e := Entry{
		Addr:      addr,
		Broadcast: Broadcast(addr, DefaultPrefixLen),
		Prefix:    DefaultPrefixLen,
		Up:        true,
	}
	t.entries[name] = e
	return e, true
}

// Assign sets address, prefix, and the matching broadcast for name,
// creating the entry if needed. Administrative status is preserved.
func (t *Table) Assign(name string, addr netip.Addr, prefixLen int) Entry {
	e := t.entries[name]
	e.Addr = addr
	e.Prefix = prefixLen
	e.Broadcast = Broadcast(addr, prefixLen)
	t.entries[name] = e
	return e
}

// SetAdmin records the administrative status for name, creating the entry
// if it does not exist yet.
func (t *Table) SetAdmin(name string, up bool) Entry {
	e := t.entries[name]
	e.Up = up
	t.entries[name] = e
	return e
}

// Broadcast computes the directed broadcast address: addr | ^mask.
func Broadcast(addr netip.Addr, prefixLen int) netip.Addr {
	a := addr.As4()
	v := binary.BigEndian.Uint32(a[:])
	mask := prefixMask(prefixLen)
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], v|^mask)
	return netip.AddrFrom4(out)
}

// PrefixFromMask converts a dotted-quad netmask to a prefix length,
// rejecting non-contiguous masks.
func PrefixFromMask(mask netip.Addr) (int, error) {
	m := mask.As4()
	v := binary.BigEndian.Uint32(m[:])
	ones := 0
	for ones < 32 && v&(1<<31) != 0 {
		ones++
		v <<= 1
	}
	if v != 0 {
		return 0, fmt.Errorf("non-contiguous netmask %s", mask)
	}
	return ones, nil
}

// MaskString renders a prefix length as a dotted-quad netmask.
func MaskString(prefixLen int) string {
	mask := prefixMask(prefixLen)
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], mask)
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
}

func prefixMask(prefixLen int) uint32 {
	if prefixLen <= 0 {
		return 0
	}
	if prefixLen >= 32 {
		return ^uint32(0)
	}
	return ^uint32(0) << (32 - prefixLen)
}
