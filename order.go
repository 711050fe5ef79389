package softspi

// Order determines where in a word each transmitted bit comes from (on
// write) or goes to (on read).
//
// Note the naming is relative to transmission steps, not byte significance:
// BigEndian puts bit 0 of the word on the wire first. Check your slave
// device's datasheet against the mapping, not the name.
type Order int

const (
	// LittleEndian transmits the highest-indexed bit of an n-bit word first,
	// i.e. transmission step i maps to bit n-1-i. It is the default.
	LittleEndian Order = iota
	// BigEndian transmits bit 0 first, i.e. transmission step i maps to bit i.
	BigEndian
)

func (o Order) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// bitIndex maps transmission step i of an n-bit transfer to the bit index
// within the word. The same mapping applies on both the write and read paths.
func (o Order) bitIndex(n, i int) int {
	if o == BigEndian {
		return i
	}
	return n - 1 - i
}
