package card

// Segments is an address split for truncated rendering: a short prefix, the
// elided middle, and a short suffix. For any address of length >= prefixLen +
// suffixLen, Prefix + Middle + Suffix reassembles the address exactly.
type Segments struct {
	Prefix string `json:"prefix"`
	Middle string `json:"middle"`
	Suffix string `json:"suffix"`
}

const (
	DefaultPrefixLen = 6
	DefaultSuffixLen = 5
)

// Segment splits address with the default 6/5 prefix and suffix lengths.
func Segment(address string) Segments {
	return SegmentN(address, DefaultPrefixLen, DefaultSuffixLen)
}

// SegmentN splits address into prefix, middle and suffix of the requested
// lengths. No validation of the address is performed; the split operates on
// the raw string as given.
//
// Addresses shorter than prefixLen+suffixLen degrade instead of erroring:
// the middle is empty, the prefix is the first min(prefixLen, len) bytes and
// the suffix the last min(suffixLen, len) bytes, so the two may overlap. At
// exactly prefixLen+suffixLen the prefix and suffix consume the whole
// address with no overlap and an empty middle.
func SegmentN(address string, prefixLen, suffixLen int) Segments {
	n := len(address)
	if n <= prefixLen+suffixLen {
		p := prefixLen
		if p > n {
			p = n
		}
		s := suffixLen
		if s > n {
			s = n
		}
		return Segments{Prefix: address[:p], Suffix: address[n-s:]}
	}
	return Segments{
		Prefix: address[:prefixLen],
		Middle: address[prefixLen : n-suffixLen],
		Suffix: address[n-suffixLen:],
	}
}

// Short renders the truncated form, eliding a non-empty middle with "…".
func (s Segments) Short() string {
	if s.Middle == "" {
		return s.Prefix + s.Suffix
	}
	return s.Prefix + "…" + s.Suffix
}
