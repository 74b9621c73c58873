package json

import "fmt"

// Stats aggregates counters gathered during one Parse call. Counters are
// incremented as values are closed (not opened), so a Stats reflects the
// exact prefix of the document consumed even when parsing stops on error.
type Stats struct {
	Nulls      int
	Bools      int
	Ints       int
	Uints      int
	Doubles    int
	Strings    int
	Arrays     int
	Objects    int
	Keys       int
	MaxDepth   int
	Bytes      int64
	DurationNS int64
}

func (s *Stats) countKind(k Kind) {
	switch k {
	case KindNull:
		s.Nulls++
	case KindBool:
		s.Bools++
	case KindInt:
		s.Ints++
	case KindUint:
		s.Uints++
	case KindDouble:
		s.Doubles++
	case KindString:
		s.Strings++
	case KindArray:
		s.Arrays++
	case KindObject:
		s.Objects++
	}
}

// String renders a compact human-readable summary.
func (s *Stats) String() string {
	return fmt.Sprintf(
		"nulls=%d bools=%d ints=%d uints=%d doubles=%d strings=%d arrays=%d objects=%d keys=%d max_depth=%d bytes=%d duration=%dns",
		s.Nulls, s.Bools, s.Ints, s.Uints, s.Doubles, s.Strings, s.Arrays, s.Objects, s.Keys, s.MaxDepth, s.Bytes, s.DurationNS,
	)
}
