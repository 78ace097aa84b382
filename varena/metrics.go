package varena

// Stats is a snapshot of a VArena's size-class statistics.
type Stats struct {
	NumClasses int   // number of size classes created so far
	Shift      uint64
}

// Stats returns a snapshot of the varena's current statistics.
func (v *VArena) Stats() Stats {
	return Stats{NumClasses: len(v.arenas), Shift: v.shift}
}
