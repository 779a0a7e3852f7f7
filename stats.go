package ordtrees

import "fmt"

// Stats is a diagnostic record of a container's activity. Counters only ever
// grow; they have no influence on the container's behaviour.
type Stats struct {
	Size      int    // number of keys currently stored
	Height    int    // height of the tree, 0 for an empty tree
	Inserts   uint64 // effective insertions (duplicates are not counted)
	Removes   uint64 // effective removals (absent keys are not counted)
	Rotations uint64 // single rotations performed while rebalancing
	Recolors  uint64 // node color flips (red-black trees only)
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d height=%d inserts=%d removes=%d rotations=%d recolors=%d",
		s.Size, s.Height, s.Inserts, s.Removes, s.Rotations, s.Recolors)
}
