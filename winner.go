package holdeq

// twoWaySchemes maps a [Holdem2p]-style 0/1/2 outcome to the winner index
// list multi-way callers expect.
var twoWaySchemes = [3][]int{{0}, {1}, {0, 1}}

// Winners returns the sorted indices of the maximum-value hands among
// hands, each evaluated against board via [FinishHand]. Ties are returned
// in full: a k-way tie returns all k indices.
//
// For exactly two hands, Winners maps the [Holdem2p] outcome through
// twoWaySchemes instead of running the general max-scan.
func Winners(hands [][2]Card, board [5]Card) []int {
	info := PrepareBoard(board[:])
	if len(hands) == 2 {
		return twoWaySchemes[Holdem2p(hands[0], hands[1], board)]
	}
	var best HandValue
	var results []int
	for i, h := range hands {
		v := FinishHand(h, info)
		switch {
		case v > best:
			best = v
			results = results[:0]
			results = append(results, i)
		case v == best:
			results = append(results, i)
		}
	}
	return results
}
