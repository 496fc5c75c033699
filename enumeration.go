package holdeq

// FullEnumeration computes each hand's equity — win probability, counting
// a k-way tie as 1/k — by exhaustively walking every possible completion
// of board to five cards. The returned equities sum to 1.0 (up to
// floating-point rounding).
//
// For one hand it returns [1.0] without enumerating. For two hands it
// takes a specialized three-way-tally path instead of the general
// multi-way scan. board may hold 0 to 5 known community cards.
func FullEnumeration(hands [][2]Card, board []Card) ([]float64, error) {
	switch len(hands) {
	case 0:
		return nil, nil
	case 1:
		return []float64{1}, nil
	case 2:
		return enumerateTwo(hands[0], hands[1], board)
	}
	return enumerateMulti(hands, board)
}

// dealt collects every card already committed to a hand or the board.
func dealt(hands [][2]Card, board []Card) []Card {
	dead := make([]Card, 0, 2*len(hands)+len(board))
	for _, h := range hands {
		dead = append(dead, h[0], h[1])
	}
	dead = append(dead, board...)
	return dead
}

// enumerateTwo is the two-player specialization of [FullEnumeration]: it
// tallies a three-element [h1 wins, h2 wins, ties] count directly instead of building
// winner-index lists per completion.
func enumerateTwo(h1, h2 [2]Card, board []Card) ([]float64, error) {
	deck := NewDeck(dealt([][2]Card{h1, h2}, board)...)
	needed := 5 - len(board)
	g, completion := NewCombinGen(deck.Cards(), needed)
	var wins [3]int
	for g.Next() {
		full := make([]Card, 0, 5)
		full = append(full, board...)
		full = append(full, completion...)
		wins[Holdem2p(h1, h2, [5]Card(full))]++
	}
	total := wins[0] + wins[1] + wins[2]
	if total == 0 {
		return nil, ErrTooFewCards
	}
	ev1 := (float64(wins[0]) + 0.5*float64(wins[2])) / float64(total)
	return []float64{ev1, 1 - ev1}, nil
}

// enumerateMulti is the general N≥3 enumeration path.
func enumerateMulti(hands [][2]Card, board []Card) ([]float64, error) {
	deck := NewDeck(dealt(hands, board)...)
	needed := 5 - len(board)
	g, completion := NewCombinGen(deck.Cards(), needed)
	wins := make([]float64, len(hands))
	var trials int
	for g.Next() {
		full := make([]Card, 0, 5)
		full = append(full, board...)
		full = append(full, completion...)
		var fixed [5]Card
		copy(fixed[:], full)
		winners := Winners(hands, fixed)
		share := 1 / float64(len(winners))
		for _, w := range winners {
			wins[w] += share
		}
		trials++
	}
	if trials == 0 {
		return nil, ErrTooFewCards
	}
	for i := range wins {
		wins[i] /= float64(trials)
	}
	return wins, nil
}
