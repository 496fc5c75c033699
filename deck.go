package holdeq

// unshuffled is the 52-card deck in a fixed order.
var unshuffled = func() [52]Card {
	var v [52]Card
	for c := Card(0); c < 52; c++ {
		v[c] = c
	}
	return v
}()

// Deck is an ordered set of the 52 cards minus a dead set (cards already
// committed to known hands or boards). It supports deterministic
// iteration, drawing, and random sampling with or without replacement
// tracking left to the caller's shuffle function.
type Deck struct {
	v []Card
	i int
}

// NewDeck creates a deck of the 52 cards minus dead.
func NewDeck(dead ...Card) *Deck {
	live := make(map[Card]bool, 52)
	for _, c := range unshuffled {
		live[c] = true
	}
	for _, c := range dead {
		delete(live, c)
	}
	v := make([]Card, 0, len(live))
	for _, c := range unshuffled {
		if live[c] {
			v = append(v, c)
		}
	}
	return &Deck{v: v}
}

// Len returns the number of cards remaining in the deck.
func (d *Deck) Len() int {
	return len(d.v) - d.i
}

// Cards returns the remaining cards, in deck order. The returned slice
// aliases the deck's internal storage and must not be modified.
func (d *Deck) Cards() []Card {
	return d.v[d.i:]
}

// Shuffle shuffles the deck's remaining cards using f (same signature as
// [math/rand.Shuffle]), so callers may supply any RNG source.
func (d *Deck) Shuffle(f func(n int, swap func(i, j int))) {
	rest := d.v[d.i:]
	f(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
}

// Draw draws the next n cards from the front of the deck. It returns
// [ErrNoHandsRemaining] if fewer than n cards remain.
func (d *Deck) Draw(n int) ([]Card, error) {
	if d.Len() < n {
		return nil, ErrNoHandsRemaining
	}
	hand := d.v[d.i : d.i+n]
	d.i += n
	return hand, nil
}

// Partition draws len(counts) groups of cards, successively, with the i-th
// group having counts[i] cards. It is the shape [MonteCarlo] uses to carve
// one shuffled deck into several disjoint boards in a single pass.
func (d *Deck) Partition(counts ...int) ([][]Card, error) {
	groups := make([][]Card, len(counts))
	for i, n := range counts {
		g, err := d.Draw(n)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}
	return groups, nil
}
