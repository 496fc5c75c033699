package holdeq

import (
	"math"
	"math/rand"
	"testing"
)

func TestMonteCarloSumsToOne(t *testing.T) {
	hands := [][2]Card{
		parseHole(t, "3s 2c"),
		parseHole(t, "5c 2h"),
	}
	eq, err := MonteCarlo(hands, 5000, WithRNG(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	var sum float64
	for _, v := range eq {
		sum += v
	}
	if !approxEqual(sum, 1.0, 1e-9) {
		t.Errorf("equities sum to %v, want 1.0", sum)
	}
}

func TestMonteCarloConvergesToFullEnumeration(t *testing.T) {
	hands := [][2]Card{
		parseHole(t, "8c Qd"),
		parseHole(t, "9h 9s"),
		parseHole(t, "4c 3d"),
	}
	exact, err := FullEnumeration(hands, nil)
	if err != nil {
		t.Fatalf("FullEnumeration: %v", err)
	}
	approx, err := MonteCarlo(hands, 200000,
		WithRNG(rand.New(rand.NewSource(99))),
		WithWorkers(1),
	)
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	for i := range exact {
		if !approxEqual(approx[i], exact[i], 0.02) {
			t.Errorf("MonteCarlo[%d] = %v, FullEnumeration[%d] = %v (diff exceeds tolerance)", i, approx[i], i, exact[i])
		}
	}
}

func TestMonteCarloParallelMatchesSequentialDistribution(t *testing.T) {
	hands := [][2]Card{
		parseHole(t, "Ah Kh"),
		parseHole(t, "2c 7d"),
	}
	seq, err := MonteCarlo(hands, 100000, WithWorkers(1), WithRNG(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("MonteCarlo sequential: %v", err)
	}
	par, err := MonteCarlo(hands, 100000, WithWorkers(4), WithRNG(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("MonteCarlo parallel: %v", err)
	}
	for i := range seq {
		if !approxEqual(seq[i], par[i], 0.03) {
			t.Errorf("sequential[%d] = %v, parallel[%d] = %v diverge beyond sampling tolerance", i, seq[i], i, par[i])
		}
	}
}

func TestMonteCarloEmptyHands(t *testing.T) {
	if _, err := MonteCarlo(nil, 1000); err != ErrEmptyHandList {
		t.Errorf("MonteCarlo(nil, ...) = %v, want ErrEmptyHandList", err)
	}
}

func TestMonteCarloTooManyHands(t *testing.T) {
	hands := make([][2]Card, 25)
	deck := NewDeck()
	for i := range hands {
		drawn, err := deck.Draw(2)
		if err != nil {
			t.Fatal(err)
		}
		hands[i] = [2]Card{drawn[0], drawn[1]}
	}
	if _, err := MonteCarlo(hands, 1000); err != ErrTooFewCards {
		t.Errorf("MonteCarlo(25 hands, ...) = %v, want ErrTooFewCards", err)
	}
}

func TestBoardSizes(t *testing.T) {
	sizes := boardSizes(3)
	if len(sizes) != 3 {
		t.Fatalf("boardSizes(3) len = %d, want 3", len(sizes))
	}
	for _, s := range sizes {
		if s != 5 {
			t.Errorf("boardSizes entry = %d, want 5", s)
		}
	}
}

func TestNormalizeWinsNoSamples(t *testing.T) {
	if _, err := normalizeWins([]float64{0, 0}, 0); err != ErrTooFewCards {
		t.Errorf("normalizeWins with count=0 = %v, want ErrTooFewCards", err)
	}
}

func TestMonteCarloDeterministicWithFixedRNG(t *testing.T) {
	hands := [][2]Card{
		parseHole(t, "As Ks"),
		parseHole(t, "2c 3d"),
	}
	a, err := MonteCarlo(hands, 2000, WithRNG(rand.New(rand.NewSource(123))), WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := MonteCarlo(hands, 2000, WithRNG(rand.New(rand.NewSource(123))), WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Errorf("same-seed runs diverged: %v vs %v", a, b)
		}
	}
}
