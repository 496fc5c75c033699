// Package holdeq evaluates seven-card poker hands and computes Texas
// Hold'em equity.
//
// The evaluator ([Eval]) maps any seven cards to a totally ordered
// 56-bit [HandValue]: higher values win, ties compare equal. [PrepareBoard] and
// [FinishHand] split that evaluation into a board-only step and a
// hole-card-finishing step, so that evaluating many hands against one board
// costs O(board) once plus O(hand) per hand instead of O(hand) every time.
//
// [FullEnumeration] and [MonteCarlo] turn the evaluator into equity: the
// former exhaustively walks every possible board completion, the latter
// samples at random and is used when the full walk is too large. [EHS]
// estimates a hand's strength against a random, unknown opponent.
//
// holdeq only plays Texas Hold'em seven-card high hands. Callers can supply
// their own random number source: [Deck.Shuffle] takes an injectable
// shuffle function, and [MonteCarlo] and [EHS] accept an RNG via functional
// option ([WithRNG], [WithEHSRNG]); without one they use a fixed-seed
// default.
package holdeq
