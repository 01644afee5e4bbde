package tankworld

import "testing"

func c(rank Rank, suit Suit) Card { return Card{Rank: rank, Suit: suit} }

func TestEvaluateBestRecognizesStraightFlush(t *testing.T) {
	hand := []Card{
		c(Nine, Hearts), c(Eight, Hearts), c(Seven, Hearts), c(Six, Hearts), c(Five, Hearts),
		c(Two, Clubs), c(King, Spades),
	}
	r := EvaluateBest(hand)
	if r.Category != StraightFlush {
		t.Fatalf("got %v, want StraightFlush", r.Category)
	}
}

func TestEvaluateBestWheelStraightIsFiveHigh(t *testing.T) {
	hand := []Card{
		c(Ace, Clubs), c(Two, Hearts), c(Three, Spades), c(Four, Diamonds), c(Five, Clubs),
		c(King, Hearts), c(Queen, Spades),
	}
	r := EvaluateBest(hand)
	if r.Category != Straight {
		t.Fatalf("got %v, want Straight", r.Category)
	}
	if r.Kickers[0] != 5 {
		t.Fatalf("wheel straight high card = %v, want 5", r.Kickers[0])
	}
}

func TestEvaluateBestFourOfAKindBeatsFullHouse(t *testing.T) {
	quads := []Card{
		c(Nine, Clubs), c(Nine, Hearts), c(Nine, Spades), c(Nine, Diamonds), c(Two, Clubs),
		c(Three, Hearts), c(Four, Spades),
	}
	full := []Card{
		c(King, Clubs), c(King, Hearts), c(King, Spades), c(Queen, Diamonds), c(Queen, Clubs),
		c(Two, Hearts), c(Three, Spades),
	}
	rq := EvaluateBest(quads)
	rf := EvaluateBest(full)
	if rq.Compare(rf) <= 0 {
		t.Fatalf("four of a kind should beat full house: %v vs %v", rq, rf)
	}
}

func TestEvaluateBestExactTie(t *testing.T) {
	// A 3-4-5-6-7 straight on the board plays for both hands: the straight
	// category only records its high card, so unrelated hole cards that
	// don't improve on it produce an exact tie.
	board := []Card{c(Three, Hearts), c(Four, Diamonds), c(Five, Clubs), c(Six, Spades), c(Seven, Hearts)}
	handA := append(append([]Card{}, c(Nine, Clubs), c(Queen, Diamonds)), board...)
	handB := append(append([]Card{}, c(Ten, Hearts), c(Ace, Clubs)), board...)

	rA := EvaluateBest(handA)
	rB := EvaluateBest(handB)
	if rA.Category != Straight || rB.Category != Straight {
		t.Fatalf("expected both hands to land on the board straight, got %v and %v", rA.Category, rB.Category)
	}
	if rA.Compare(rB) != 0 {
		t.Fatalf("expected an exact tie, got %v vs %v", rA, rB)
	}
}

func TestHandRankCompareAntisymmetric(t *testing.T) {
	a := HandRank{Category: Flush, Kickers: [5]int{14, 10, 8, 6, 2}}
	b := HandRank{Category: Straight, Kickers: [5]int{10}}
	if a.Compare(b) != -b.Compare(a) {
		t.Fatalf("Compare not antisymmetric: %v vs %v", a.Compare(b), b.Compare(a))
	}
}

func TestDetectStraightRejectsNonSequential(t *testing.T) {
	_, ok := detectStraight([]int{14, 10, 8, 6, 2})
	if ok {
		t.Fatal("expected no straight for non-sequential ranks")
	}
}
