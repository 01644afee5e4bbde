package tankworld

import "testing"

func TestPlayHeadsUpConservesEnergy(t *testing.T) {
	cfg := DefaultConfig()
	a := PokerParticipant{FishID: 1, Strategy: Balanced, Stack: cfg.Energy.PokerBaseStake}
	b := PokerParticipant{FishID: 2, Strategy: Maniac, Stack: cfg.Energy.PokerBaseStake}

	for seed := uint64(0); seed < 25; seed++ {
		outcome := PlayHeadsUp(a, b, cfg, NewRNG(seed))
		total := outcome.EndingStackA + outcome.EndingStackB + outcome.HouseCut
		want := a.Stack + b.Stack
		if diff := total - want; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("seed %d: energy not conserved, total=%v want=%v", seed, total, want)
		}
	}
}

func TestPlayHeadsUpDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := PokerParticipant{FishID: 1, Strategy: TightAggressive, Stack: 20}
	b := PokerParticipant{FishID: 2, Strategy: LooseAggressive, Stack: 20}

	o1 := PlayHeadsUp(a, b, cfg, NewRNG(900))
	o2 := PlayHeadsUp(a, b, cfg, NewRNG(900))
	if o1 != o2 {
		t.Fatalf("same seed produced different outcomes: %+v vs %+v", o1, o2)
	}
}

func TestPlayHeadsUpAlwaysFoldLosesBlind(t *testing.T) {
	cfg := DefaultConfig()
	a := PokerParticipant{FishID: 1, Strategy: AlwaysFold, Stack: 10}
	b := PokerParticipant{FishID: 2, Strategy: Maniac, Stack: 10}

	outcome := PlayHeadsUp(a, b, cfg, NewRNG(42))
	if outcome.Showdown {
		t.Fatal("AlwaysFold should never reach showdown against any action")
	}
	if outcome.WinnerID != b.FishID || outcome.EndingStackA >= a.Stack {
		t.Fatalf("expected AlwaysFold to fold and lose its blind, got winner %v with ending stack %v",
			outcome.WinnerID, outcome.EndingStackA)
	}
}

func TestHouseCutChargedOnceOnSplitPot(t *testing.T) {
	cfg := DefaultConfig()
	cfg = cfg.WithOverrides(func(c *Config) { c.Energy.PokerHouseCut = 0.1 })

	table := &pokerTable{
		seats: [2]*pokerSeat{
			{FishID: 1, CommittedTotal: 50},
			{FishID: 2, CommittedTotal: 50},
		},
		community: []Card{c(Three, Hearts), c(Four, Diamonds), c(Five, Clubs), c(Six, Spades), c(Seven, Hearts)},
	}
	table.seats[0].Hole = [2]Card{c(Nine, Clubs), c(Queen, Diamonds)}
	table.seats[1].Hole = [2]Card{c(Ten, Hearts), c(Ace, Clubs)}

	outcome := settleShowdown(table, cfg)
	if !outcome.Split {
		t.Fatalf("expected a split pot for this board, got %+v", outcome)
	}
	wantHouseCut := 100.0 * 0.1
	if outcome.HouseCut != wantHouseCut {
		t.Fatalf("house cut = %v, want %v (charged once)", outcome.HouseCut, wantHouseCut)
	}
	wantPerSeat := (100.0 - wantHouseCut) / 2
	if outcome.PotTransferToWinner != wantPerSeat {
		t.Fatalf("per-seat transfer = %v, want %v", outcome.PotTransferToWinner, wantPerSeat)
	}
}
