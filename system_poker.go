package tankworld

const (
	pokerRadius        = 15.0
	pokerCooldownTicks = 60
)

// runPokerPhase is the INTERACTION phase: pair up nearby energetic adult
// fish for a heads-up hand of Texas Hold'em, settle the energy transfer,
// and put both participants on cooldown. Fish are visited in ascending
// EntityID order and each already-paired fish is skipped, so pairing is
// deterministic and no fish plays twice in the same frame.
func runPokerPhase(s *SimState) {
	paired := make(map[EntityID]bool, len(s.Fish))

	for _, id := range sortedFishIDs(s) {
		if paired[id] {
			continue
		}
		f := s.Fish[id]
		if !eligibleForPoker(f, s.Config) {
			continue
		}

		neighborIDs := s.Env.Neighbors(f.Pos, pokerRadius, KindFish)
		var opponent *Fish
		for _, nid := range neighborIDs {
			if nid == id || paired[nid] {
				continue
			}
			cand, ok := s.Fish[nid]
			if !ok || !eligibleForPoker(cand, s.Config) {
				continue
			}
			opponent = cand
			break
		}
		if opponent == nil {
			continue
		}

		paired[id] = true
		paired[opponent.ID] = true
		playPokerGame(s, f, opponent)
	}
}

func eligibleForPoker(f *Fish, cfg *Config) bool {
	return f.Alive && f.IsAdult() && f.PokerCooldown == 0 && f.Energy > cfg.Energy.PokerBaseStake
}

func playPokerGame(s *SimState, a, b *Fish) {
	wager := minFloat(s.Config.Energy.PokerBaseStake, minFloat(a.Energy, b.Energy))

	pa := PokerParticipant{FishID: a.ID, Strategy: a.Genome.PokerStrategy, Parameters: a.Genome.PokerParameters, Stack: wager}
	pb := PokerParticipant{FishID: b.ID, Strategy: b.Genome.PokerStrategy, Parameters: b.Genome.PokerParameters, Stack: wager}

	gameRNG := s.RNG.Child(PhaseInteraction, s.Frame).ChildSalt(mixSeed(uint64(a.ID), uint64(b.ID)))
	outcome := PlayHeadsUp(pa, pb, s.Config, gameRNG)

	beforeA, beforeB := a.Energy, b.Energy
	a.AddEnergy(outcome.EndingStackA-wager, s.Config)
	b.AddEnergy(outcome.EndingStackB-wager, s.Config)
	// Winnings above MaxEnergy are clamped away; that energy is destroyed.
	s.Tracker.Ledger.RecordOutflow((outcome.EndingStackA - wager) - (a.Energy - beforeA) +
		(outcome.EndingStackB - wager) - (b.Energy - beforeB))
	a.PokerCooldown = pokerCooldownTicks
	b.PokerCooldown = pokerCooldownTicks

	s.Tracker.RecordPokerOutcome(s, outcome)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
