package tankworld

// ActionKind is the kind of move a poker strategy can make on its turn.
type ActionKind int

const (
	ActionFold ActionKind = iota
	ActionCheck
	ActionCall
	ActionRaise
)

func (k ActionKind) String() string {
	switch k {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	default:
		return "unknown_action"
	}
}

// Action is a strategy's decision for one betting turn. Amount is only
// meaningful for ActionRaise: the total the player is putting in this turn,
// on top of anything already committed to the pot this round.
type Action struct {
	Kind   ActionKind
	Amount float64
}

// PokerView is the read-only view a strategy receives to decide its action,
// per spec.md §4.5. It exposes only what the seat could plausibly know:
// its own hole cards, the revealed community cards, the pot, the bet it
// must call, its own remaining stack, table position, and a coarse
// tally of the opponent's observed aggression this hand.
type PokerView struct {
	HoleCards      [2]Card
	Community      []Card
	Pot            float64
	ToCall         float64
	OwnStack       float64
	IsButton       bool
	Round          PokerRound
	OpponentRaises int
	OpponentCalls  int
	Parameters     ParamVector
}

// Strategy decides an Action given a view and a private RNG stream.
type Strategy func(view PokerView, rng *RNG) Action

var strategyRegistry = map[PokerStrategyID]Strategy{
	TightPassive:    tightPassiveStrategy,
	LoosePassive:    loosePassiveStrategy,
	TightAggressive: tightAggressiveStrategy,
	LooseAggressive: looseAggressiveStrategy,
	Balanced:        balancedStrategy,
	Maniac:          maniacStrategy,
	GTOExpert:       gtoExpertStrategy,
	AlwaysFold:      alwaysFoldStrategy,
	RandomStrategy:  randomStrategyFn,
}

// Decide dispatches to the registered strategy for id, then legalizes the
// result: a raise beyond OwnStack is clamped to an all-in call/raise, and
// any action this package does not recognize downgrades to a fold, per
// spec.md §4.5's "illegal action" failure semantics.
func Decide(id PokerStrategyID, view PokerView, rng *RNG) Action {
	requireRNG(rng, "Decide")
	fn, ok := strategyRegistry[id]
	if !ok {
		return Action{Kind: ActionFold}
	}
	return legalize(fn(view, rng), view)
}

func legalize(a Action, view PokerView) Action {
	switch a.Kind {
	case ActionFold, ActionCheck, ActionCall:
		return a
	case ActionRaise:
		if a.Amount > view.OwnStack {
			a.Amount = view.OwnStack
		}
		if a.Amount <= view.ToCall {
			if view.ToCall >= view.OwnStack {
				return Action{Kind: ActionCall}
			}
			return Action{Kind: ActionCall}
		}
		return a
	default:
		return Action{Kind: ActionFold}
	}
}

func handStrength(view PokerView) float64 {
	if len(view.Community) == 0 {
		return holeCardStrength(view.HoleCards)
	}
	all := append(append([]Card{}, view.HoleCards[:]...), view.Community...)
	r := EvaluateBest(all)
	return float64(r.Category) / float64(StraightFlush)
}

// holeCardStrength is a coarse preflop heuristic: pairs and high, suited,
// or connected cards score higher, scaled to roughly [0,1].
func holeCardStrength(hole [2]Card) float64 {
	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	score := float64(hi+lo) / 28.0
	if hi == lo {
		score += 0.25
	}
	if hole[0].Suit == hole[1].Suit {
		score += 0.08
	}
	gap := int(hi - lo)
	if gap <= 2 && hi != lo {
		score += 0.05
	}
	if score > 1 {
		score = 1
	}
	return score
}

func checkOrCall(view PokerView) Action {
	if view.ToCall <= 0 {
		return Action{Kind: ActionCheck}
	}
	return Action{Kind: ActionCall}
}

func raiseSize(view PokerView, factor float64) Action {
	amount := view.ToCall + view.Pot*factor
	if amount < view.ToCall+1 {
		amount = view.ToCall + 1
	}
	return Action{Kind: ActionRaise, Amount: amount}
}

func tightPassiveStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "tightPassiveStrategy")
	vpip := paramOr(view.Parameters, "vpip", 0.2)
	s := handStrength(view)
	if s < 0.3*vpip+0.2 {
		if view.ToCall > 0 {
			return Action{Kind: ActionFold}
		}
		return Action{Kind: ActionCheck}
	}
	return checkOrCall(view)
}

func loosePassiveStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "loosePassiveStrategy")
	s := handStrength(view)
	if s < 0.1 && view.ToCall > view.OwnStack*0.5 {
		return Action{Kind: ActionFold}
	}
	return checkOrCall(view)
}

func tightAggressiveStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "tightAggressiveStrategy")
	vpip := paramOr(view.Parameters, "vpip", 0.18)
	aggression := paramOr(view.Parameters, "aggression_factor", 2.5)
	s := handStrength(view)
	if s < 0.35*vpip+0.25 {
		if view.ToCall > 0 {
			return Action{Kind: ActionFold}
		}
		return Action{Kind: ActionCheck}
	}
	if s > 0.6 {
		return raiseSize(view, aggression*0.3)
	}
	return checkOrCall(view)
}

func looseAggressiveStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "looseAggressiveStrategy")
	aggression := paramOr(view.Parameters, "aggression_factor", 3.0)
	s := handStrength(view)
	if s > 0.25 || rng.Bool(0.5) {
		return raiseSize(view, aggression*0.25)
	}
	return checkOrCall(view)
}

func balancedStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "balancedStrategy")
	s := handStrength(view)
	switch {
	case s < 0.2 && view.ToCall > 0:
		return Action{Kind: ActionFold}
	case s > 0.7:
		return raiseSize(view, 0.75)
	case s > 0.45 && rng.Bool(0.3):
		return raiseSize(view, 0.5)
	default:
		return checkOrCall(view)
	}
}

func maniacStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "maniacStrategy")
	if rng.Bool(0.7) {
		return raiseSize(view, 1.0)
	}
	return checkOrCall(view)
}

// gtoExpertStrategy is a scripted approximation of a game-theory-optimal
// player, per spec.md §4.5: mixes a polarized range of value raises and
// bluffs instead of a single threshold, using three_bet_pct/bluff_freq to
// set the mix.
func gtoExpertStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "gtoExpertStrategy")
	threeBetPct := paramOr(view.Parameters, "three_bet_pct", 0.12)
	bluffFreq := paramOr(view.Parameters, "bluff_freq", 0.25)
	s := handStrength(view)

	if s > 0.75 {
		return raiseSize(view, 0.8)
	}
	if s < 0.15 {
		if rng.Bool(bluffFreq) {
			return raiseSize(view, 0.6)
		}
		if view.ToCall > 0 {
			return Action{Kind: ActionFold}
		}
		return Action{Kind: ActionCheck}
	}
	if rng.Bool(threeBetPct) {
		return raiseSize(view, 0.5)
	}
	return checkOrCall(view)
}

func alwaysFoldStrategy(view PokerView, rng *RNG) Action {
	requireRNG(rng, "alwaysFoldStrategy")
	if view.ToCall <= 0 {
		return Action{Kind: ActionCheck}
	}
	return Action{Kind: ActionFold}
}

func randomStrategyFn(view PokerView, rng *RNG) Action {
	requireRNG(rng, "randomStrategyFn")
	switch rng.Intn(4) {
	case 0:
		if view.ToCall <= 0 {
			return Action{Kind: ActionCheck}
		}
		return Action{Kind: ActionFold}
	case 1:
		return checkOrCall(view)
	case 2:
		return raiseSize(view, rng.Uniform(0.2, 1.2))
	default:
		return checkOrCall(view)
	}
}
