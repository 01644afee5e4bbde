package tankworld

// PokerRound is one of the four betting rounds of a Texas Hold'em hand.
type PokerRound int

const (
	RoundPreflop PokerRound = iota
	RoundFlop
	RoundTurn
	RoundRiver
)

func (r PokerRound) String() string {
	switch r {
	case RoundPreflop:
		return "preflop"
	case RoundFlop:
		return "flop"
	case RoundTurn:
		return "turn"
	case RoundRiver:
		return "river"
	default:
		return "unknown_round"
	}
}

// TableState is the hand's position in the Dealing -> Preflop -> Flop ->
// Turn -> River -> Showdown -> Settled state machine of spec.md §4.5.
type TableState int

const (
	StateDealing TableState = iota
	StatePreflop
	StateFlop
	StateTurn
	StateRiver
	StateShowdown
	StateSettled
)

// maxActionsPerRound bounds the number of turns taken in one betting round,
// a backstop against strategies that never converge to a stable bet.
const maxActionsPerRound = 20

// PokerParticipant is one fish's entry into a hand: its identity, its
// strategy and that strategy's genome-carried parameters, and the energy
// it is willing to wager.
type PokerParticipant struct {
	FishID     EntityID
	Strategy   PokerStrategyID
	Parameters ParamVector
	Stack      float64
}

// PokerOutcome is the settled result of one heads-up hand, emitted as an
// event by the poker system and applied to the two fish's energy totals.
type PokerOutcome struct {
	SeatAID, SeatBID           EntityID
	WinnerID                   EntityID // zero if Split
	Split                      bool
	FoldedID                   EntityID // zero if it went to Showdown
	Showdown                   bool
	WinningHandA, WinningHandB HandRank
	PotTransferToWinner        float64
	HouseCut                   float64
	EndingStackA, EndingStackB float64
	Button                     EntityID
}

type pokerSeat struct {
	FishID         EntityID
	Hole           [2]Card
	Stack          float64
	CommittedTotal float64
	CommittedRound float64
	Folded         bool
	AllIn          bool
	Strategy       PokerStrategyID
	Parameters     ParamVector
	Raises         int
	Calls          int
}

func newPokerSeat(p PokerParticipant) *pokerSeat {
	return &pokerSeat{
		FishID:     p.FishID,
		Stack:      p.Stack,
		Strategy:   p.Strategy,
		Parameters: p.Parameters,
	}
}

// commit moves amount (clamped to the seat's remaining stack, producing an
// all-in) from the seat's stack into the pot.
func (s *pokerSeat) commit(amount float64) float64 {
	if amount < 0 {
		amount = 0
	}
	if amount > s.Stack {
		amount = s.Stack
	}
	s.Stack -= amount
	s.CommittedRound += amount
	s.CommittedTotal += amount
	if s.Stack <= 0 {
		s.AllIn = true
	}
	return amount
}

type pokerTable struct {
	seats     [2]*pokerSeat
	deck      *Deck
	community []Card
	buttonIdx int
}

func (t *pokerTable) pot() float64 {
	return t.seats[0].CommittedTotal + t.seats[1].CommittedTotal
}

// PlayHeadsUp runs one complete Texas Hold'em hand between two fish, per
// spec.md §4.5: deal, blinds, four betting rounds (folding early where the
// hand ends that way), showdown, and settlement with the configured house
// cut. Button seat is chosen by the poker RNG stream, giving each
// participant a 50/50 chance independent of call order, so repeated play
// across many hands converges to an even split.
func PlayHeadsUp(a, b PokerParticipant, cfg *Config, rng *RNG) PokerOutcome {
	requireRNG(rng, "PlayHeadsUp")

	table := &pokerTable{
		seats: [2]*pokerSeat{newPokerSeat(a), newPokerSeat(b)},
		deck:  NewDeck(),
	}
	table.deck.Shuffle(rng)

	if rng.Bool(0.5) {
		table.buttonIdx = 1
	}

	for _, seat := range table.seats {
		seat.Hole = [2]Card{table.deck.Deal(), table.deck.Deal()}
	}

	base := cfg.Energy.PokerBaseStake
	smallBlind := base * 0.05
	bigBlind := base * 0.10

	sbIdx := table.buttonIdx
	bbIdx := 1 - table.buttonIdx
	table.seats[sbIdx].commit(smallBlind)
	table.seats[bbIdx].commit(bigBlind)

	// Heads-up convention: the button posts the small blind and acts first
	// preflop; the non-button acts first on every later round.
	if runBettingRound(table, RoundPreflop, rng, table.buttonIdx) {
		table.community = append(table.community, table.deck.Deal(), table.deck.Deal(), table.deck.Deal())
		if runBettingRound(table, RoundFlop, rng, bbIdx) {
			table.community = append(table.community, table.deck.Deal())
			if runBettingRound(table, RoundTurn, rng, bbIdx) {
				table.community = append(table.community, table.deck.Deal())
				if runBettingRound(table, RoundRiver, rng, bbIdx) {
					return settleShowdown(table, cfg)
				}
			}
		}
	}
	return settleFold(table, cfg)
}

// runBettingRound plays one betting round to completion and reports
// whether the hand continues (true) or ended in a fold (false).
func runBettingRound(table *pokerTable, round PokerRound, rng *RNG, firstToAct int) bool {
	seats := table.seats
	if round != RoundPreflop {
		seats[0].CommittedRound = 0
		seats[1].CommittedRound = 0
	}
	currentBet := seats[0].CommittedRound
	if seats[1].CommittedRound > currentBet {
		currentBet = seats[1].CommittedRound
	}

	turn := firstToAct
	actedSinceRaise := 0

	for i := 0; i < maxActionsPerRound; i++ {
		actor := seats[turn]
		other := seats[1-turn]

		if actor.Folded || other.Folded {
			return false
		}
		if actor.AllIn && other.AllIn {
			return true
		}
		if actor.AllIn {
			turn = 1 - turn
			actedSinceRaise++
			if actedSinceRaise >= 2 && seats[0].CommittedRound == seats[1].CommittedRound {
				return true
			}
			continue
		}

		toCall := currentBet - actor.CommittedRound
		if toCall < 0 {
			toCall = 0
		}

		view := PokerView{
			HoleCards:      actor.Hole,
			Community:      append([]Card{}, table.community...),
			Pot:            table.pot(),
			ToCall:         toCall,
			OwnStack:       actor.Stack,
			IsButton:       turn == table.buttonIdx,
			Round:          round,
			OpponentRaises: other.Raises,
			OpponentCalls:  other.Calls,
			Parameters:     actor.Parameters,
		}
		action := Decide(actor.Strategy, view, rng)

		switch action.Kind {
		case ActionFold:
			actor.Folded = true
			return false
		case ActionCheck:
			if toCall > 0 {
				// Checking with an outstanding bet is illegal; downgrade to fold.
				actor.Folded = true
				return false
			}
			actedSinceRaise++
		case ActionCall:
			actor.commit(toCall)
			actor.Calls++
			actedSinceRaise++
		case ActionRaise:
			actor.commit(action.Amount)
			actor.Raises++
			currentBet = actor.CommittedRound
			actedSinceRaise = 1
		}

		turn = 1 - turn
		if actedSinceRaise >= 2 && seats[0].CommittedRound == seats[1].CommittedRound {
			return true
		}
	}
	return true
}

func settleFold(table *pokerTable, cfg *Config) PokerOutcome {
	winnerIdx, loserIdx := 0, 1
	if table.seats[0].Folded {
		winnerIdx, loserIdx = 1, 0
	}
	pot := table.pot()
	rake := pot * cfg.Energy.PokerHouseCut
	net := pot - rake
	table.seats[winnerIdx].Stack += net

	return PokerOutcome{
		SeatAID:              table.seats[0].FishID,
		SeatBID:              table.seats[1].FishID,
		WinnerID:             table.seats[winnerIdx].FishID,
		FoldedID:             table.seats[loserIdx].FishID,
		Showdown:             false,
		PotTransferToWinner:  net,
		HouseCut:             rake,
		EndingStackA:         table.seats[0].Stack,
		EndingStackB:         table.seats[1].Stack,
		Button:               table.seats[table.buttonIdx].FishID,
	}
}

// settleShowdown evaluates both hands and splits the pot on an exact tie.
// The house cut is charged once against the whole pot before any split, so
// a tie never pays rake twice.
func settleShowdown(table *pokerTable, cfg *Config) PokerOutcome {
	handA := EvaluateBest(append(append([]Card{}, table.seats[0].Hole[:]...), table.community...))
	handB := EvaluateBest(append(append([]Card{}, table.seats[1].Hole[:]...), table.community...))

	pot := table.pot()
	rake := pot * cfg.Energy.PokerHouseCut
	net := pot - rake

	outcome := PokerOutcome{
		SeatAID:      table.seats[0].FishID,
		SeatBID:      table.seats[1].FishID,
		Showdown:     true,
		WinningHandA: handA,
		WinningHandB: handB,
		HouseCut:     rake,
		Button:       table.seats[table.buttonIdx].FishID,
	}

	switch handA.Compare(handB) {
	case 1:
		table.seats[0].Stack += net
		outcome.WinnerID = table.seats[0].FishID
		outcome.PotTransferToWinner = net
	case -1:
		table.seats[1].Stack += net
		outcome.WinnerID = table.seats[1].FishID
		outcome.PotTransferToWinner = net
	default:
		half := net / 2
		table.seats[0].Stack += half
		table.seats[1].Stack += half
		outcome.Split = true
		outcome.PotTransferToWinner = half
	}

	outcome.EndingStackA = table.seats[0].Stack
	outcome.EndingStackB = table.seats[1].Stack
	return outcome
}
