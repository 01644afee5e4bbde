package tankworld

// VisibleFood is a food item within a fish's vision range.
type VisibleFood struct {
	ID          EntityID
	Pos         Vector2
	EnergyValue float64
}

// VisibleFish is another fish within vision range, with kinship derived
// from shared parentage (see kinshipOf). The simulation leaves Team empty.
type VisibleFish struct {
	ID      EntityID
	Pos     Vector2
	Vel     Vector2
	Kinship float64 // 1.0 = shares a recorded parent, 0.0 otherwise
	Team    string
}

// VisiblePredator is a crab within vision range.
type VisiblePredator struct {
	ID  EntityID
	Pos Vector2
}

// BehaviorContext is the read-only view an algorithm receives each tick, per
// spec.md §4.4. Algorithms must not mutate anything reachable from it.
type BehaviorContext struct {
	Self        *Fish
	Pos         Vector2
	Vel         Vector2
	EnergyRatio float64
	LifeStage   LifeStage
	CriticalEnergy bool // true when EnergyRatio < critical_energy threshold

	VisibleFood      []VisibleFood
	VisibleFish      []VisibleFish
	VisiblePredators []VisiblePredator

	TimeOfDay float64 // 0 = midnight, 0.5 = noon, wraps at 1.0

	RNG    *RNG
	Params ParamVector
	Memory *FishMemory
}

// Algorithm is a pure function producing a unit-length (or zero)
// desired-direction vector, per spec.md §4.4's contract. It must be
// deterministic given (ctx, rng state), must return (0,0) if no action,
// and must not mutate entities other than via its return value.
type Algorithm func(ctx *BehaviorContext) Vector2

// algorithmRegistry maps every AlgorithmID to its implementation. Built
// once at package init and never mutated afterward, so it can be shared
// safely across concurrent independent simulation instances.
var algorithmRegistry = map[AlgorithmID]Algorithm{
	AlgoComposable: composableExecute,

	AlgoFoodSeekDirect:       legacyFoodSeekDirect,
	AlgoFoodSeekSpiral:       legacyFoodSeekSpiral,
	AlgoFoodSeekScent:        legacyFoodSeekScent,
	AlgoFoodSeekCautious:     legacyFoodSeekCautious,
	AlgoFoodSeekGreedy:       legacyFoodSeekGreedy,
	AlgoFoodSeekPatient:      legacyFoodSeekPatient,
	AlgoFoodSeekSwarm:        legacyFoodSeekSwarm,
	AlgoFoodSeekMemoryBiased: legacyFoodSeekMemoryBiased,

	AlgoAvoidFlee:    legacyAvoidFlee,
	AlgoAvoidFreeze:  legacyAvoidFreeze,
	AlgoAvoidZigzag:  legacyAvoidZigzag,
	AlgoAvoidSprint:  legacyAvoidSprint,
	AlgoAvoidShelter: legacyAvoidShelter,
	AlgoAvoidCreep:   legacyAvoidCreep,
	AlgoAvoidDive:    legacyAvoidDive,
	AlgoAvoidDecoy:   legacyAvoidDecoy,

	AlgoSchoolCohesion:   legacySchoolCohesion,
	AlgoSchoolAlignment:  legacySchoolAlignment,
	AlgoSchoolSeparation: legacySchoolSeparation,
	AlgoSchoolFlank:      legacySchoolFlank,
	AlgoSchoolFollow:     legacySchoolFollow,
	AlgoSchoolCenterSeek: legacySchoolCenterSeek,
	AlgoSchoolLeader:     legacySchoolLeader,
	AlgoSchoolMirror:     legacySchoolMirror,

	AlgoEnergyConserve:      legacyEnergyConserve,
	AlgoEnergyBurstForage:   legacyEnergyBurstForage,
	AlgoEnergyHoard:         legacyEnergyHoard,
	AlgoEnergyMiser:         legacyEnergyMiser,
	AlgoEnergyBalanced:      legacyEnergyBalanced,
	AlgoEnergyOpportunist:   legacyEnergyOpportunist,
	AlgoEnergySprintRecover: legacyEnergySprintRecover,
	AlgoEnergyScavenger:     legacyEnergyScavenger,

	AlgoTerritoryPatrol:  legacyTerritoryPatrol,
	AlgoTerritoryDefend:  legacyTerritoryDefend,
	AlgoTerritoryMark:    legacyTerritoryMark,
	AlgoTerritoryExpand:  legacyTerritoryExpand,
	AlgoTerritoryGuard:   legacyTerritoryGuard,
	AlgoTerritoryRetreat: legacyTerritoryRetreat,
	AlgoTerritoryShare:   legacyTerritoryShare,
	AlgoTerritoryAmbush:  legacyTerritoryAmbush,

	AlgoPokerSeekOpponent:  legacyPokerSeekOpponent,
	AlgoPokerAvoidOpponent: legacyPokerAvoidOpponent,
	AlgoPokerIsolate:       legacyPokerIsolate,
	AlgoPokerWait:          legacyPokerWait,
	AlgoPokerHustle:        legacyPokerHustle,
	AlgoPokerShy:           legacyPokerShy,
	AlgoPokerRoamer:        legacyPokerRoamer,
	AlgoPokerBluffApproach: legacyPokerBluffApproach,

	AlgoRandomWalk: legacyRandomWalk,
}

// ExecuteBehavior runs the algorithm named by ctx.Self.Genome.AlgorithmID,
// applying the critical-energy override of spec.md §4.4 before dispatch: if
// EnergyRatio is below the configured threshold the context is forced into
// food-approach behavior regardless of the algorithm's own parameters.
func ExecuteBehavior(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "ExecuteBehavior")

	if ctx.CriticalEnergy {
		if dir, ok := seekNearestFood(ctx); ok {
			return dir
		}
	}

	fn, ok := algorithmRegistry[ctx.Self.Genome.AlgorithmID]
	if !ok {
		return Vector2{}
	}
	return fn(ctx)
}

// seekNearestFood is the shared "approach nearest visible food" primitive
// used by the critical-energy override and several legacy algorithms.
func seekNearestFood(ctx *BehaviorContext) (Vector2, bool) {
	if len(ctx.VisibleFood) == 0 {
		return Vector2{}, false
	}
	best := ctx.VisibleFood[0]
	bestDist := ctx.Pos.DistanceTo(best.Pos)
	for _, f := range ctx.VisibleFood[1:] {
		d := ctx.Pos.DistanceTo(f.Pos)
		if d < bestDist || (d == bestDist && f.ID < best.ID) {
			best, bestDist = f, d
		}
	}
	return best.Pos.Sub(ctx.Pos).Normalize(), true
}

// nearestPredatorDir returns the normalized direction away from the
// nearest visible predator, if any.
func nearestPredatorDir(ctx *BehaviorContext) (Vector2, bool) {
	if len(ctx.VisiblePredators) == 0 {
		return Vector2{}, false
	}
	best := ctx.VisiblePredators[0]
	bestDist := ctx.Pos.DistanceTo(best.Pos)
	for _, p := range ctx.VisiblePredators[1:] {
		d := ctx.Pos.DistanceTo(p.Pos)
		if d < bestDist || (d == bestDist && p.ID < best.ID) {
			best, bestDist = p, d
		}
	}
	return ctx.Pos.Sub(best.Pos).Normalize(), true
}
