package tankworld

import "math"

// The legacy algorithms below are the 48 variants across 6 categories
// spec.md §4.4 requires (food-seeking, predator-avoidance, schooling,
// energy-management, territory, poker-interaction — 8 variants each), plus
// the random-walk fallback. Each is deterministic given (ctx, rng state),
// returns (0,0) when it has no action, and reads its tunables from the
// static parameter schema declared in genome.go.

// --- Food-seeking ---

func legacyFoodSeekDirect(ctx *BehaviorContext) Vector2 {
	dir, ok := seekNearestFood(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(paramOr(ctx.Params, "gain", 1))
}

func legacyFoodSeekSpiral(ctx *BehaviorContext) Vector2 {
	dir, ok := seekNearestFood(ctx)
	if !ok {
		return Vector2{}
	}
	rate := paramOr(ctx.Params, "spiral_rate", 0.5)
	// Rotate the direct approach vector slightly, producing a spiral
	// search path when repeated tick over tick.
	angle := rate * 0.3
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	return Vector2{X: dir.X*cosA - dir.Y*sinA, Y: dir.X*sinA + dir.Y*cosA}
}

func legacyFoodSeekScent(ctx *BehaviorContext) Vector2 {
	weight := paramOr(ctx.Params, "memory_weight", 0.5)
	if dir, ok := seekNearestFood(ctx); ok {
		return dir
	}
	recent := ctx.Memory.Recent(MemoryFood)
	if len(recent) == 0 {
		return Vector2{}
	}
	last := recent[len(recent)-1]
	return last.Pos.Sub(ctx.Pos).Normalize().Scale(weight)
}

func legacyFoodSeekCautious(ctx *BehaviorContext) Vector2 {
	margin := paramOr(ctx.Params, "threat_margin", 20)
	if dir, ok := nearestPredatorDir(ctx); ok {
		for _, pr := range ctx.VisiblePredators {
			if ctx.Pos.DistanceTo(pr.Pos) < margin {
				return dir // a predator is too close: flee instead of foraging
			}
		}
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

// legacyFoodSeekGreedy targets the highest-value visible food rather than
// the nearest, trading travel distance for a bigger energy payoff.
func legacyFoodSeekGreedy(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFood) == 0 {
		return Vector2{}
	}
	bias := paramOr(ctx.Params, "value_bias", 1)
	best := ctx.VisibleFood[0]
	bestScore := best.EnergyValue*bias - ctx.Pos.DistanceTo(best.Pos)
	for _, f := range ctx.VisibleFood[1:] {
		score := f.EnergyValue*bias - ctx.Pos.DistanceTo(f.Pos)
		if score > bestScore || (score == bestScore && f.ID < best.ID) {
			best, bestScore = f, score
		}
	}
	return best.Pos.Sub(ctx.Pos).Normalize()
}

func legacyFoodSeekPatient(ctx *BehaviorContext) Vector2 {
	threshold := paramOr(ctx.Params, "hunger_threshold", 0.5)
	if ctx.EnergyRatio >= threshold {
		return Vector2{} // not hungry enough to bother foraging
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

// legacyFoodSeekSwarm only forages while near kin, deferring to the group
// rather than striking out alone.
func legacyFoodSeekSwarm(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "kin_radius", 15)
	nearKin := false
	for _, f := range ctx.VisibleFish {
		if f.Kinship > 0 && ctx.Pos.DistanceTo(f.Pos) < radius {
			nearKin = true
			break
		}
	}
	if !nearKin {
		return Vector2{}
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

func legacyFoodSeekMemoryBiased(ctx *BehaviorContext) Vector2 {
	weight := paramOr(ctx.Params, "memory_weight", 0.6)
	dir, ok := seekNearestFood(ctx)
	recent := ctx.Memory.Recent(MemoryFood)
	if len(recent) == 0 {
		if !ok {
			return Vector2{}
		}
		return dir
	}
	memDir := recent[len(recent)-1].Pos.Sub(ctx.Pos).Normalize()
	if !ok {
		return memDir.Scale(weight)
	}
	return dir.Scale(1 - weight).Add(memDir.Scale(weight)).Normalize()
}

// --- Predator-avoidance ---

func legacyAvoidFlee(ctx *BehaviorContext) Vector2 {
	dir, ok := nearestPredatorDir(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(paramOr(ctx.Params, "flee_gain", 1.5))
}

func legacyAvoidFreeze(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisiblePredators) == 0 {
		return Vector2{}
	}
	radius := paramOr(ctx.Params, "freeze_radius", 10)
	for _, pr := range ctx.VisiblePredators {
		if ctx.Pos.DistanceTo(pr.Pos) < radius {
			return Vector2{} // freeze: stay still
		}
	}
	dir, _ := nearestPredatorDir(ctx)
	return dir
}

func legacyAvoidZigzag(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyAvoidZigzag")
	dir, ok := nearestPredatorDir(ctx)
	if !ok {
		return Vector2{}
	}
	rate := paramOr(ctx.Params, "zigzag_rate", 1)
	angle := (ctx.RNG.Float64() - 0.5) * rate
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	return Vector2{X: dir.X*cosA - dir.Y*sinA, Y: dir.X*sinA + dir.Y*cosA}
}

// legacyAvoidSprint flees at a higher gain the lower the fish's own energy
// ratio — a cornered fish sprints harder.
func legacyAvoidSprint(ctx *BehaviorContext) Vector2 {
	dir, ok := nearestPredatorDir(ctx)
	if !ok {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "sprint_gain", 2)
	return dir.Scale(gain * (1.5 - ctx.EnergyRatio))
}

// legacyAvoidShelter flees toward the nearest kin cluster instead of
// straight away from the threat, seeking safety in numbers.
func legacyAvoidShelter(ctx *BehaviorContext) Vector2 {
	if _, ok := nearestPredatorDir(ctx); !ok {
		return Vector2{}
	}
	radius := paramOr(ctx.Params, "kin_radius", 20)
	var centroid Vector2
	count := 0
	for _, f := range ctx.VisibleFish {
		if f.Kinship > 0 && ctx.Pos.DistanceTo(f.Pos) < radius {
			centroid = centroid.Add(f.Pos)
			count++
		}
	}
	if count == 0 {
		dir, _ := nearestPredatorDir(ctx)
		return dir
	}
	centroid = centroid.Scale(1 / float64(count))
	return centroid.Sub(ctx.Pos).Normalize()
}

// legacyAvoidCreep moves away slowly rather than fleeing outright, reducing
// the chance of drawing further attention.
func legacyAvoidCreep(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "creep_radius", 12)
	dir, ok := nearestPredatorDir(ctx)
	if !ok {
		return Vector2{}
	}
	for _, pr := range ctx.VisiblePredators {
		if ctx.Pos.DistanceTo(pr.Pos) < radius {
			return dir // too close to creep, must flee properly
		}
	}
	return dir.Scale(0.3)
}

// legacyAvoidDive flees perpendicular to the threat rather than directly
// away from it.
func legacyAvoidDive(ctx *BehaviorContext) Vector2 {
	dir, ok := nearestPredatorDir(ctx)
	if !ok {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "dive_gain", 1.2)
	perp := Vector2{X: -dir.Y, Y: dir.X}
	return perp.Scale(gain)
}

func legacyAvoidDecoy(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyAvoidDecoy")
	dir, ok := nearestPredatorDir(ctx)
	if !ok {
		return Vector2{}
	}
	jitter := paramOr(ctx.Params, "decoy_jitter", 0.8)
	angle := (ctx.RNG.Float64() - 0.5) * math.Pi * jitter
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	return Vector2{X: dir.X*cosA - dir.Y*sinA, Y: dir.X*sinA + dir.Y*cosA}
}

// --- Schooling ---

func legacySchoolCohesion(ctx *BehaviorContext) Vector2 {
	dir, ok := schoolingDirection(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(paramOr(ctx.Params, "cohesion_gain", 0.8))
}

func legacySchoolAlignment(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}
	}
	var avgVel Vector2
	count := 0
	for _, f := range ctx.VisibleFish {
		avgVel = avgVel.Add(f.Vel)
		count++
	}
	if count == 0 {
		return Vector2{}
	}
	return avgVel.Scale(1 / float64(count)).Normalize().Scale(paramOr(ctx.Params, "alignment_gain", 0.8))
}

func legacySchoolSeparation(ctx *BehaviorContext) Vector2 {
	var sep Vector2
	for _, f := range ctx.VisibleFish {
		d := ctx.Pos.DistanceTo(f.Pos)
		if d > 0 && d < 5 {
			sep = sep.Add(ctx.Pos.Sub(f.Pos).Normalize().Scale(1 / d))
		}
	}
	if sep.Length() == 0 {
		return Vector2{}
	}
	return sep.Normalize().Scale(paramOr(ctx.Params, "separation_gain", 0.8))
}

// legacySchoolFlank positions to one side of the nearest kin rather than
// directly toward its centroid.
func legacySchoolFlank(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}
	}
	offset := paramOr(ctx.Params, "flank_offset", 8)
	var nearest VisibleFish
	bestDist := -1.0
	found := false
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 {
			continue
		}
		d := ctx.Pos.DistanceTo(f.Pos)
		if !found || d < bestDist {
			nearest, bestDist, found = f, d, true
		}
	}
	if !found {
		return Vector2{}
	}
	toward := nearest.Pos.Sub(ctx.Pos).Normalize()
	flank := Vector2{X: -toward.Y, Y: toward.X}.Scale(offset / (bestDist + 1))
	return toward.Add(flank).Normalize()
}

// legacySchoolFollow tracks a single nearest kin fish, rather than the
// whole group's centroid.
func legacySchoolFollow(ctx *BehaviorContext) Vector2 {
	gain := paramOr(ctx.Params, "follow_gain", 1)
	var nearest VisibleFish
	bestDist := -1.0
	found := false
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 {
			continue
		}
		d := ctx.Pos.DistanceTo(f.Pos)
		if !found || d < bestDist {
			nearest, bestDist, found = f, d, true
		}
	}
	if !found {
		return Vector2{}
	}
	return nearest.Pos.Sub(ctx.Pos).Normalize().Scale(gain)
}

// legacySchoolCenterSeek moves toward the centroid of every visible fish,
// kin or not, unlike cohesion which only considers kin.
func legacySchoolCenterSeek(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "center_gain", 0.6)
	var centroid Vector2
	for _, f := range ctx.VisibleFish {
		centroid = centroid.Add(f.Pos)
	}
	centroid = centroid.Scale(1 / float64(len(ctx.VisibleFish)))
	return centroid.Sub(ctx.Pos).Normalize().Scale(gain)
}

// legacySchoolLeader moves away from the kin centroid, the inverse of
// cohesion: a leader breaks trail rather than following.
func legacySchoolLeader(ctx *BehaviorContext) Vector2 {
	dir, ok := schoolingDirection(ctx)
	if !ok {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "lead_gain", 0.6)
	return dir.Scale(-gain)
}

// legacySchoolMirror copies the nearest visible fish's heading.
func legacySchoolMirror(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "mirror_gain", 0.9)
	best := ctx.VisibleFish[0]
	bestDist := ctx.Pos.DistanceTo(best.Pos)
	for _, f := range ctx.VisibleFish[1:] {
		d := ctx.Pos.DistanceTo(f.Pos)
		if d < bestDist || (d == bestDist && f.ID < best.ID) {
			best, bestDist = f, d
		}
	}
	if best.Vel.Length() == 0 {
		return Vector2{}
	}
	return best.Vel.Normalize().Scale(gain)
}

// --- Energy-management ---

func legacyEnergyConserve(ctx *BehaviorContext) Vector2 {
	threshold := paramOr(ctx.Params, "rest_threshold", 0.6)
	if ctx.EnergyRatio >= threshold {
		return Vector2{} // rest: conserve energy by not moving
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

func legacyEnergyBurstForage(ctx *BehaviorContext) Vector2 {
	threshold := paramOr(ctx.Params, "burst_threshold", 0.3)
	if ctx.EnergyRatio > threshold {
		return Vector2{}
	}
	dir, ok := seekNearestFood(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(2) // burst: move aggressively toward food
}

// legacyEnergyHoard always forages at high gain regardless of current
// energy, never resting.
func legacyEnergyHoard(ctx *BehaviorContext) Vector2 {
	gain := paramOr(ctx.Params, "gain", 1.5)
	dir, ok := seekNearestFood(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(gain)
}

// legacyEnergyMiser rests whenever energy is at or above rest_threshold
// (0.85 by default) and forages for the nearest food below it.
func legacyEnergyMiser(ctx *BehaviorContext) Vector2 {
	threshold := paramOr(ctx.Params, "rest_threshold", 0.85)
	if ctx.EnergyRatio >= threshold {
		return Vector2{}
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

// legacyEnergyBalanced forages below a balance point and rests above it,
// with no burst scaling either way.
func legacyEnergyBalanced(ctx *BehaviorContext) Vector2 {
	point := paramOr(ctx.Params, "balance_point", 0.5)
	if ctx.EnergyRatio >= point {
		return Vector2{}
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

// legacyEnergyOpportunist only forages when food is already very close,
// otherwise conserves energy by staying put.
func legacyEnergyOpportunist(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "opportunist_radius", 10)
	for _, f := range ctx.VisibleFood {
		if ctx.Pos.DistanceTo(f.Pos) < radius {
			dir, _ := seekNearestFood(ctx)
			return dir
		}
	}
	return Vector2{}
}

// legacyEnergySprintRecover bursts toward food below a low threshold and
// rests above a high threshold, drifting in between.
func legacyEnergySprintRecover(ctx *BehaviorContext) Vector2 {
	low := paramOr(ctx.Params, "low_threshold", 0.3)
	high := paramOr(ctx.Params, "high_threshold", 0.7)
	if ctx.EnergyRatio < low {
		dir, ok := seekNearestFood(ctx)
		if !ok {
			return Vector2{}
		}
		return dir.Scale(2)
	}
	if ctx.EnergyRatio > high {
		return Vector2{}
	}
	dir, _ := seekNearestFood(ctx)
	return dir
}

// legacyEnergyScavenger forages at reduced gain, trading speed for a lower
// metabolic cost per approach.
func legacyEnergyScavenger(ctx *BehaviorContext) Vector2 {
	gain := paramOr(ctx.Params, "gain", 0.5)
	dir, ok := seekNearestFood(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(gain)
}

// --- Territory ---

func legacyTerritoryPatrol(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyTerritoryPatrol")
	radius := paramOr(ctx.Params, "patrol_radius", 30)
	angle := ctx.RNG.Uniform(0, 2*math.Pi)
	target := Vector2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	return target.Sub(ctx.Pos).Normalize()
}

func legacyTerritoryDefend(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "defend_radius", 15)
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 && ctx.Pos.DistanceTo(f.Pos) < radius {
			return f.Pos.Sub(ctx.Pos).Normalize() // charge the intruder
		}
	}
	return Vector2{}
}

// legacyTerritoryMark steers toward a random point on a circle of
// mark_radius around the arena origin (0, 0), a smaller-radius variant of
// patrol.
func legacyTerritoryMark(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyTerritoryMark")
	radius := paramOr(ctx.Params, "mark_radius", 12)
	angle := ctx.RNG.Uniform(0, 2*math.Pi)
	target := Vector2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	return target.Sub(ctx.Pos).Normalize()
}

// legacyTerritoryExpand patrols a wide radius, claiming more ground than
// the baseline patrol variant.
func legacyTerritoryExpand(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyTerritoryExpand")
	radius := paramOr(ctx.Params, "expand_radius", 45)
	angle := ctx.RNG.Uniform(0, 2*math.Pi)
	target := Vector2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	return target.Sub(ctx.Pos).Normalize()
}

// legacyTerritoryGuard charges any non-kin fish within a tight radius,
// reacting to smaller incursions than defend.
func legacyTerritoryGuard(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "guard_radius", 10)
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 && ctx.Pos.DistanceTo(f.Pos) < radius {
			return f.Pos.Sub(ctx.Pos).Normalize()
		}
	}
	return Vector2{}
}

// legacyTerritoryRetreat withdraws from an intruder instead of charging it.
func legacyTerritoryRetreat(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "retreat_radius", 15)
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 && ctx.Pos.DistanceTo(f.Pos) < radius {
			return ctx.Pos.Sub(f.Pos).Normalize()
		}
	}
	return Vector2{}
}

// legacyTerritoryShare patrols like the baseline variant but yields to kin
// by moving toward them instead, a cooperative territory style.
func legacyTerritoryShare(ctx *BehaviorContext) Vector2 {
	if dir, ok := schoolingDirection(ctx); ok {
		return dir
	}
	requireRNG(ctx.RNG, "legacyTerritoryShare")
	radius := paramOr(ctx.Params, "patrol_radius", 30)
	angle := ctx.RNG.Uniform(0, 2*math.Pi)
	target := Vector2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	return target.Sub(ctx.Pos).Normalize()
}

// legacyTerritoryAmbush stays still until an intruder enters its radius,
// then charges — combining freeze and defend.
func legacyTerritoryAmbush(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "ambush_radius", 18)
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 && ctx.Pos.DistanceTo(f.Pos) < radius {
			return f.Pos.Sub(ctx.Pos).Normalize()
		}
	}
	return Vector2{} // no intruder yet: hold position
}

// --- Poker-interaction ---

func legacyPokerSeekOpponent(ctx *BehaviorContext) Vector2 {
	dir, ok := seekOpponent(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(paramOr(ctx.Params, "seek_gain", 0.5))
}

func legacyPokerAvoidOpponent(ctx *BehaviorContext) Vector2 {
	dir, ok := seekOpponent(ctx)
	if !ok {
		return Vector2{}
	}
	return dir.Scale(-paramOr(ctx.Params, "avoid_gain", 0.5))
}

// legacyPokerIsolate seeks the nearest non-kin fish specifically, skipping
// over kin to avoid tabling a relative.
func legacyPokerIsolate(ctx *BehaviorContext) Vector2 {
	gain := paramOr(ctx.Params, "isolate_gain", 0.6)
	var best VisibleFish
	bestDist := -1.0
	found := false
	for _, f := range ctx.VisibleFish {
		if f.Kinship > 0 {
			continue
		}
		d := ctx.Pos.DistanceTo(f.Pos)
		if !found || d < bestDist || (d == bestDist && f.ID < best.ID) {
			best, bestDist, found = f, d, true
		}
	}
	if !found {
		return Vector2{}
	}
	return best.Pos.Sub(ctx.Pos).Normalize().Scale(gain)
}

// legacyPokerWait holds position until an opponent is already close, then
// approaches — reactive rather than actively hunting a table.
func legacyPokerWait(ctx *BehaviorContext) Vector2 {
	radius := paramOr(ctx.Params, "wait_radius", 20)
	dir, ok := seekOpponent(ctx)
	if !ok {
		return Vector2{}
	}
	for _, f := range ctx.VisibleFish {
		if ctx.Pos.DistanceTo(f.Pos) < radius {
			return dir
		}
	}
	return Vector2{}
}

// legacyPokerHustle seeks an opponent at high gain, ignoring visible
// threats in pursuit of a hand.
func legacyPokerHustle(ctx *BehaviorContext) Vector2 {
	dir, ok := seekOpponent(ctx)
	if !ok {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "hustle_gain", 1.2)
	return dir.Scale(gain)
}

// legacyPokerShy avoids every visible fish, not just a chosen opponent —
// more risk-averse than the baseline avoid-opponent variant.
func legacyPokerShy(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "shy_gain", 0.9)
	var away Vector2
	for _, f := range ctx.VisibleFish {
		d := ctx.Pos.DistanceTo(f.Pos)
		if d > 0 {
			away = away.Add(ctx.Pos.Sub(f.Pos).Normalize().Scale(1 / d))
		}
	}
	if away.Length() == 0 {
		return Vector2{}
	}
	return away.Normalize().Scale(gain)
}

// legacyPokerRoamer drifts toward wherever the local group is heading,
// passively increasing the odds of crossing paths with an opponent.
func legacyPokerRoamer(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyPokerRoamer")
	bias := paramOr(ctx.Params, "roam_bias", 0.4)
	if dir, ok := schoolingDirection(ctx); ok {
		return explorationWalk(ctx, bias).Scale(1 - bias).Add(dir.Scale(bias)).Normalize()
	}
	return explorationWalk(ctx, bias)
}

// legacyPokerBluffApproach approaches the farthest visible fish rather than
// the nearest, seeking a mismatched opponent less likely to expect a hand.
func legacyPokerBluffApproach(ctx *BehaviorContext) Vector2 {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}
	}
	gain := paramOr(ctx.Params, "bluff_gain", 0.7)
	best := ctx.VisibleFish[0]
	bestDist := ctx.Pos.DistanceTo(best.Pos)
	for _, f := range ctx.VisibleFish[1:] {
		d := ctx.Pos.DistanceTo(f.Pos)
		if d > bestDist || (d == bestDist && f.ID < best.ID) {
			best, bestDist = f, d
		}
	}
	return best.Pos.Sub(ctx.Pos).Normalize().Scale(gain)
}

// --- Fallback ---

func legacyRandomWalk(ctx *BehaviorContext) Vector2 {
	requireRNG(ctx.RNG, "legacyRandomWalk")
	jitter := paramOr(ctx.Params, "jitter", 0.3)
	if ctx.RNG.Float64() > jitter {
		return Vector2{}
	}
	angle := ctx.RNG.Uniform(0, 2*math.Pi)
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}
