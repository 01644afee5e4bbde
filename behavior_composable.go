package tankworld

import "math"

// composableExecute is the recommended single driver of spec.md §4.4: five
// discrete sub-behaviors — threat response, food approach, social mode,
// exploration, poker engagement — chosen by parameter thresholds read from
// ctx.Params, giving a large number of distinct phenotypes from a small
// parameter vector (threat_sensitivity, food_drive, social_affinity,
// exploration_bias, poker_eagerness, critical_energy).
func composableExecute(ctx *BehaviorContext) Vector2 {
	p := ctx.Params

	threatSensitivity := paramOr(p, "threat_sensitivity", 0.5)
	foodDrive := paramOr(p, "food_drive", 0.5)
	socialAffinity := paramOr(p, "social_affinity", 0.3)
	explorationBias := paramOr(p, "exploration_bias", 0.3)
	pokerEagerness := paramOr(p, "poker_eagerness", 0.2)

	// 1. Threat response: highest priority whenever a predator is visible
	// and threat_sensitivity exceeds a fixed 0.2; predator distance does not
	// enter the check.
	if dir, ok := nearestPredatorDir(ctx); ok {
		if threatSensitivity > 0.2 {
			return dir
		}
	}

	// 2. Food approach: engage when hungry enough relative to food_drive.
	if ctx.EnergyRatio < (0.3 + foodDrive*0.4) {
		if dir, ok := seekNearestFood(ctx); ok {
			return dir
		}
	}

	// 3. Poker engagement: seek out an eligible opponent when the fish is
	// energetic enough to afford the stake and poker_eagerness is high.
	if pokerEagerness > 0.5 && ctx.EnergyRatio > 0.4 {
		if dir, ok := seekOpponent(ctx); ok {
			return dir
		}
	}

	// 4. Social mode: school with kin/visible fish proportional to
	// social_affinity.
	if socialAffinity > 0.4 {
		if dir, ok := schoolingDirection(ctx); ok {
			return dir
		}
	}

	// 5. Exploration: biased random walk, the fallback sub-behavior.
	if explorationBias > 0 {
		return explorationWalk(ctx, explorationBias)
	}

	return Vector2{}
}

func paramOr(p ParamVector, name string, fallback float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

func seekOpponent(ctx *BehaviorContext) (Vector2, bool) {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}, false
	}
	best := ctx.VisibleFish[0]
	bestDist := ctx.Pos.DistanceTo(best.Pos)
	for _, f := range ctx.VisibleFish[1:] {
		d := ctx.Pos.DistanceTo(f.Pos)
		if d < bestDist || (d == bestDist && f.ID < best.ID) {
			best, bestDist = f, d
		}
	}
	return best.Pos.Sub(ctx.Pos).Normalize(), true
}

// schoolingDirection blends cohesion (move toward the centroid of nearby
// kin) with separation (avoid crowding) for a simple boids-style response.
func schoolingDirection(ctx *BehaviorContext) (Vector2, bool) {
	if len(ctx.VisibleFish) == 0 {
		return Vector2{}, false
	}
	var centroid Vector2
	var separation Vector2
	count := 0
	for _, f := range ctx.VisibleFish {
		if f.Kinship <= 0 {
			continue
		}
		centroid = centroid.Add(f.Pos)
		count++
		d := ctx.Pos.DistanceTo(f.Pos)
		if d > 0 && d < 5 {
			separation = separation.Add(ctx.Pos.Sub(f.Pos).Normalize().Scale(1 / d))
		}
	}
	if count == 0 {
		return Vector2{}, false
	}
	centroid = centroid.Scale(1 / float64(count))
	cohesion := centroid.Sub(ctx.Pos).Normalize()
	return cohesion.Add(separation).Normalize(), true
}

func explorationWalk(ctx *BehaviorContext, bias float64) Vector2 {
	requireRNG(ctx.RNG, "explorationWalk")
	angle := ctx.RNG.Uniform(0, 2*math.Pi)
	jitter := Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
	if ctx.Vel.Length() > 0 {
		return ctx.Vel.Normalize().Scale(1 - bias).Add(jitter.Scale(bias)).Normalize()
	}
	return jitter
}
