package cave

// Outcome is what the objective checks found in one tick.
type Outcome struct {
	Hit     bool // Hero touched an enemy
	Enemy   int  // Index of the enemy that was hit, valid when Hit is set
	Pickup  bool // Treasure was collected this tick
	Victory bool // Hero reached the exit carrying the treasure
}

// Evaluate runs the per-tick checks in their fixed order: enemy contact,
// treasure pickup, exit. Enemy contact ends the evaluation for the tick, so
// it takes priority over a pickup or exit satisfied in the same tick.
//
// Evaluate does not mutate anything; the session applies the outcome.
func Evaluate(hero HasHitbox, enemies []*Enemy, treasure, exit *Marker) Outcome {
	box := hero.Hitbox()

	for i, e := range enemies {
		if box.Intersects(e.Hitbox()) {
			return Outcome{Hit: true, Enemy: i}
		}
	}

	var out Outcome
	if !treasure.Collected() && box.Intersects(treasure.Hitbox()) {
		out.Pickup = true
	}

	carrying := treasure.Collected() || out.Pickup
	if carrying && box.Intersects(exit.Hitbox()) {
		out.Victory = true
	}
	return out
}
