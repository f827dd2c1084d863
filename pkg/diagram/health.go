package diagram

import "math"

// Process-health coefficients. The 0.4/0.6 weighting and the 1.2 takt-ratio
// clamp are empirical product constants, not derived values; change them only
// with product input.
const (
	healthEfficiencyWeight = 0.4
	healthTaktWeight       = 0.6
	healthTaktRatioClamp   = 1.2
)

// TaktTime returns available production time divided by customer demand,
// the target pacing rate. Returns 0 when demand is not positive.
func TaktTime(availableTime, demand float64) float64 {
	if demand <= 0 {
		return 0
	}
	return availableTime / demand
}

// HealthScore blends process efficiency with how close the cycle time runs
// to takt, on a 0..1 scale:
//
//	score = 0.4·efficiency + 0.6·min(taktRatio, 1.2)/1.2
//
// efficiency is clamped to [0, 1] and taktRatio (takt/cycle) to
// [0, 1.2] before blending.
func HealthScore(efficiency, taktRatio float64) float64 {
	efficiency = math.Min(1, math.Max(0, efficiency))
	taktRatio = math.Min(healthTaktRatioClamp, math.Max(0, taktRatio))
	return healthEfficiencyWeight*efficiency + healthTaktWeight*taktRatio/healthTaktRatioClamp
}

// PayloadHealth computes the health score directly from a node payload.
// Uptime percent acts as the efficiency term; the takt ratio compares takt
// time (available/demand) against the node's cycle time. Nodes without a
// cycle time score on efficiency alone.
func PayloadHealth(p Payload) float64 {
	efficiency := p.Uptime / 100
	if p.CycleTime <= 0 {
		return HealthScore(efficiency, 0)
	}
	takt := TaktTime(p.AvailableTime, p.Demand)
	return HealthScore(efficiency, takt/p.CycleTime)
}
