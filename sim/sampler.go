// Stochastic sampling for station service times and source inter-arrival gaps.

package sim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleServiceTime draws one actual processing duration for a job.
//
// With randomness disabled or cv == 0 the nominal time is returned unchanged.
// Otherwise the draw is log-normal, parameterized so the distribution's mean
// equals nominal and its coefficient of variation equals cv:
//
//	sigma^2 = ln(1 + cv^2)
//	mu      = ln(nominal) - sigma^2/2
//
// The mu correction matters: a naive draw with mu = ln(nominal) would have a
// mean above the nominal value. Draws are always positive, so a station never
// sees a negative duration.
func SampleServiceTime(nominal, cv float64, enabled bool, src rand.Source) float64 {
	if !enabled || cv == 0 {
		return nominal
	}
	sigma := math.Sqrt(math.Log(1.0 + cv*cv))
	mu := math.Log(nominal) - 0.5*sigma*sigma
	dist := distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}
	return dist.Rand()
}

// SampleInterArrival draws the source's next inter-arrival gap.
//
// With randomness disabled or jitter == 0 the gap equals the cadence exactly.
// Otherwise it is exponential with mean cadence*(1+jitter), producing bursty
// arrivals whose average rate approaches the cadence as jitter goes to zero.
func SampleInterArrival(cadence, jitter float64, enabled bool, src rand.Source) float64 {
	if !enabled || jitter <= 0 {
		return cadence
	}
	mean := cadence * (1.0 + jitter)
	dist := distuv.Exponential{Rate: 1.0 / mean, Src: src}
	return dist.Rand()
}
