package player

import (
	"math"

	"copsrobber/game"
	"copsrobber/gamemaster"

	"golang.org/x/exp/rand"
)

type sampler struct {
	rng         *rand.Rand
	temperature float64
}

// NewSampler returns a player that draws its move at random, favouring moves
// that end near the robber. Low temperatures behave like the chaser, high
// temperatures like the random player.
func NewSampler(seed uint64, temperature float64) Player {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &sampler{rng: rand.New(rand.NewSource(seed)), temperature: temperature}
}

func (p *sampler) Name() string {
	return "sampler"
}

func (p *sampler) Choose(s *gamemaster.Session) (Choice, bool, error) {
	possible, err := options(s)
	if err != nil {
		return Choice{}, false, err
	}
	if len(possible) == 0 {
		return Choice{}, false, nil
	}

	b, err := s.Board()
	if err != nil {
		return Choice{}, false, err
	}
	robber, err := s.RobberTile()
	if err != nil {
		return Choice{}, false, err
	}

	closeness := make([]float64, len(possible))
	for i, c := range possible {
		d := game.ShortestDistance(b, c.Tile, robber)
		if d == 0 {
			return c, true, nil
		}
		closeness[i] = 1 / float64(d)
	}
	policy := adjustTemperature(closeness, p.temperature)
	return possible[sample(policy, p.rng.Float64())], true, nil
}

// adjustTemperature turns weights into probabilities, sharpened or flattened
// by the temperature.
func adjustTemperature(weights []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(weights))
	for i, w := range weights {
		prob := math.Pow(w, exponent)
		sum += prob
		policy[i] = prob
	}
	if sum == 0 || math.IsInf(sum, 0) {
		for i := range policy {
			policy[i] = 1
		}
		sum = float64(len(policy))
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

// sample returns the index picked by a uniform draw in [0, 1).
func sample(policy []float64, draw float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if draw < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
