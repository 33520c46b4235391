// Package detection turns a food photo into a list of dishes.
//
// No real recognizer exists yet. RandomDetector samples its table without
// looking at the pixels; it stands in for a trained model behind the
// FoodDetector interface.
package detection

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"sync"
	"time"
)

type DetectedFood struct {
	Name        string  `json:"name" example:"Momo"`
	Confidence  float64 `json:"confidence" example:"0.87"`
	Calories    int     `json:"calories" example:"330"`
	Quantity    int     `json:"quantity" example:"6"`
	ServingInfo string  `json:"serving_info" example:"6 pieces"`
}

type FoodDetector interface {
	Detect(ctx context.Context, img image.Image) ([]DetectedFood, error)
}

// Recognizable is one dish the detector can report. Piece-counted dishes set
// PerPiece and a quantity range; the rest are one serving of PerServing.
type Recognizable struct {
	Name       string
	PerPiece   int
	MinPieces  int
	MaxPieces  int
	PerServing int
}

const fallbackServingCalories = 200

var DefaultTable = []Recognizable{
	{Name: "Dal Bhat", PerServing: 420},
	{Name: "Momo", PerPiece: 55, MinPieces: 4, MaxPieces: 8},
	{Name: "Gundruk Soup", PerServing: 120},
	{Name: "Sel Roti", PerPiece: 90, MinPieces: 1, MaxPieces: 3},
	{Name: "Chatamari"},
}

const (
	minConfidence = 0.70
	maxConfidence = 0.95
	maxDetections = 3
)

type RandomDetector struct {
	mu    sync.Mutex
	rng   *rand.Rand
	table []Recognizable
}

// NewRandomDetector uses DefaultTable when table is empty. A nil rng is
// seeded from the clock.
func NewRandomDetector(rng *rand.Rand, table ...Recognizable) *RandomDetector {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	if len(table) == 0 {
		table = DefaultTable
	}
	return &RandomDetector{rng: rng, table: append([]Recognizable(nil), table...)}
}

// Detect picks 1 to 3 distinct dishes. The image is accepted but unused.
func (d *RandomDetector) Detect(ctx context.Context, _ image.Image) ([]DetectedFood, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	available := append([]Recognizable(nil), d.table...)
	count := 1 + d.rng.IntN(maxDetections)
	if count > len(available) {
		count = len(available)
	}

	found := make([]DetectedFood, 0, count)
	for i := 0; i < count; i++ {
		idx := d.rng.IntN(len(available))
		item := available[idx]
		available = append(available[:idx], available[idx+1:]...)

		confidence := minConfidence + d.rng.Float64()*(maxConfidence-minConfidence)
		found = append(found, d.portion(item, confidence))
	}
	return found, nil
}

func (d *RandomDetector) portion(item Recognizable, confidence float64) DetectedFood {
	if item.PerPiece > 0 {
		qty := item.MinPieces
		if item.MaxPieces > item.MinPieces {
			qty += d.rng.IntN(item.MaxPieces - item.MinPieces + 1)
		}
		if qty < 1 {
			qty = 1
		}
		return DetectedFood{
			Name:        item.Name,
			Confidence:  confidence,
			Calories:    item.PerPiece * qty,
			Quantity:    qty,
			ServingInfo: fmt.Sprintf("%d pieces", qty),
		}
	}
	calories := item.PerServing
	if calories <= 0 {
		calories = fallbackServingCalories
	}
	return DetectedFood{
		Name:        item.Name,
		Confidence:  confidence,
		Calories:    calories,
		Quantity:    1,
		ServingInfo: "1 serving",
	}
}
