package count

import "math/rand"

// Reward sizes and timing.
const (
	ConfettiCount   = 36
	BalloonCount    = 6
	confettiStagger = 0.035 // seconds between consecutive confetti pieces
)

// ConfettiPalette is assigned cyclically so every color appears equally often.
var ConfettiPalette = []string{
	"#f97316", // orange
	"#facc15", // yellow
	"#22d3ee", // cyan
	"#a855f7", // purple
	"#34d399", // green
	"#fb7185", // rose
}

// BalloonPalette is sampled independently for each balloon.
var BalloonPalette = []string{
	"#f472b6", // pink
	"#60a5fa", // blue
	"#fbbf24", // amber
	"#34d399", // green
	"#c084fc", // violet
}

// ConfettiPiece is one falling scrap of confetti.
type ConfettiPiece struct {
	Left     float64 // horizontal position, percent of width [0,100]
	Drift    float64 // sideways travel while falling, pixels [-60,60]
	Duration float64 // fall time in seconds [1.0,1.7]
	Delay    float64 // start offset in seconds
	Color    string
}

// Balloon is one rising balloon.
type Balloon struct {
	Left  float64 // horizontal position, percent of width [10,90]
	Delay float64 // start offset in seconds [0,0.6)
	Color string
	Scale float64 // size multiplier [0.7,1.2)
}

// Star is one twinkling star of the fixed success backdrop.
type Star struct {
	Top   float64 // percent of height
	Left  float64 // percent of width
	Delay float64 // seconds
}

var starLayout = [...]Star{
	{Top: 8, Left: 18, Delay: 0},
	{Top: 12, Left: 72, Delay: 0.1},
	{Top: 32, Left: 5, Delay: 0.2},
	{Top: 45, Left: 86, Delay: 0.3},
	{Top: 65, Left: 12, Delay: 0.35},
	{Top: 70, Left: 80, Delay: 0.4},
	{Top: 85, Left: 30, Delay: 0.45},
	{Top: 88, Left: 65, Delay: 0.5},
}

// Stars returns the fixed star layout.
func Stars() []Star {
	out := make([]Star, len(starLayout))
	copy(out, starLayout[:])
	return out
}

// GenerateConfetti creates a fresh burst of ConfettiCount pieces.
// Delays are staggered by index and colors cycle through the palette; only
// position, drift and duration are random.
func GenerateConfetti(rng *rand.Rand) []ConfettiPiece {
	pieces := make([]ConfettiPiece, ConfettiCount)
	for i := range pieces {
		pieces[i] = ConfettiPiece{
			Left:     rng.Float64() * 100,
			Drift:    rng.Float64()*120 - 60,
			Duration: 1 + rng.Float64()*0.7,
			Delay:    float64(i) * confettiStagger,
			Color:    ConfettiPalette[i%len(ConfettiPalette)],
		}
	}
	return pieces
}

// GenerateBalloons creates a fresh set of BalloonCount balloons.
func GenerateBalloons(rng *rand.Rand) []Balloon {
	balloons := make([]Balloon, BalloonCount)
	for i := range balloons {
		balloons[i] = Balloon{
			Left:  rng.Float64()*80 + 10,
			Delay: rng.Float64() * 0.6,
			Color: BalloonPalette[rng.Intn(len(BalloonPalette))],
			Scale: 0.7 + rng.Float64()*0.5,
		}
	}
	return balloons
}
