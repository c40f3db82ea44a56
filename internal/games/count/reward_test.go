package count

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func TestGenerateConfetti(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for run := 0; run < 50; run++ {
		pieces := GenerateConfetti(rng)
		if len(pieces) != ConfettiCount {
			t.Fatalf("GenerateConfetti() returned %d pieces, expected %d", len(pieces), ConfettiCount)
		}

		for i, p := range pieces {
			if p.Left < 0 || p.Left > 100 {
				t.Errorf("piece %d: Left = %v, expected [0, 100]", i, p.Left)
			}
			if p.Drift < -60 || p.Drift > 60 {
				t.Errorf("piece %d: Drift = %v, expected [-60, 60]", i, p.Drift)
			}
			if p.Duration < 1.0 || p.Duration > 1.7 {
				t.Errorf("piece %d: Duration = %v, expected [1.0, 1.7]", i, p.Duration)
			}
			wantDelay := float64(i) * 0.035
			if math.Abs(p.Delay-wantDelay) > 1e-9 {
				t.Errorf("piece %d: Delay = %v, expected %v", i, p.Delay, wantDelay)
			}
			if want := ConfettiPalette[i%6]; p.Color != want {
				t.Errorf("piece %d: Color = %s, expected %s", i, p.Color, want)
			}
		}
	}
}

func TestConfettiColorsEvenlyDistributed(t *testing.T) {
	pieces := GenerateConfetti(rand.New(rand.NewSource(1)))
	counts := make(map[string]int)
	for _, p := range pieces {
		counts[p.Color]++
	}

	if len(counts) != len(ConfettiPalette) {
		t.Fatalf("got %d colors, expected %d", len(counts), len(ConfettiPalette))
	}
	for color, n := range counts {
		if n != ConfettiCount/len(ConfettiPalette) {
			t.Errorf("color %s used %d times, expected %d", color, n, ConfettiCount/len(ConfettiPalette))
		}
	}
}

func TestGenerateBalloons(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	for run := 0; run < 50; run++ {
		balloons := GenerateBalloons(rng)
		if len(balloons) != BalloonCount {
			t.Fatalf("GenerateBalloons() returned %d balloons, expected %d", len(balloons), BalloonCount)
		}

		for i, b := range balloons {
			if b.Left < 10 || b.Left > 90 {
				t.Errorf("balloon %d: Left = %v, expected [10, 90]", i, b.Left)
			}
			if b.Delay < 0 || b.Delay >= 0.6 {
				t.Errorf("balloon %d: Delay = %v, expected [0, 0.6)", i, b.Delay)
			}
			if b.Scale < 0.7 || b.Scale >= 1.2 {
				t.Errorf("balloon %d: Scale = %v, expected [0.7, 1.2)", i, b.Scale)
			}
			if !slices.Contains(BalloonPalette, b.Color) {
				t.Errorf("balloon %d: Color = %s, not in palette", i, b.Color)
			}
		}
	}
}

func TestStarsAreFixed(t *testing.T) {
	a := Stars()
	if len(a) != 8 {
		t.Fatalf("Stars() returned %d stars, expected 8", len(a))
	}

	// Callers get a copy; the layout itself never changes
	a[0].Top = 99
	b := Stars()
	if b[0].Top != 8 || b[0].Left != 18 || b[0].Delay != 0 {
		t.Errorf("Stars()[0] = %+v, expected the fixed layout", b[0])
	}
	if b[7] != (Star{Top: 88, Left: 65, Delay: 0.5}) {
		t.Errorf("Stars()[7] = %+v", b[7])
	}
}
