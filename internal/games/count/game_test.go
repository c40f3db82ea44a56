package count

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tapcount/internal/config"
	"github.com/vovakirdan/tapcount/internal/core"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := New(config.DefaultCountConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 12345})
	return g
}

func tapFrame(n int) core.InputFrame {
	f := core.NewInputFrame()
	for i := 0; i < n; i++ {
		f.Push(core.ActionTap)
	}
	return f
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 80, 24)
	g2 := newTestGame(t, 80, 24)

	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Push(core.ActionTap)
		}
		s1 := g1.Step(in)
		s2 := g2.Step(in)
		if s1 != s2 {
			t.Fatalf("tick %d: states diverged: %+v vs %+v", i, s1, s2)
		}
	}
}

func TestGameStepAppliesEveryTapInFrame(t *testing.T) {
	g := newTestGame(t, 80, 24)
	target := g.State().Target

	s := g.Step(tapFrame(target - 1))
	if s.TapCount != target-1 || s.Status != StatusPlaying {
		t.Fatalf("after %d taps: %+v", target-1, s)
	}

	// One more than needed in a single frame: the last tap is dropped
	s = g.Step(tapFrame(2))
	if s.Status != StatusSuccess || s.TapCount != target {
		t.Fatalf("state = %+v, expected success at %d taps", s, target)
	}
}

func TestGameResetsAfterSuccessDelay(t *testing.T) {
	g := newTestGame(t, 80, 24)
	target := g.State().Target
	g.Step(tapFrame(target))

	// 1200ms at 60 ticks per second
	ticks := int(1200*time.Millisecond/(time.Second/60)) + 1
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}

	s := g.State()
	if s.Status != StatusPlaying || s.TapCount != 0 || s.Target == target {
		t.Errorf("state after delay = %+v, expected a new round without target %d", s, target)
	}
}

func TestGameSuccessDelayStartsAfterWinningTick(t *testing.T) {
	g := New(config.DefaultCountConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 99})
	target := g.State().Target

	if s := g.Step(tapFrame(target)); s.Status != StatusSuccess {
		t.Fatalf("state = %+v, expected success", s)
	}

	// 11 ticks of 100ms is still short of the 1200ms delay.
	for i := 0; i < 11; i++ {
		if s := g.Step(core.NewInputFrame()); s.Status != StatusSuccess {
			t.Fatalf("tick %d: status = %v, expected success to last 1200ms", i+1, s.Status)
		}
	}

	if s := g.Step(core.NewInputFrame()); s.Status != StatusPlaying || s.Target == target {
		t.Errorf("state after 1200ms = %+v, expected a new round", s)
	}
}

func TestGameRenderPlaying(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{g.Title(), buttonText, "For grown-ups:", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "○"); got != g.State().Target {
		t.Errorf("render shows %d empty apples, expected %d", got, g.State().Target)
	}
}

func TestGameRenderSuccess(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Step(tapFrame(g.State().Target))
	for i := 0; i < 30; i++ { // half a second into the celebration
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, successText) {
		t.Errorf("render missing success message:\n%s", out)
	}
	if strings.Contains(out, "○") {
		t.Error("all apples should be filled on success")
	}

	confetti := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			for _, c := range ConfettiPalette {
				if cell.Color == core.Color(c) && strings.ContainsRune(string(confettiRunes), cell.Rune) {
					confetti++
				}
			}
		}
	}
	if confetti == 0 {
		t.Error("no confetti on screen half a second into the celebration")
	}
}

func TestGameRenderTooMany(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.ctrl.state = RoundState{Target: 2, TapCount: 2, Status: StatusPlaying}
	g.ctrl.Tap()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), tooManyText) {
		t.Errorf("render missing overshoot message:\n%s", screen.String())
	}
}

func TestGameRenderCompact(t *testing.T) {
	g := newTestGame(t, 30, 5)
	screen := core.NewScreen(30, 5)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Number: ") {
		t.Errorf("compact render missing numeral line:\n%s", screen.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(hintText, 44)
	for _, line := range lines {
		if core.TextWidth(line) > 44 {
			t.Errorf("line %q exceeds 44 cells", line)
		}
	}
	if strings.Join(lines, " ") != hintText {
		t.Error("wrapping lost or reordered words")
	}
	if wrapText("anything", 0) != nil {
		t.Error("zero width should produce no lines")
	}
}
