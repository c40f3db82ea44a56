package count

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tapcount/internal/core"
)

// Child- and grown-up-facing text.
const (
	instructionsText = "Look at the number. Tap the big button the same number of times!"
	hintText         = "For grown-ups: This game helps children to get a sense of the size of the displayed numeral by matching the taps to the number."
	successText      = "Spectacular! You matched the number perfectly!"
	tooManyText      = "Oops, that was too many taps. Let's try a new number!"
	buttonText       = "TAP!"
)

// Layout and animation constants.
const (
	minFullW = 48
	minFullH = 22
	layoutH  = 21 // rows used by the full layout

	buttonW = 20
	buttonH = 3

	pixelsPerCell   = 8.0 // confetti drift is specified in pixels
	balloonRiseSecs = 1.4
	twinkleSecs     = 1.2
)

var confettiRunes = []rune{'▪', '•', '◆', '▫'}

// digitGlyphs is a 3x5 block font for the numeral tile.
var digitGlyphs = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// Render draws the current round into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		return
	}

	state := g.ctrl.State()
	if state.Status == StatusSuccess {
		g.renderCelebration(dst)
	}

	if dst.Width() < minFullW || dst.Height() < minFullH {
		g.renderCompact(dst, state)
		return
	}
	g.renderFull(dst, state)
}

// renderFull draws the title, numeral tile, apples, button and message.
func (g *Game) renderFull(dst *core.Screen, state RoundState) {
	y := (dst.Height() - layoutH) / 2

	dst.DrawTextCentered(y, g.Title(), core.ColorIndigo)
	y++
	for _, line := range wrapText(instructionsText, dst.Width()-4) {
		dst.DrawTextCentered(y, line, core.ColorGray)
		y++
	}
	y++

	y = drawNumeralTile(dst, y, state.Target)
	y++

	drawDots(dst, y, g.ctrl.Dots())
	y += 2

	btn := core.CenteredRect(dst.Width(), y, buttonW, buttonH)
	dst.DrawBox(btn, core.ColorPink)
	_, cy := btn.Center()
	dst.DrawTextCentered(cy, buttonText, core.ColorPink)
	y = btn.Bottom() + 1

	drawMessage(dst, y, state.Status)
}

// renderCompact is used when the terminal is too small for the full layout.
func (g *Game) renderCompact(dst *core.Screen, state RoundState) {
	y := 0
	dst.DrawTextCentered(y, "Number: "+strconv.Itoa(state.Target), core.ColorIndigo)
	y++
	drawDots(dst, y, g.ctrl.Dots())
	y++

	switch state.Status {
	case StatusSuccess:
		dst.DrawTextCentered(y, "Spectacular!", core.ColorGreen)
	case StatusTooMany:
		dst.DrawTextCentered(y, "Oops, too many!", core.ColorRed)
	default:
		dst.DrawTextCentered(y, "["+buttonText+"]", core.ColorPink)
	}
}

// drawNumeralTile draws the target inside a box and returns the row below it.
func drawNumeralTile(dst *core.Screen, y, target int) int {
	digits := strconv.Itoa(target)
	glyphW := len(digits)*4 - 1
	tile := core.CenteredRect(dst.Width(), y, core.Max(11, glyphW+6), 7)
	dst.DrawBox(tile, core.ColorIndigo)

	x := tile.X + (tile.W-glyphW)/2
	for _, d := range digits {
		glyph := digitGlyphs[d-'0']
		for row, line := range glyph {
			col := 0
			for _, r := range line {
				if r != ' ' {
					dst.SetColored(x+col, tile.Y+1+row, r, core.ColorWhite)
				}
				col++
			}
		}
		x += 4
	}
	return tile.Bottom()
}

// drawDots draws one apple per counted item, red once tapped.
func drawDots(dst *core.Screen, y int, dots []bool) {
	if len(dots) == 0 {
		return
	}
	w := len(dots)*2 - 1
	x := (dst.Width() - w) / 2
	for i, filled := range dots {
		if filled {
			dst.SetColored(x+i*2, y, '●', core.ColorRed)
		} else {
			dst.SetColored(x+i*2, y, '○', core.ColorApple)
		}
	}
}

// drawMessage draws the status line(s) starting at row y.
func drawMessage(dst *core.Screen, y int, status Status) {
	switch status {
	case StatusSuccess:
		dst.DrawTextCentered(y, "✦ ✦ ✦", core.ColorGold)
		dst.DrawTextCentered(y+1, successText, core.ColorGreen)
	case StatusTooMany:
		dst.DrawTextCentered(y+1, tooManyText, core.ColorRed)
	default:
		for i, line := range wrapText(hintText, dst.Width()-4) {
			dst.DrawTextCentered(y+i, line, core.ColorGray)
		}
	}
}

// renderCelebration draws stars, balloons and confetti for the time elapsed
// since the round was won.
func (g *Game) renderCelebration(dst *core.Screen) {
	t := g.ctrl.Elapsed().Seconds()
	w, h := dst.Width(), dst.Height()

	for _, s := range g.ctrl.Stars() {
		local := t - s.Delay
		if local < 0 {
			continue
		}
		r := '✦'
		if math.Mod(local, twinkleSecs) >= twinkleSecs/2 {
			r = '✧'
		}
		dst.SetColored(core.PercentOf(s.Left, w), core.PercentOf(s.Top, h), r, core.ColorGold)
	}

	for _, b := range g.ctrl.Balloons() {
		local := t - b.Delay
		if local < 0 {
			continue
		}
		p := local / balloonRiseSecs
		if p >= 1 {
			continue
		}
		x := core.PercentOf(b.Left, w)
		y := h - 1 - int(p*float64(h+1))
		body := 'o'
		if b.Scale >= 0.95 {
			body = 'O'
		}
		dst.SetColored(x, y, body, core.Color(b.Color))
		dst.SetColored(x, y+1, '│', core.ColorGray)
	}

	for i, c := range g.ctrl.Confetti() {
		local := t - c.Delay
		if local < 0 || local >= c.Duration {
			continue
		}
		p := local / c.Duration
		x := core.PercentOf(c.Left, w) + int(c.Drift/pixelsPerCell*p)
		y := int(p * float64(h))
		dst.SetColored(x, y, confettiRunes[i%len(confettiRunes)], core.Color(c.Color))
	}
}

// wrapText splits text into lines of at most width cells on word boundaries.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && core.TextWidth(line.String())+1+core.TextWidth(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
