package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Each board cell is drawn two characters wide so the well looks roughly
// square in a terminal.
const cellW = 2

// Well position on screen.
const (
	wellX = 4
	wellY = 1
)

// blockRunes are the fill variants; a piece's cosmetic variant picks one.
const blockRunes = "█▓▒"

const (
	ghostChar    = '·'
	clearChar    = '▚'
	particleChar = '✦'
)

// pieceColors maps engine colors to screen colors.
var pieceColors = map[engine.Color]core.Color{
	engine.ColorCyan:    core.ColorCyan,
	engine.ColorYellow:  core.ColorYellow,
	engine.ColorMagenta: core.ColorMagenta,
	engine.ColorGreen:   core.ColorGreen,
	engine.ColorRed:     core.ColorRed,
	engine.ColorBlue:    core.ColorBlue,
	engine.ColorOrange:  core.ColorOrange,
	engine.ColorWhite:   core.ColorBrightWhite,
	engine.ColorPink:    core.ColorBrightMagenta,
	engine.ColorLime:    core.ColorBrightGreen,
	engine.ColorGray:    core.ColorGray,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	s := g.eng.State()

	g.drawWell(dst, s)
	g.drawBoard(dst, s)
	g.drawGhost(dst, s)
	g.drawActivePiece(dst, s)
	g.drawParticles(dst)
	g.drawSidePanel(dst, s)

	if g.banner != "" {
		dst.DrawTextCentered(0, " "+g.banner+" ")
	}

	switch s.Phase {
	case engine.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case engine.PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score)
		if g.newHighScore {
			sub = fmt.Sprintf("NEW RECORD %d!  |  Press R to restart", s.Score)
		}
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

func (g *Game) drawWell(dst *core.Screen, s *engine.State) {
	box := core.NewRect(wellX-1, wellY-1, engine.BoardCols*cellW+2, engine.BoardRows+2)
	dst.DrawBox(box)
	if s.DangerSpawn {
		dst.DrawTextColored(wellX, wellY-1, " DANGER ", core.ColorBrightRed)
	}
}

func (g *Game) drawBoard(dst *core.Screen, s *engine.State) {
	clearing := make(map[int]bool, len(s.ClearingRows))
	for _, row := range s.ClearingRows {
		clearing[row] = true
	}
	// Clearing rows blink until the animation timer finalizes them.
	flash := (s.Frame/4)%2 == 0

	for y := 0; y < engine.BoardRows; y++ {
		for x := 0; x < engine.BoardCols; x++ {
			c := s.Board.Cell(x, y)
			if c == engine.ColorNone {
				continue
			}
			r := rune('█')
			color := pieceColors[c]
			if clearing[y] {
				r = clearChar
				if flash {
					color = core.ColorBrightWhite
				}
			}
			g.drawCell(dst, x, y, r, color)
		}
	}
}

func (g *Game) drawGhost(dst *core.Screen, s *engine.State) {
	p := s.Current
	if p == nil || s.Phase == engine.PhaseClearing {
		return
	}
	landing := s.Board.DropRow(p.Shape, p.X, p.Y)
	if landing == p.Y {
		return
	}
	for sy, row := range p.Shape {
		for sx, filled := range row {
			if filled {
				g.drawCell(dst, p.X+sx, landing+sy, ghostChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawActivePiece(dst *core.Screen, s *engine.State) {
	p := s.Current
	if p == nil {
		p = s.DeathPiece
	}
	if p == nil {
		return
	}
	runes := []rune(blockRunes)
	r := runes[p.Variant%len(runes)]
	for sy, row := range p.Shape {
		for sx, filled := range row {
			if filled {
				g.drawCell(dst, p.X+sx, p.Y+sy, r, pieceColors[p.Color])
			}
		}
	}
}

// drawCell paints one board cell (two screen columns). Rows above the
// visible board are clipped.
func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < 0 || y >= engine.BoardRows || x < 0 || x >= engine.BoardCols {
		return
	}
	sx := wellX + x*cellW
	sy := wellY + y
	dst.SetCell(sx, sy, r, c)
	dst.SetCell(sx+1, sy, r, c)
}

func (g *Game) drawParticles(dst *core.Screen) {
	for _, p := range g.particles {
		x := int(p.X)
		y := int(p.Y)
		if y < 0 || y >= engine.BoardRows || x < 0 || x >= engine.BoardCols {
			continue
		}
		dst.SetCell(wellX+x*cellW, wellY+y, particleChar, pieceColors[p.Color])
	}
}

func (g *Game) drawSidePanel(dst *core.Screen, s *engine.State) {
	px := wellX + engine.BoardCols*cellW + 4

	dst.DrawText(px, wellY, "NEXT")
	g.drawPreview(dst, px, wellY+1, s.Next)

	dst.DrawText(px, wellY+7, "HOLD")
	if s.Held != nil {
		g.drawPreview(dst, px, wellY+8, s.Held)
	} else {
		dst.DrawTextColored(px, wellY+8, "empty", core.ColorGray)
	}
	if !s.CanHold {
		dst.DrawTextColored(px+6, wellY+7, "(used)", core.ColorGray)
	}

	sy := wellY + 13
	dst.DrawText(px, sy, fmt.Sprintf("Score  %d", s.Score))
	dst.DrawText(px, sy+1, fmt.Sprintf("Lines  %d", s.Lines))
	dst.DrawText(px, sy+2, fmt.Sprintf("Level  %d", s.Level))
	if s.Combo > 0 {
		dst.DrawTextColored(px, sy+3, fmt.Sprintf("Combo  x%d", s.Combo), core.ColorBrightYellow)
	}
	if g.highScore > 0 {
		dst.DrawText(px, sy+4, fmt.Sprintf("Best   %d", g.highScore))
	}

	if p := s.Current; p != nil && p.Kind == engine.KindFloat {
		fuel := g.params.FloatBudget - p.UpMoves
		dst.DrawTextColored(px, sy+5, fmt.Sprintf("Fuel   %d/%d", fuel, g.params.FloatBudget), core.ColorBrightCyan)
	}

	// Progress toward the next unlock milestone.
	if g.params.Progression && g.params.UnlockStep > 0 {
		next := (s.Milestones + 1) * g.params.UnlockStep
		dst.DrawTextColored(px, sy+6, fmt.Sprintf("Next   %d", next), core.ColorGray)
	}
}

func (g *Game) drawPreview(dst *core.Screen, x, y int, p *engine.Piece) {
	if p == nil {
		return
	}
	for sy, row := range p.Shape {
		for sx, filled := range row {
			if filled {
				dst.SetCell(x+sx*cellW, y+sy, '█', pieceColors[p.Color])
				dst.SetCell(x+sx*cellW+1, y+sy, '█', pieceColors[p.Color])
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
