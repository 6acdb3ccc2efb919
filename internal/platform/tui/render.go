package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tile-merge/internal/canvas"
	"github.com/vovakirdan/tile-merge/internal/grid"
	"github.com/vovakirdan/tile-merge/internal/session"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = grid.Size*cellWidth + 1
	boardH = grid.Size*cellHeight + 1

	// MinWidth and MinHeight are the smallest terminal that fits the board.
	MinWidth  = boardW + 2
	MinHeight = hudHeight + boardH + 2
)

// frame is everything the board renderer needs for one view.
type frame struct {
	state      session.State
	highlights Highlights
	showWin    bool
	winTile    int
	status     string
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *canvas.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawFrame draws the HUD, board and overlays into dst.
func drawFrame(dst *canvas.Screen, f frame) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		drawTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	drawHUD(dst, f, boardX)
	drawBoard(dst, f, boardX, boardY)

	board := canvas.Rect{X: boardX, Y: boardY, W: boardW, H: boardH}
	centerX, centerY := board.Center()
	switch {
	case f.state.GameOver:
		drawOverlay(dst, centerX, centerY, canvas.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Max: %d", f.state.Score, f.state.MaxTile),
			"u: undo  n: new game")
	case f.showWin:
		drawOverlay(dst, centerX, centerY, canvas.ColorBrightCyan,
			fmt.Sprintf("%d!", f.winTile),
			"You win!",
			"Keep going with any move")
	}

	if f.status != "" {
		dst.DrawTextCentered(boardY+boardH, f.status, canvas.ColorGray)
	}
}

func drawTooSmall(dst *canvas.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", canvas.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", canvas.ColorGray)
}

func drawHUD(dst *canvas.Screen, f frame, boardX int) {
	title := "TILE MERGE"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, canvas.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", f.state.Score))

	best := fmt.Sprintf("Best: %d", f.state.BestScore)
	dst.DrawText(boardX+boardW-len(best), 1, best)

	info := fmt.Sprintf("Moves: %d  Undo: %d", f.state.Moves, f.state.UndoDepth)
	dst.DrawTextColor(boardX+(boardW-len(info))/2, 2, info, canvas.ColorGray)
}

// drawBoard draws the grid lines and tiles.
func drawBoard(dst *canvas.Screen, f frame, boardX, boardY int) {
	for y := range grid.Size + 1 {
		for x := range grid.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetCell(px, py, canvas.Cell{Rune: junction(x, y), Color: canvas.ColorGray})

			if x < grid.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, canvas.Cell{Rune: '─', Color: canvas.ColorGray})
				}
			}
			if y < grid.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, canvas.Cell{Rune: '│', Color: canvas.ColorGray})
				}
			}
		}
	}

	for row := range grid.Size {
		for col := range grid.Size {
			p := grid.Point{Row: row, Col: col}
			val := f.state.Grid.Get(p)
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			if val == 0 {
				dst.SetCell(cellX+(cellWidth-1)/2, cellY, canvas.Cell{Rune: '·', Color: canvas.ColorGray})
				continue
			}

			label := strconv.Itoa(val)
			pad := max((cellWidth-1-utf8.RuneCountInString(label))/2, 0)
			dst.DrawTextColor(cellX+pad, cellY, label, TileColor(val))

			switch f.highlights.Kind(p) {
			case HighlightMerged:
				dst.SetCell(cellX, cellY, canvas.Cell{Rune: '*', Color: canvas.ColorBrightYellow})
			case HighlightSpawned:
				dst.SetCell(cellX, cellY, canvas.Cell{Rune: '+', Color: canvas.ColorBrightGreen})
			}
		}
	}
}

func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == grid.Size:
		return '┐'
	case y == grid.Size && x == 0:
		return '└'
	case y == grid.Size && x == grid.Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == grid.Size:
		return '┴'
	case x == 0:
		return '├'
	case x == grid.Size:
		return '┤'
	default:
		return '┼'
	}
}

// drawOverlay draws a centered boxed message.
func drawOverlay(dst *canvas.Screen, centerX, centerY int, c canvas.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := canvas.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.FillRect(box, ' ')
	dst.DrawBox(box, c)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		lc := canvas.ColorDefault
		if i == 0 {
			lc = c
		}
		dst.DrawTextColor(x, box.Y+1+i, line, lc)
	}
}
