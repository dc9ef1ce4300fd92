package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

// Level pixels per terminal cell.
const (
	cellW = 8
	cellH = 16
)

var (
	styleMu    sync.Mutex
	styleCache = map[core.Color]lipgloss.Style{}
)

// colorStyle maps a core.Color to a foreground style. The zero colour is
// the terminal default.
func colorStyle(c core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c != (core.Color{}) {
		s = s.Foreground(lipgloss.Color(c.RGB()))
	}
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).FG

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start {
					break
				}
				run.WriteRune(cell.Ch)
				x++
			}
			sb.WriteString(colorStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// sceneView is what DrawScene needs from the editor.
type sceneView struct {
	Scene    *scene.Scene
	CamX     int
	CamY     int
	PointerX int
	PointerY int
	Hovered  *scene.Sprite
	Selected func(*scene.Sprite) bool
	Cursor   bool
}

// DrawScene draws every object as a box in its massive type colour, the
// selection in yellow and the hovered object in white. Objects are drawn
// in scene order so later ones overlap earlier ones.
func DrawScene(s *core.Screen, v sceneView) {
	s.Clear()
	if v.Scene == nil {
		return
	}

	view := core.NewRect(0, 0, s.Width(), s.Height())
	for _, obj := range v.Scene.Objects() {
		r := toCells(obj.Pos, v.CamX, v.CamY)
		if !r.Intersects(view) {
			continue
		}

		fg := obj.Massive.Color()
		switch {
		case obj == v.Hovered:
			fg = core.ColorWhite
		case v.Selected != nil && v.Selected(obj):
			fg = core.ColorYellow
		}
		s.DrawBox(r, fg)

		if r.W > 2 && r.H > 2 {
			label := string(obj.Type)
			if obj.IsBasic() {
				label = obj.Image
			}
			if len(label) > r.W-2 {
				label = label[len(label)-(r.W-2):]
			}
			s.DrawTextColored(r.X+1, r.Y+1, label, fg)
		}
	}

	if v.Cursor {
		px := (v.PointerX - v.CamX) / cellW
		py := (v.PointerY - v.CamY) / cellH
		s.SetColored(px, py, '+', core.ColorRed)
	}
}

// toCells converts a rectangle in level pixels to screen cells, keeping
// at least one cell per axis.
func toCells(r core.Rect, camX, camY int) core.Rect {
	x := floorDiv(r.X-camX, cellW)
	y := floorDiv(r.Y-camY, cellH)
	w := core.Max(1, (r.W+cellW-1)/cellW)
	h := core.Max(1, (r.H+cellH-1)/cellH)
	return core.NewRect(x, y, w, h)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
