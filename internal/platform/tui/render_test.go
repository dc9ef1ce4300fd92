package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tsc-editor/internal/core"
	"github.com/vovakirdan/tsc-editor/internal/scene"
)

func TestDrawScene(t *testing.T) {
	sc := scene.New()
	obj := scene.NewSprite("ground/a.png", 16, 32)
	obj.SetPos(16, 32)
	other := scene.NewSprite("ground/b.png", 8, 16)
	other.SetPos(-400, 0)
	sc.Add(obj, other)

	s := core.NewScreen(20, 10)
	DrawScene(s, sceneView{
		Scene:    sc,
		PointerX: 0,
		PointerY: 0,
		Selected: func(o *scene.Sprite) bool { return o == obj },
		Cursor:   true,
	})

	assert.Equal(t, '┌', s.GetCell(2, 2).Ch)
	assert.Equal(t, '┘', s.GetCell(3, 3).Ch)
	assert.Equal(t, core.ColorYellow, s.GetCell(2, 2).FG)
	assert.Equal(t, '+', s.GetCell(0, 0).Ch)

	DrawScene(s, sceneView{Scene: sc, CamX: 8, Hovered: obj})
	assert.Equal(t, '┌', s.GetCell(1, 2).Ch, "the camera shifts the view")
	assert.Equal(t, core.ColorWhite, s.GetCell(1, 2).FG)
	assert.Equal(t, ' ', s.GetCell(0, 0).Ch)
}

func TestToCells(t *testing.T) {
	assert.Equal(t, core.NewRect(-1, 0, 1, 1), toCells(core.NewRect(-1, 0, 1, 1), 0, 0))
	assert.Equal(t, core.NewRect(1, 1, 3, 2), toCells(core.NewRect(8, 16, 17, 17), 0, 0))
	assert.Equal(t, -2, floorDiv(-9, 8))
	assert.Equal(t, 1, floorDiv(9, 8))
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorWhite)
	s.DrawTextColored(0, 1, "de", core.ColorRed)

	out := RenderScreen(s)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "de")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "", truncate("abcd", 0))
}
