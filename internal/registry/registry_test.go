package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tsc-editor/internal/scene"
)

func TestRegisterCreate(t *testing.T) {
	Register(TypeInfo{Name: "test_dummy", Title: "Dummy"}, func(attrs map[string]string) []*scene.Sprite {
		s := scene.NewSprite(attrs["image"], 1, 1)
		return []*scene.Sprite{s}
	})

	require.True(t, Exists("test_dummy"))

	objs, err := Create("test_dummy", map[string]string{"image": "x.png"})
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "x.png", objs[0].Image)

	found := false
	for _, info := range List() {
		if info.Name == "test_dummy" {
			found = true
			assert.Equal(t, "Dummy", info.Title)
		}
	}
	assert.True(t, found, "List() should include registered type")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist", nil)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.False(t, Exists("does_not_exist"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(map[string]string) []*scene.Sprite { return nil }
	Register(TypeInfo{Name: "test_dup"}, f)
	assert.Panics(t, func() { Register(TypeInfo{Name: "test_dup"}, f) })
}
