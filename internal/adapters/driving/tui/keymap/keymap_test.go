package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_Movement(t *testing.T) {
	km := DefaultKeyMap()

	assert.ElementsMatch(t, []string{"up", "k"}, km.Up.Keys())
	assert.ElementsMatch(t, []string{"down", "j"}, km.Down.Keys())
	assert.ElementsMatch(t, []string{"left", "h"}, km.Left.Keys())
	assert.ElementsMatch(t, []string{"right", "l"}, km.Right.Keys())
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Quit, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)
	assert.Len(t, bindings[0], 4) // Up, Down, Left, Right
	assert.Len(t, bindings[1], 5) // Next, Prev, Self, Body, Transform
	assert.Len(t, bindings[2], 2) // Help, Quit
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("l", km.Right))
	assert.True(t, Matches("shift+tab", km.Prev))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Left", km.Left},
		{"Right", km.Right},
		{"Next", km.Next},
		{"Prev", km.Prev},
		{"Self", km.Self},
		{"Body", km.Body},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key)
			assert.NotEmpty(t, help.Desc)
		})
	}
}
