package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCodeString(t *testing.T) {
	assert.Equal(t, "GRAVE", KeyGrave.String())
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "UP", KeyUpArrow.String())
	assert.Equal(t, "KEY200", KeyCode(200).String())
}

func TestModifiersHas(t *testing.T) {
	mods := ModControl | ModOption

	assert.True(t, mods.Has(ModControl))
	assert.True(t, mods.Has(ModControl|ModOption))
	assert.False(t, mods.Has(ModControl|ModShift))
	assert.False(t, mods.Has(ModFn))
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "none", Modifiers(0).String())
	assert.Equal(t, "fn", ModFn.String())
	assert.Equal(t, "ctrl+alt", (ModOption | ModControl).String())
}

func TestFromWindowsVK(t *testing.T) {
	testCases := []struct {
		name string
		vk   uint32
		want KeyCode
	}{
		{"letter", 0x51, KeyQ},
		{"digit", 0x30, Key0},
		{"grave", 0xC0, KeyGrave},
		{"left control", 0xA2, KeyControl},
		{"arrow", 0x26, KeyUpArrow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromWindowsVK(tc.vk)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := FromWindowsVK(0x7B) // F12
	assert.False(t, ok)
}

func TestModifierFor(t *testing.T) {
	assert.Equal(t, ModOption, ModifierFor(KeyRightOption))
	assert.Equal(t, ModControl, ModifierFor(KeyControl))
	assert.Equal(t, ModFn, ModifierFor(KeyFunction))
	assert.Equal(t, Modifiers(0), ModifierFor(KeyA))
}
