package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCombinations(t *testing.T) ([]Combination, []DisciplineState) {
	a := newDiscipline(1, 4, 0,
		newSection(1, 11, mustSlot("seg", "08:00", "10:00")),
		newSection(1, 12, mustSlot("ter", "08:00", "10:00")),
		newSection(1, 13, mustSlot("qua", "08:00", "10:00")),
	)
	b := newDiscipline(2, 2, 2, newSection(2, 21, mustSlot("qui", "14:00", "16:00"), mustSlot("sex", "14:00", "16:00")))
	b.Sections[0].Professors = []string{"Ana Souza", "Carlos Lima"}
	states := statesOf(a, b)

	combinations := GenerateCombinations(states, 0)
	require.Len(t, combinations, 3)
	return combinations, states
}

func TestNavigatorClamps(t *testing.T) {
	combinations, states := threeCombinations(t)

	t.Run("Forward", func(t *testing.T) {
		navigator := NewNavigator(combinations, states)

		assert.True(t, navigator.Next())
		assert.True(t, navigator.Next())
		assert.False(t, navigator.Next())
		assert.Equal(t, 2, navigator.Index())
		assert.True(t, navigator.ShowPreview())
	})

	t.Run("Backward", func(t *testing.T) {
		navigator := NewNavigator(combinations, states)

		assert.False(t, navigator.Previous())
		assert.Equal(t, 0, navigator.Index())
		assert.False(t, navigator.ShowPreview())

		navigator.Select(2)
		assert.True(t, navigator.Previous())
		assert.True(t, navigator.Previous())
		assert.False(t, navigator.Previous())
		assert.Equal(t, 0, navigator.Index())
	})

	t.Run("Select", func(t *testing.T) {
		navigator := NewNavigator(combinations, states)

		navigator.Select(-5)
		assert.Equal(t, 0, navigator.Index())
		navigator.Select(99)
		assert.Equal(t, 2, navigator.Index())
		navigator.Select(1)
		assert.Equal(t, 1, navigator.Index())
	})

	t.Run("Apply", func(t *testing.T) {
		navigator := NewNavigator(combinations, states)
		navigator.Next()

		combination, ok := navigator.Apply(10)

		assert.True(t, ok)
		assert.Equal(t, combinations[2], combination)
		assert.Equal(t, 2, navigator.Index())
		assert.False(t, navigator.ShowPreview())

		combination, ok = navigator.Apply(-1)
		assert.True(t, ok)
		assert.Equal(t, combinations[0], combination)
	})
}

func TestNavigatorEmpty(t *testing.T) {
	navigator := NewNavigator([]Combination{}, nil)

	assert.Equal(t, 0, navigator.Len())
	assert.False(t, navigator.Next())
	assert.False(t, navigator.Previous())
	navigator.Select(3)
	assert.Equal(t, 0, navigator.Index())

	_, ok := navigator.Current()
	assert.False(t, ok)
	_, ok = navigator.Apply(0)
	assert.False(t, ok)
	assert.Empty(t, navigator.Preview(nil))
	assert.Equal(t, Credits{}, navigator.CurrentCredits())
}

func TestNavigatorPreview(t *testing.T) {
	//** Arrange
	combinations, states := threeCombinations(t)
	navigator := NewNavigator(combinations, states)
	navigator.Next()

	//** Act
	slots := navigator.Preview([]string{"red", "blue"})

	//** Assert
	require.Len(t, slots, 3)
	assert.Equal(t, GridSlot{
		Kind:           ClassSlot,
		DisciplineId:   1,
		SectionId:      12,
		Day:            Tuesday,
		DayCode:        "ter",
		Start:          NewClock(8, 0),
		End:            NewClock(10, 0),
		StartText:      "08:00",
		EndText:        "10:00",
		Color:          "red",
		DisciplineCode: "MAC0001",
		DisciplineName: "Discipline 1",
		SectionCode:    "T12",
	}, slots[0])
	for _, slot := range slots[1:] {
		assert.Equal(t, "blue", slot.Color)
		assert.Equal(t, "Ana Souza", slot.Professor)
	}
	assert.Equal(t, Credits{Class: 6, Work: 2}, navigator.CurrentCredits())

	// Preview never touches the planning states
	assert.Equal(t, int64(11), states[0].Selection)
}

func TestNavigatorPreviewDefaultPalette(t *testing.T) {
	combinations, states := threeCombinations(t)
	navigator := NewNavigator(combinations, states)

	slots := navigator.Preview(nil)

	assert.Equal(t, DefaultPalette[0], slots[0].Color)
	assert.Equal(t, DefaultPalette[1], slots[1].Color)
}
