package model

// Navigator steps through generated combinations. Navigation clamps at both ends and never panics on
// out-of-range indices.
type Navigator struct {
	combinations []Combination
	disciplines  map[int64]Discipline // Display details for previews
	current      int
	showPreview  bool
}

// NewNavigator starts at the first combination. states are the planning states the combinations were generated from
func NewNavigator(combinations []Combination, states []DisciplineState) *Navigator {
	disciplines := make(map[int64]Discipline, len(states))
	for _, state := range states {
		disciplines[state.Discipline.Id] = state.Discipline
	}
	return &Navigator{combinations: combinations, disciplines: disciplines}
}

func (navigator *Navigator) Len() int {
	return len(navigator.combinations)
}

func (navigator *Navigator) Index() int {
	return navigator.current
}

func (navigator *Navigator) Combinations() []Combination {
	return navigator.combinations
}

func (navigator *Navigator) Current() (Combination, bool) {
	if len(navigator.combinations) == 0 {
		return Combination{}, false
	}
	return navigator.combinations[navigator.current], true
}

// Next moves to the following combination and turns the preview on. Returns false on the last one
func (navigator *Navigator) Next() bool {
	if navigator.current >= len(navigator.combinations)-1 {
		return false
	}
	navigator.current++
	navigator.showPreview = true
	return true
}

// Previous moves to the preceding combination and turns the preview on. Returns false on the first one
func (navigator *Navigator) Previous() bool {
	if navigator.current <= 0 {
		return false
	}
	navigator.current--
	navigator.showPreview = true
	return true
}

// Select makes the combination at index current, clamping index into range
func (navigator *Navigator) Select(index int) {
	navigator.current = navigator.clamp(index)
}

// Apply makes the combination at index (clamped) current, turns the preview off and returns it
// so the caller can copy its sections into the planning list
func (navigator *Navigator) Apply(index int) (Combination, bool) {
	if len(navigator.combinations) == 0 {
		return Combination{}, false
	}
	navigator.current = navigator.clamp(index)
	navigator.showPreview = false
	return navigator.combinations[navigator.current], true
}

func (navigator *Navigator) ShowPreview() bool {
	return navigator.showPreview
}

func (navigator *Navigator) SetShowPreview(show bool) {
	navigator.showPreview = show
}

// Preview projects the current combination into grid slots without touching any planning state.
// Colors follow the position of the section inside the combination
func (navigator *Navigator) Preview(palette []string) []GridSlot {
	combination, ok := navigator.Current()
	if !ok {
		return []GridSlot{}
	}

	slots := make([]GridSlot, 0)
	for position, section := range combination.Sections {
		discipline, ok := navigator.disciplines[section.Discipline]
		if !ok {
			discipline = Discipline{Id: section.Discipline}
		}
		slots = append(slots, gridSlots(discipline, section, paletteColor(palette, position))...)
	}
	return slots
}

func (navigator *Navigator) CurrentCredits() Credits {
	combination, _ := navigator.Current()
	return combination.Credits
}

func (navigator *Navigator) clamp(index int) int {
	if index < 0 || len(navigator.combinations) == 0 {
		return 0
	}
	if index >= len(navigator.combinations) {
		return len(navigator.combinations) - 1
	}
	return index
}
