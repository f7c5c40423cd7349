package model

type SlotKind string

const (
	ClassSlot  SlotKind = "class"
	CustomSlot SlotKind = "custom"
)

// GridSlot is the renderer-agnostic shape consumed by the week grid
type GridSlot struct {
	Kind           SlotKind `json:"type"`
	DisciplineId   int64    `json:"discipline_id"`
	SectionId      int64    `json:"section_id"`
	Day            Weekday  `json:"-"`
	DayCode        string   `json:"dia"`
	Start          Clock    `json:"-"`
	End            Clock    `json:"-"`
	StartText      string   `json:"horario_inicio"`
	EndText        string   `json:"horario_fim"`
	Color          string   `json:"color"`
	DisciplineCode string   `json:"disciplina_codigo"`
	DisciplineName string   `json:"disciplina_nome"`
	SectionCode    string   `json:"turma_codigo,omitempty"`
	Professor      string   `json:"professor,omitempty"`
}

// DefaultPalette holds the schedule colors of the grade page
var DefaultPalette = []string{
	"#14b8a6", // teal-500
	"#f97316", // orange-500
	"#8b5cf6", // violet-500
	"#ec4899", // pink-500
	"#22c55e", // green-500
	"#3b82f6", // blue-500
	"#eab308", // yellow-500
	"#ef4444", // red-500
	"#06b6d4", // cyan-500
	"#a855f7", // purple-500
}

func paletteColor(palette []string, position int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[position%len(palette)]
}

func gridSlots(discipline Discipline, section ClassSection, color string) []GridSlot {
	kind := ClassSlot
	sectionCode := section.Code
	if discipline.Custom {
		kind = CustomSlot
		sectionCode = ""
	}
	professor := ""
	if len(section.Professors) > 0 {
		professor = section.Professors[0]
	}

	slots := make([]GridSlot, 0, len(section.Slots))
	for _, slot := range section.Slots {
		slots = append(slots, GridSlot{
			Kind:           kind,
			DisciplineId:   discipline.Id,
			SectionId:      section.Id,
			Day:            slot.Day,
			DayCode:        slot.Day.Code(),
			Start:          slot.Start,
			End:            slot.End,
			StartText:      slot.Start.String(),
			EndText:        slot.End.String(),
			Color:          color,
			DisciplineCode: discipline.Code,
			DisciplineName: discipline.Name,
			SectionCode:    sectionCode,
			Professor:      professor,
		})
	}
	return slots
}
