package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/limaJavier/gradeplanner/pkg/model"
)

const (
	CombinationsSheet = "Combinações"
	rowStep           = 30 // Minutes covered by each grid row
	maxSheetName      = 31
)

var (
	defaultGridStart = model.NewClock(8, 0)
	defaultGridEnd   = model.NewClock(18, 0)
)

// Workbook renders planner results into an XLSX file: a week grid and the list of combinations
type Workbook struct {
	file   *excelize.File
	grid   string
	styles map[string]int // Fill color -> style id
}

func NewWorkbook(gridSheet string) *Workbook {
	if gridSheet == "" {
		gridSheet = "Grade"
	}
	// Truncate sheet name to 31 chars (Excel limit)
	if runes := []rune(gridSheet); len(runes) > maxSheetName {
		gridSheet = string(runes[:maxSheetName])
	}

	file := excelize.NewFile()
	file.SetSheetName("Sheet1", gridSheet)
	return &Workbook{file: file, grid: gridSheet, styles: make(map[string]int)}
}

// WriteGrid lays the slots on a week grid: one column per weekday, one row per half hour. Cells shared by
// more than one slot list every occupant
func (w *Workbook) WriteGrid(slots []model.GridSlot) error {
	start, end := gridBounds(slots)

	//** Header
	header := append([]any{"Horário"}, lo.Map(model.Weekdays, func(day model.Weekday, _ int) any { return day.Label() })...)
	if err := w.writeRow(w.grid, 1, header); err != nil {
		return err
	}
	if err := w.boldRow(w.grid, 1, len(header)); err != nil {
		return err
	}

	//** Time column
	for clock, row := start, 2; clock < end; clock, row = clock+rowStep, row+1 {
		label := fmt.Sprintf("%v-%v", clock, clock+rowStep)
		if err := w.setCell(w.grid, 1, row, label); err != nil {
			return err
		}
	}

	//** Slots
	for _, slot := range slots {
		column := int(slot.Day) + 2
		text := slotText(slot)
		for clock := start; clock < end; clock += rowStep {
			if clock+rowStep <= slot.Start || clock >= slot.End {
				continue
			}
			row := int((clock-start)/rowStep) + 2
			if err := w.fillCell(w.grid, column, row, text, slot.Color); err != nil {
				return err
			}
		}
	}

	return w.file.SetColWidth(w.grid, "A", "G", 18)
}

// WriteCombinations lists every combination with its sections in planning order
func (w *Workbook) WriteCombinations(combinations []model.Combination, states []model.DisciplineState) error {
	if _, err := w.file.NewSheet(CombinationsSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", CombinationsSheet, err)
	}

	visible := lo.Filter(states, func(state model.DisciplineState, _ int) bool { return state.Visible })
	header := []any{"Id"}
	for _, state := range visible {
		header = append(header, state.Discipline.Code)
	}
	header = append(header, "Créditos aula", "Créditos trabalho")
	if err := w.writeRow(CombinationsSheet, 1, header); err != nil {
		return err
	}
	if err := w.boldRow(CombinationsSheet, 1, len(header)); err != nil {
		return err
	}

	for i, combination := range combinations {
		row := []any{combination.Id}
		for _, section := range combination.Sections {
			row = append(row, section.Code)
		}
		row = append(row, combination.Credits.Class, combination.Credits.Work)
		if err := w.writeRow(CombinationsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// Write writes the XLSX file to the writer.
func (w *Workbook) Write(wr io.Writer) error {
	return w.file.Write(wr)
}

func (w *Workbook) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// Close releases resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) writeRow(sheet string, row int, values []any) error {
	for i, value := range values {
		if err := w.setCell(sheet, i+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) setCell(sheet string, column, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return err
	}
	return w.file.SetCellValue(sheet, cell, value)
}

func (w *Workbook) boldRow(sheet string, row, columns int) error {
	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	startCell, _ := excelize.CoordinatesToCellName(1, row)
	endCell, _ := excelize.CoordinatesToCellName(columns, row)
	return w.file.SetCellStyle(sheet, startCell, endCell, style)
}

func (w *Workbook) fillCell(sheet string, column, row int, text, color string) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return err
	}

	current, err := w.file.GetCellValue(sheet, cell)
	if err != nil {
		return err
	}
	if current != "" && !strings.Contains(current, text) {
		text = current + " / " + text
	}
	if err := w.file.SetCellValue(sheet, cell, text); err != nil {
		return err
	}

	style, err := w.fillStyle(color)
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(sheet, cell, cell, style)
}

func (w *Workbook) fillStyle(color string) (int, error) {
	if style, ok := w.styles[color]; ok {
		return style, nil
	}
	style, err := w.file.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("style for color %s: %w", color, err)
	}
	w.styles[color] = style
	return style, nil
}

func slotText(slot model.GridSlot) string {
	if slot.SectionCode == "" {
		return slot.DisciplineCode
	}
	return slot.DisciplineCode + " " + slot.SectionCode
}

// gridBounds returns the half-hour aligned interval covering every slot
func gridBounds(slots []model.GridSlot) (model.Clock, model.Clock) {
	if len(slots) == 0 {
		return defaultGridStart, defaultGridEnd
	}
	start := lo.MinBy(slots, func(a, b model.GridSlot) bool { return a.Start < b.Start }).Start
	end := lo.MaxBy(slots, func(a, b model.GridSlot) bool { return a.End > b.End }).End
	start -= start % rowStep
	if end%rowStep != 0 {
		end += rowStep - end%rowStep
	}
	return start, end
}
