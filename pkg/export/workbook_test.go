package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/limaJavier/gradeplanner/pkg/model"
)

func planningList() *model.PlanningList {
	list := model.NewPlanningList()
	list.Add(model.Discipline{Id: 1, Code: "MAC0110", CreditsClass: 4, Sections: []model.ClassSection{
		{Id: 11, Discipline: 1, Code: "T01", Slots: []model.TimeSlot{{Day: model.Monday, Start: model.NewClock(8, 0), End: model.NewClock(9, 40)}}},
		{Id: 12, Discipline: 1, Code: "T02", Slots: []model.TimeSlot{{Day: model.Wednesday, Start: model.NewClock(8, 0), End: model.NewClock(9, 40)}}},
	}})
	list.Add(model.Discipline{Id: 2, Code: "MAT2453", CreditsClass: 6, CreditsWork: 1, Sections: []model.ClassSection{
		{Id: 21, Discipline: 2, Code: "T10", Slots: []model.TimeSlot{{Day: model.Friday, Start: model.NewClock(10, 0), End: model.NewClock(11, 0)}}},
	}})
	list.AddCustom(model.CustomBlock{Id: 1, Name: "Estágio", Slots: []model.TimeSlot{{Day: model.Saturday, Start: model.NewClock(8, 15), End: model.NewClock(9, 0)}}})
	return list
}

func reopen(t *testing.T, workbook *Workbook) *excelize.File {
	t.Helper()
	var buffer bytes.Buffer
	require.NoError(t, workbook.Write(&buffer))

	file, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })
	return file
}

func cellValue(t *testing.T, file *excelize.File, sheet, cell string) string {
	t.Helper()
	value, err := file.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return value
}

func TestWriteGrid(t *testing.T) {
	//** Arrange
	list := planningList()
	workbook := NewWorkbook("Semestre")
	defer workbook.Close()

	//** Act
	require.NoError(t, workbook.WriteGrid(list.Slots([]string{"#14b8a6", "#f97316"})))

	//** Assert
	file := reopen(t, workbook)
	assert.Equal(t, []string{"Semestre"}, file.GetSheetList())
	assert.Equal(t, "Horário", cellValue(t, file, "Semestre", "A1"))
	assert.Equal(t, "Segunda", cellValue(t, file, "Semestre", "B1"))
	assert.Equal(t, "Sábado", cellValue(t, file, "Semestre", "G1"))

	// Grid spans 08:00 to 11:00 in half hours
	assert.Equal(t, "08:00-08:30", cellValue(t, file, "Semestre", "A2"))
	assert.Equal(t, "10:30-11:00", cellValue(t, file, "Semestre", "A7"))
	assert.Empty(t, cellValue(t, file, "Semestre", "A8"))

	// MAC0110 T01 on Monday 08:00-09:40 covers four rows
	for _, cell := range []string{"B2", "B3", "B4", "B5"} {
		assert.Equal(t, "MAC0110 T01", cellValue(t, file, "Semestre", cell))
	}
	assert.Empty(t, cellValue(t, file, "Semestre", "B6"))
	// MAT2453 on Friday 10:00-11:00
	assert.Equal(t, "MAT2453 T10", cellValue(t, file, "Semestre", "F6"))
	assert.Equal(t, "MAT2453 T10", cellValue(t, file, "Semestre", "F7"))
	// Custom block on Saturday 08:15-09:00 shows only its code
	assert.Equal(t, "CUSTOM", cellValue(t, file, "Semestre", "G2"))
	assert.Equal(t, "CUSTOM", cellValue(t, file, "Semestre", "G3"))
	assert.Empty(t, cellValue(t, file, "Semestre", "G4"))
}

func TestWriteGridSharedCells(t *testing.T) {
	workbook := NewWorkbook("")
	defer workbook.Close()
	slots := []model.GridSlot{
		{Day: model.Tuesday, Start: model.NewClock(14, 0), End: model.NewClock(15, 0), DisciplineCode: "A", SectionCode: "1", Color: "#ef4444"},
		{Day: model.Tuesday, Start: model.NewClock(14, 30), End: model.NewClock(15, 0), DisciplineCode: "B", SectionCode: "2", Color: "#3b82f6"},
	}

	require.NoError(t, workbook.WriteGrid(slots))

	file := reopen(t, workbook)
	assert.Equal(t, "A 1", cellValue(t, file, "Grade", "C2"))
	assert.Equal(t, "A 1 / B 2", cellValue(t, file, "Grade", "C3"))
}

func TestWriteGridEmpty(t *testing.T) {
	workbook := NewWorkbook("Grade")
	defer workbook.Close()

	require.NoError(t, workbook.WriteGrid(nil))

	file := reopen(t, workbook)
	assert.Equal(t, "08:00-08:30", cellValue(t, file, "Grade", "A2"))
	assert.Equal(t, "17:30-18:00", cellValue(t, file, "Grade", "A21"))
}

func TestWriteCombinations(t *testing.T) {
	//** Arrange
	states := planningList().States()
	combinations := model.GenerateCombinations(states, 0)
	require.Len(t, combinations, 2)
	workbook := NewWorkbook("Grade")
	defer workbook.Close()

	//** Act
	require.NoError(t, workbook.WriteGrid(nil))
	require.NoError(t, workbook.WriteCombinations(combinations, states))

	//** Assert
	path := filepath.Join(t.TempDir(), "grade.xlsx")
	require.NoError(t, workbook.SaveAs(path))
	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(CombinationsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Id", "MAC0110", "MAT2453", "CUSTOM", "Créditos aula", "Créditos trabalho"},
		{"1", "T01", "T10", "MANUAL", "10", "1"},
		{"2", "T02", "T10", "MANUAL", "10", "1"},
	}, rows)
}

func TestNewWorkbookTruncatesSheetName(t *testing.T) {
	workbook := NewWorkbook("Planejamento do semestre de verão 2025")
	defer workbook.Close()

	file := reopen(t, workbook)
	assert.Len(t, []rune(file.GetSheetList()[0]), 31)
}
