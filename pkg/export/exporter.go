// Package export renders a roadmap's schedule as an xlsx workbook.
package export

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"studymap/entities"
	"studymap/pkg/roadmap/repository"
)

type ExportCtrl struct{ repo repository.RoadmapRepository }

func NewExportCtrl(repo repository.RoadmapRepository) *ExportCtrl { return &ExportCtrl{repo: repo} }

func (h *ExportCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Roadmap not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load roadmap"})
	}

	f, err := BuildWorkbook(m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build workbook"})
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="roadmap-%d.xlsx"`, m.RoadmapID))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

// BuildWorkbook writes one row per task: day offset, due date, title,
// description and completion state.
func BuildWorkbook(m *entities.Roadmap) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := []any{"Day", "Due date", "Task", "Description", "Done"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	// day offsets are anchored on the earliest due date, not CreatedAt:
	// the row timestamp can land past midnight after the dates were computed
	base := earliestDueDate(m.Tasks)
	for i, t := range m.Tasks {
		day := int(t.DueDate.Sub(base).Hours()/24) + 1
		done := ""
		if t.Completed {
			done = "yes"
		}
		row := []any{day, t.DueDate.Format("2006-01-02"), t.Title, t.Description, done}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func earliestDueDate(tasks []entities.Task) time.Time {
	var base time.Time
	for _, t := range tasks {
		if base.IsZero() || t.DueDate.Before(base) {
			base = t.DueDate
		}
	}
	return base
}
