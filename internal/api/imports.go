package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Luisfch1/CONTROL/internal/parser"
	"github.com/Luisfch1/CONTROL/internal/sheet"
)

// openUploadedWorkbook decodes the multipart "file" field into a workbook,
// writing the error response on failure.
func openUploadedWorkbook(c *gin.Context) (*sheet.Workbook, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se encontró el archivo"})
		return nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se pudo leer el archivo"})
		return nil, false
	}
	defer f.Close()

	wb, err := sheet.OpenWorkbook(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el archivo no es un libro de cálculo válido"})
		return nil, false
	}
	return wb, true
}

// sheetRows decodes the requested sheet (form field "sheet", defaulting to
// the first sheet), writing the error response on failure.
func sheetRows(c *gin.Context, wb *sheet.Workbook) ([]sheet.Row, bool) {
	name := c.PostForm("sheet")
	if name == "" {
		sheets := wb.Sheets()
		if len(sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "el libro no tiene hojas"})
			return nil, false
		}
		name = sheets[0].Name
	}

	rows, err := wb.Rows(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se pudo leer la hoja seleccionada"})
		return nil, false
	}
	return rows, true
}

// ListWorkbookSheets lists the sheets of an uploaded workbook so the caller
// can pick one before importing.
// POST /api/workbook/sheets
func (h *Handler) ListWorkbookSheets(c *gin.Context) {
	wb, ok := openUploadedWorkbook(c)
	if !ok {
		return
	}
	defer wb.Close()
	c.JSON(http.StatusOK, gin.H{"sheets": wb.Sheets()})
}

// ImportBudget replaces the project's budget items from an uploaded
// spreadsheet. The item list is replaced wholesale as one unit; revisions
// are preserved across re-imports. Parse warnings are returned, never
// treated as failures.
// POST /api/projects/:id/budget/import
func (h *Handler) ImportBudget(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	settings, ok := h.loadSettings(c)
	if !ok {
		return
	}
	wb, ok := openUploadedWorkbook(c)
	if !ok {
		return
	}
	defer wb.Close()

	rows, ok := sheetRows(c, wb)
	if !ok {
		return
	}

	items, warnings := parser.NewBudgetParser(settings).Parse(rows)
	p.Budget.Items = items
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"imported": len(items),
		"warnings": warnings,
	})
}

// ImportPlanned replaces the project's planned-cost curve from an uploaded
// spreadsheet (long or wide shape).
// POST /api/projects/:id/planned/import
func (h *Handler) ImportPlanned(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	wb, ok := openUploadedWorkbook(c)
	if !ok {
		return
	}
	defer wb.Close()

	rows, ok := sheetRows(c, wb)
	if !ok {
		return
	}

	curve, warnings := parser.ParsePlannedCurve(rows)
	p.Planned.Curve = curve
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points":   len(curve),
		"warnings": warnings,
	})
}
