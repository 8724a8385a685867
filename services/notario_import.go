package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"acta_flow_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// notarioImportHeaders is the expected column order of the import sheet
var notarioImportHeaders = []string{"Nombre", "Cédula", "Exequátur", "Email", "Teléfono", "Provincia"}

const notarioSheetName = "Notarios"

// NotarioImportResult summarizes a directory import run
type NotarioImportResult struct {
	TotalProcessed int
	SuccessCount   int
	FailedCount    int
	Errors         []string
}

// GenerateNotarioImportTemplate builds the downloadable Excel template for
// bulk-loading the notary directory
func GenerateNotarioImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", notarioSheetName)

	for i, header := range notarioImportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		f.SetCellValue(notarioSheetName, cell, header)
	}

	// Example row so the expected formats are visible
	f.SetCellValue(notarioSheetName, "A2", "Dra. Carmen Luisa Peña")
	f.SetCellValue(notarioSheetName, "B2", "001-1234567-8")
	f.SetCellValue(notarioSheetName, "C2", "1234-99")
	f.SetCellValue(notarioSheetName, "D2", "cpena@example.com")
	f.SetCellValue(notarioSheetName, "E2", "(809) 555-0000")
	f.SetCellValue(notarioSheetName, "F2", "Distrito Nacional")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return buf, nil
}

// ImportNotarios reads an Excel file and upserts directory rows by cedula.
// A failing row is reported and skipped, it never aborts the rest.
func ImportNotarios(db *gorm.DB, reader io.Reader) (*NotarioImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(notarioSheetName)
	if err != nil {
		// Fall back to the first sheet when the expected one is absent
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("import file has no sheets")
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read import rows: %w", err)
		}
	}

	result := &NotarioImportResult{}

	provinciasByName, err := provinciaNameIndex(db)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) == 0 || strings.TrimSpace(cellAt(row, 0)) == "" {
			continue
		}

		result.TotalProcessed++

		name := strings.TrimSpace(cellAt(row, 0))
		cedula := strings.TrimSpace(cellAt(row, 1))
		if cedula == "" {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: cedula is required", i+1))
			continue
		}

		notario := models.Notario{
			Name:      name,
			Cedula:    cedula,
			Exequatur: strings.TrimSpace(cellAt(row, 2)),
			Email:     strings.TrimSpace(cellAt(row, 3)),
			Phone:     strings.TrimSpace(cellAt(row, 4)),
			IsActive:  true,
		}

		if provName := strings.TrimSpace(cellAt(row, 5)); provName != "" {
			if id, ok := provinciasByName[strings.ToLower(provName)]; ok {
				notario.ProvinciaID = &id
			}
		}

		var existing models.Notario
		err := db.Where("cedula = ?", cedula).First(&existing).Error
		if err == nil {
			notario.ID = existing.ID
			err = db.Model(&existing).Updates(map[string]interface{}{
				"name":         notario.Name,
				"exequatur":    notario.Exequatur,
				"email":        notario.Email,
				"phone":        notario.Phone,
				"provincia_id": notario.ProvinciaID,
				"is_active":    true,
			}).Error
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			err = db.Create(&notario).Error
		}

		if err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}

func provinciaNameIndex(db *gorm.DB) (map[string]uint, error) {
	provincias, err := GetProvincias(db)
	if err != nil {
		return nil, err
	}

	index := make(map[string]uint, len(provincias))
	for _, p := range provincias {
		index[strings.ToLower(p.Name)] = p.ID
	}
	return index, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
