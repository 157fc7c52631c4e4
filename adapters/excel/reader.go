package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"misweep/internal"
	"misweep/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SeriesReader loads paired numeric columns from Excel or CSV files for
// the sweep driver. Rows where either cell fails to parse are dropped
// pairwise so the two series stay aligned.
type SeriesReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewSeriesReader creates a reader that handles both Excel and CSV files
func NewSeriesReader(filePath string) *SeriesReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &SeriesReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger,
	}
}

// ReadPair returns the two named columns as aligned float64 slices.
func (r *SeriesReader) ReadPair(columnX, columnY string) ([]float64, []float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.DataError(fmt.Sprintf("data file not found: %s", r.filePath), err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, nil, errors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) < 2 {
		return nil, nil, errors.DataError("data file must have a header row and at least one data row", nil)
	}

	idxX, idxY := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case columnX:
			idxX = i
		case columnY:
			idxY = i
		}
	}
	if idxX < 0 {
		return nil, nil, errors.InvalidInput(fmt.Sprintf("column %q not found", columnX))
	}
	if idxY < 0 {
		return nil, nil, errors.InvalidInput(fmt.Sprintf("column %q not found", columnY))
	}

	var dataX, dataY []float64
	skipped := 0
	for _, row := range rows[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			skipped++
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if errX != nil || errY != nil {
			skipped++
			continue
		}
		dataX = append(dataX, x)
		dataY = append(dataY, y)
	}

	if skipped > 0 {
		r.logger.Warn("[SeriesReader] skipped %d non-numeric rows in %s", skipped, r.filePath)
	}
	r.logger.Info("[SeriesReader] loaded %d paired samples from %s", len(dataX), r.filePath)

	return dataX, dataY, nil
}

func (r *SeriesReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DataError("failed to open Excel file", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.DataError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	return rows, nil
}

func (r *SeriesReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.DataError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DataError("failed to parse CSV file", err)
	}
	return rows, nil
}
