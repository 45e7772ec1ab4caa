package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// leadFields are the canonical upload columns. Every parsed record carries
// exactly these six fields; a column missing from the upload yields "".
var leadFields = []string{"name", "role", "company", "industry", "location", "linkedin_bio"}

// LeadRecord is one normalized row of a lead upload.
type LeadRecord struct {
	Name        string
	Role        string
	Company     string
	Industry    string
	Location    string
	LinkedinBio string
}

type LeadParserService interface {
	ParseCSV(r io.Reader) ([]LeadRecord, error)
	ParseXLSX(r io.Reader) ([]LeadRecord, error)
}

type leadParserService struct{}

func NewLeadParserService() LeadParserService {
	return &leadParserService{}
}

// ParseCSV implements LeadParserService.
func (p *leadParserService) ParseCSV(r io.Reader) ([]LeadRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []LeadRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpload, err)
	}

	index := headerIndex(header)

	records := []LeadRecord{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedUpload, err)
		}
		records = append(records, recordFromRow(index, row))
	}

	return records, nil
}

// ParseXLSX implements LeadParserService. Only the first sheet is read,
// with the same column contract as CSV.
func (p *leadParserService) ParseXLSX(r io.Reader) ([]LeadRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpload, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedUpload)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpload, err)
	}
	if len(rows) == 0 {
		return []LeadRecord{}, nil
	}

	index := headerIndex(rows[0])

	records := []LeadRecord{}
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(index, row))
	}

	return records, nil
}

// headerIndex maps recognized column names to their position. Unrecognized
// extra columns are ignored.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(leadFields))
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		for _, field := range leadFields {
			if col == field {
				index[field] = i
			}
		}
	}
	return index
}

func recordFromRow(index map[string]int, row []string) LeadRecord {
	get := func(field string) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return LeadRecord{
		Name:        get("name"),
		Role:        get("role"),
		Company:     get("company"),
		Industry:    get("industry"),
		Location:    get("location"),
		LinkedinBio: get("linkedin_bio"),
	}
}
