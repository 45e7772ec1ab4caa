package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSVAllFields(t *testing.T) {
	parser := NewLeadParserService()

	csv := "name,role,company,industry,location,linkedin_bio\n" +
		"Ava Chen,CTO,Acme,SaaS,Berlin,Builds data platforms\n" +
		"Liam Patel,VP Eng,Initech,FinTech,London,Scaling payments infra\n"

	records, err := parser.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, LeadRecord{
		Name:        "Ava Chen",
		Role:        "CTO",
		Company:     "Acme",
		Industry:    "SaaS",
		Location:    "Berlin",
		LinkedinBio: "Builds data platforms",
	}, records[0])
	assert.Equal(t, "Liam Patel", records[1].Name)
}

func TestParseCSVMissingColumnsYieldEmptyStrings(t *testing.T) {
	parser := NewLeadParserService()

	csv := "name,company\nAva Chen,Acme\n"

	records, err := parser.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Every record carries all six fields; unsupplied ones are empty, never absent.
	assert.Equal(t, "Ava Chen", records[0].Name)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "", records[0].Role)
	assert.Equal(t, "", records[0].Industry)
	assert.Equal(t, "", records[0].Location)
	assert.Equal(t, "", records[0].LinkedinBio)
}

func TestParseCSVTrimsWhitespaceAndIgnoresExtraColumns(t *testing.T) {
	parser := NewLeadParserService()

	csv := "name, role ,twitter_handle\n  Ava Chen , CTO ,@ava\n"

	records, err := parser.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Ava Chen", records[0].Name)
	assert.Equal(t, "CTO", records[0].Role)
	assert.Equal(t, "", records[0].Company)
}

func TestParseCSVShortRow(t *testing.T) {
	parser := NewLeadParserService()

	csv := "name,role,company\nAva Chen\n"

	records, err := parser.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ava Chen", records[0].Name)
	assert.Equal(t, "", records[0].Role)
}

func TestParseCSVMalformed(t *testing.T) {
	parser := NewLeadParserService()

	csv := "name,role\n\"unterminated quote\n"

	_, err := parser.ParseCSV(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMalformedUpload)
}

func TestParseCSVEmptyInput(t *testing.T) {
	parser := NewLeadParserService()

	records, err := parser.ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"name", "role", "company", "industry", "location", "linkedin_bio"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{" Ava Chen ", "CTO", "Acme", "SaaS", "Berlin", "Builds data platforms"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Liam Patel"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	parser := NewLeadParserService()
	records, err := parser.ParseXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Ava Chen", records[0].Name)
	assert.Equal(t, "CTO", records[0].Role)
	assert.Equal(t, "Liam Patel", records[1].Name)
	assert.Equal(t, "", records[1].Role)
}

func TestParseXLSXMalformed(t *testing.T) {
	parser := NewLeadParserService()

	_, err := parser.ParseXLSX(bytes.NewReader([]byte("this is not a workbook")))
	assert.ErrorIs(t, err, ErrMalformedUpload)
}
