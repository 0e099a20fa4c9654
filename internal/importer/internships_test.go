package importer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadInternships(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Title", "Sector", "City", "State", "Stipend", "Skills"},
		[]interface{}{"Data Intern", "IT", "Pune", "Maharashtra", "15,000", "Python, SQL"},
		[]interface{}{"", "", "", "", "", ""},
		[]interface{}{"Field Intern", "Agriculture", "Nashik", "Maharashtra", 5000, ""},
	)

	got, err := ReadInternships(buf, "")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Data Intern", *got[0].Title)
	assert.Nil(t, got[0].Company)
	assert.Equal(t, "Pune", *got[0].City)
	assert.Equal(t, "Maharashtra", *got[0].State)
	assert.Equal(t, 15000, got[0].Stipend)
	assert.Equal(t, "Python, SQL", *got[0].SkillsRequired)

	assert.Equal(t, 5000, got[1].Stipend)
	assert.Nil(t, got[1].SkillsRequired, "blank skills must stay NULL")
}

func TestReadInternshipsRejectsBadStipend(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"sector", "stipend"},
		[]interface{}{"IT", "lots"},
	)

	_, err := ReadInternships(buf, "")
	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
}

func TestReadInternshipsRequiresStipendColumn(t *testing.T) {
	buf := workbook(t, []interface{}{"sector", "city"})
	_, err := ReadInternships(buf, "")
	assert.Error(t, err)
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	got, err := ReadInternships(&buf, "Internships")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseStipend(t *testing.T) {
	s := func(v string) *string { return &v }

	n, err := parseStipend(s("₹ 8,500"))
	require.NoError(t, err)
	assert.Equal(t, 8500, n)

	n, err = parseStipend(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = parseStipend(s("-5"))
	assert.Error(t, err)
}
