package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudentCSV(t *testing.T) {
	csv := strings.Join([]string{
		"Student_No,Last_Name,First_Name,Second_Name,Middle_Initial,Program,Section,School_Year,CCA_Email",
		"2021-00001,Dela Cruz,Juan,,P,BSIT,4A,2024 - 2025,JDELACRUZ@cca.edu.ph",
		",,,,,,,,",
		"2021-00002,Reyes,Ana,,,BSIT,4A,,areyes@cca.edu.ph",
		"2021-00003,,Pedro,,,BSIT,4A,,psantos@cca.edu.ph",
	}, "\n")

	rows, errs, err := ParseStudentCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].RowNo)
	assert.Equal(t, "2021-00001", rows[0].StudentNo)
	assert.Equal(t, "jdelacruz@cca.edu.ph", rows[0].CCAEmail)
	assert.Equal(t, "2024 - 2025", rows[0].SchoolYear)

	// blank row 3 skipped silently, so the next data row keeps its sheet number
	assert.Equal(t, 4, rows[1].RowNo)

	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Row)
	assert.Contains(t, errs[0].Message, "last_name")
}

func TestParseStudentCSVWithBOMAndEmailAlias(t *testing.T) {
	csv := "\ufeffstudent_no,last_name,first_name,program,section,email\n" +
		"2021-00001,Dela Cruz,Juan,BSIT,4A,jdelacruz@cca.edu.ph\n"

	rows, errs, err := ParseStudentCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 1)
	assert.Equal(t, "jdelacruz@cca.edu.ph", rows[0].CCAEmail)
}

func TestParseStudentCSVMissingColumns(t *testing.T) {
	_, _, err := ParseStudentCSV(strings.NewReader("last_name,first_name\nReyes,Ana\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student_no")
	assert.Contains(t, err.Error(), "cca_email")
}

func TestStudentCSVTemplate(t *testing.T) {
	tmpl := string(StudentCSVTemplate())
	lines := strings.Split(strings.TrimSpace(tmpl), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"student_no,last_name,first_name,second_name,middle_initial,program,section,school_year,cca_email",
		lines[0])

	// the template itself must pass the parser
	rows, errs, err := ParseStudentCSV(strings.NewReader(tmpl))
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Len(t, rows, 1)
}
