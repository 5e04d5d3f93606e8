package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/account/model"
)

// StudentCSVRow is one parsed data row. RowNo counts data rows starting at 2
// (the header line is row 1), matching what a spreadsheet shows the user.
type StudentCSVRow struct {
	RowNo         int
	StudentNo     string
	CCAEmail      string
	LastName      string
	FirstName     string
	SecondName    string
	MiddleInitial string
	SchoolYear    string
	Program       string
	Section       string
}

// ImportError ties a validation or conflict message to the row it came from.
type ImportError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary is flashed to the session after an upload so the next page
// load can show the result.
type ImportSummary struct {
	Created    int           `json:"created"`
	Updated    int           `json:"updated"`
	Skipped    int           `json:"skipped"`
	Errors     []ImportError `json:"errors"`
	ErrorCount int           `json:"error_count"`
}

// maxReportedErrors caps the error list in the summary; the total count is
// still reported.
const maxReportedErrors = 50

var requiredCSVHeaders = []string{"student_no", "last_name", "first_name", "program", "section"}

// StudentCSVTemplate is served as the downloadable roster template.
func StudentCSVTemplate() []byte {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{
		"student_no", "last_name", "first_name", "second_name",
		"middle_initial", "program", "section", "school_year", "cca_email",
	})
	_ = w.Write([]string{
		"2021-00001", "Dela Cruz", "Juan", "", "P",
		"BSIT", "4A", "2024 - 2025", "jdelacruz@cca.edu.ph",
	})
	w.Flush()
	return []byte(b.String())
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// ParseStudentCSV reads and validates an uploaded roster. Header matching is
// case-insensitive and the email column accepts cca_email or email. Fully
// blank rows are skipped silently; rows missing a required value become
// ImportErrors rather than aborting the whole file.
func ParseStudentCSV(r io.Reader) ([]StudentCSVRow, []ImportError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[normalizeHeader(h)] = i
	}

	var missing []string
	for _, h := range requiredCSVHeaders {
		if _, ok := col[h]; !ok {
			missing = append(missing, h)
		}
	}
	emailCol, hasEmail := col["cca_email"]
	if !hasEmail {
		emailCol, hasEmail = col["email"]
	}
	if !hasEmail {
		missing = append(missing, "cca_email")
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	emailField := func(record []string) string {
		if emailCol >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[emailCol])
	}

	var rows []StudentCSVRow
	var errs []ImportError
	rowNo := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNo++
		if err != nil {
			errs = append(errs, ImportError{Row: rowNo, Message: "malformed row"})
			continue
		}

		blank := true
		for _, v := range record {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		row := StudentCSVRow{
			RowNo:         rowNo,
			StudentNo:     field(record, "student_no"),
			CCAEmail:      NormalizeEmail(emailField(record)),
			LastName:      field(record, "last_name"),
			FirstName:     field(record, "first_name"),
			SecondName:    field(record, "second_name"),
			MiddleInitial: field(record, "middle_initial"),
			SchoolYear:    field(record, "school_year"),
			Program:       field(record, "program"),
			Section:       field(record, "section"),
		}

		var missingVals []string
		if row.StudentNo == "" {
			missingVals = append(missingVals, "student_no")
		}
		if row.CCAEmail == "" {
			missingVals = append(missingVals, "cca_email")
		}
		if row.LastName == "" {
			missingVals = append(missingVals, "last_name")
		}
		if row.FirstName == "" {
			missingVals = append(missingVals, "first_name")
		}
		if row.Program == "" {
			missingVals = append(missingVals, "program")
		}
		if row.Section == "" {
			missingVals = append(missingVals, "section")
		}
		if len(missingVals) > 0 {
			errs = append(errs, ImportError{
				Row:     rowNo,
				Message: "missing " + strings.Join(missingVals, ", "),
			})
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs, nil
}

func optionalPart(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ImportStudents applies parsed rows: match by student_no first, then email,
// update the identity fields in place; otherwise create a pending account
// (blank password, inactive). Conflicts with other rows' unique keys are
// recorded per row, never aborting the batch.
func ImportStudents(db *gorm.DB, rows []StudentCSVRow, parseErrors []ImportError) ImportSummary {
	summary := ImportSummary{Errors: []ImportError{}}
	addErr := func(row int, msg string) {
		summary.ErrorCount++
		if len(summary.Errors) < maxReportedErrors {
			summary.Errors = append(summary.Errors, ImportError{Row: row, Message: msg})
		}
	}
	for _, e := range parseErrors {
		summary.Skipped++
		addErr(e.Row, e.Message)
	}

	for _, row := range rows {
		var existing model.StudentModel
		err := db.Where("student_no = ?", row.StudentNo).First(&existing).Error
		if err != nil && err == gorm.ErrRecordNotFound {
			err = db.Where("cca_email = ?", row.CCAEmail).First(&existing).Error
		}

		switch {
		case err == nil:
			res := db.Model(&model.StudentModel{}).Where("id = ?", existing.ID).
				Updates(map[string]any{
					"student_no":     row.StudentNo,
					"cca_email":      row.CCAEmail,
					"last_name":      row.LastName,
					"first_name":     row.FirstName,
					"second_name":    optionalPart(row.SecondName),
					"middle_initial": optionalPart(row.MiddleInitial),
					"school_year":    optionalPart(row.SchoolYear),
					"program":        row.Program,
					"section":        row.Section,
				})
			if res.Error != nil {
				summary.Skipped++
				if IsUniqueViolation(res.Error) {
					addErr(row.RowNo, "student number or email already belongs to another student")
				} else {
					addErr(row.RowNo, "update failed")
				}
				continue
			}
			summary.Updated++

		case err == gorm.ErrRecordNotFound:
			student := model.StudentModel{
				StudentNo:      row.StudentNo,
				CCAEmail:       row.CCAEmail,
				LastName:       row.LastName,
				FirstName:      row.FirstName,
				SecondName:     optionalPart(row.SecondName),
				MiddleInitial:  optionalPart(row.MiddleInitial),
				SchoolYear:     optionalPart(row.SchoolYear),
				Program:        row.Program,
				Section:        row.Section,
				ActiveStatus:   false,
				IsPasswordTemp: true,
			}
			if err := db.Create(&student).Error; err != nil {
				summary.Skipped++
				if IsUniqueViolation(err) {
					addErr(row.RowNo, "duplicate student number or email")
				} else {
					addErr(row.RowNo, "create failed")
				}
				continue
			}
			summary.Created++

		default:
			summary.Skipped++
			addErr(row.RowNo, "lookup failed")
		}
	}
	return summary
}
