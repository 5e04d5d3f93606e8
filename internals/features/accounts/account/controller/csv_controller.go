package controller

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/account/service"
	helper "ojtsystem_backend/internals/helpers"
)

const importSummaryKey = "student_import_summary"

type CSVController struct {
	DB *gorm.DB
}

func NewCSVController(db *gorm.DB) *CSVController {
	return &CSVController{DB: db}
}

// DownloadStudentTemplate serves the roster template with a header row and
// one example row.
func (cc *CSVController) DownloadStudentTemplate(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students_template.csv"`)
	return c.Send(service.StudentCSVTemplate())
}

// ImportStudents takes a multipart csv_file upload, applies it row by row and
// flashes the summary to the session so the next roster page load can render
// it. The session store gob-encodes values, so the summary is stored as a
// JSON string.
func (cc *CSVController) ImportStudents(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please choose a CSV file to upload.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not read the uploaded file.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not read the uploaded file.")
	}

	rows, parseErrors, err := service.ParseStudentCSV(bytes.NewReader(data))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid CSV file: %v.", err))
	}

	summary := service.ImportStudents(cc.DB, rows, parseErrors)

	if raw, err := sonic.Marshal(summary); err == nil {
		helper.SessionSet(c, importSummaryKey, string(raw))
	} else {
		log.Printf("[ERROR] marshal import summary: %v", err)
	}

	msg := fmt.Sprintf("Import finished: %d created, %d updated, %d skipped.",
		summary.Created, summary.Updated, summary.Skipped)
	if helper.WantsJSON(c) {
		return helper.JsonOK(c, msg, summary)
	}
	return helper.RedirectWithFlash(c, "/manage-accounts", msg, "success")
}

// ImportSummary pops the last upload's summary from the session.
func (cc *CSVController) ImportSummary(c *fiber.Ctx) error {
	raw, _ := helper.SessionPop(c, importSummaryKey).(string)
	if raw == "" {
		return helper.JsonOK(c, "ok", nil)
	}
	var summary service.ImportSummary
	if err := sonic.Unmarshal([]byte(raw), &summary); err != nil {
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", summary)
}
