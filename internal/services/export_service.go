package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/alimgiray/projectboard/internal/models"
	"github.com/xuri/excelize/v2"
)

const requestsSheet = "Requests"

var requestColumns = []interface{}{"Project", "Name", "Email", "Phone", "Skills", "Message", "Received"}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteRequestsWorkbook writes the requests as an xlsx workbook with one row per request
func (s *ExportService) WriteRequestsWorkbook(w io.Writer, requests []*models.CollaborationRequest) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", requestsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := requestColumns
	if err := f.SetSheetRow(requestsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, request := range requests {
		phone := ""
		if request.Phone != nil {
			phone = *request.Phone
		}

		row := []interface{}{
			request.ProjectTitle,
			request.FullName,
			request.Email,
			phone,
			strings.Join(request.Skills, ", "),
			request.Message,
			request.CreatedAt.Format("2006-01-02 15:04"),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(requestsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(requestsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	return f.Write(w)
}
