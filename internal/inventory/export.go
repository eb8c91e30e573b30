package inventory

import (
	"fmt"
	"strings"
)

type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
	ExportCopy  ExportFormat = "copy"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case ExportPDF, ExportExcel, ExportCopy:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidExportFormat, s)
}

// Target is the destination name shown to the user.
func (f ExportFormat) Target() string {
	switch f {
	case ExportPDF:
		return "PDF"
	case ExportExcel:
		return "Excel"
	default:
		return "clipboard"
	}
}
