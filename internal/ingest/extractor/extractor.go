// Package extractor turns uploaded statement documents into raw material
// for the parsing strategies: plain text for scanned images and PDFs,
// keyed rows for CSV and spreadsheet exports.
package extractor

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MimeCSV         = "text/csv"
	MimeLegacyExcel = "application/vnd.ms-excel"
	MimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimePDF         = "application/pdf"
)

// ErrUnsupportedFileType indicates the document's mime type has no
// extraction route.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Kind is the extraction route a mime type maps to.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindPDF
	KindCSV
	KindExcel
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindPDF:
		return "pdf"
	case KindCSV:
		return "csv"
	case KindExcel:
		return "excel"
	}
	return "unknown"
}

// Detect maps a mime type to its extraction route. Legacy
// application/vnd.ms-excel exports from Indian banks are almost always
// CSVs wearing an Excel label, so they take the CSV route; only real
// OOXML spreadsheets go through the workbook reader.
func Detect(mime string) (Kind, error) {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage, nil
	case mime == MimePDF:
		return KindPDF, nil
	case mime == MimeCSV, mime == MimeLegacyExcel:
		return KindCSV, nil
	case mime == MimeXLSX:
		return KindExcel, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFileType, mime)
}

// Tabular reports whether the route yields keyed rows instead of text.
func (k Kind) Tabular() bool {
	return k == KindCSV || k == KindExcel
}
