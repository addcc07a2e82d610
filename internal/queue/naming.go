package queue

import "strings"

const (
	coverSuffix    = "_cover"
	pdfExt         = ".pdf"
	fallbackOutput = "cover.pdf"
)

// OutputName derives the result file name: "report.pdf" -> "report_cover.pdf".
func OutputName(sourceName string) string {
	if strings.TrimSpace(sourceName) == "" {
		return fallbackOutput
	}

	stem := sourceName
	if strings.HasSuffix(strings.ToLower(stem), pdfExt) {
		stem = stem[:len(stem)-len(pdfExt)]
	}

	return stem + coverSuffix + pdfExt
}
