package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDownloadName(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"spaces", "Quarterly Report.pdf", "Quarterly-Report.pdf"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\invoice.pdf`, "invoice.pdf"},
		{"korean characters", "견적서.pdf", "-.pdf"},
		{"repeated separators", "a  -  b.txt", "a-b.txt"},
		{"leading dots", "...hidden", "hidden"},
		{"empty", "", "file"},
		{"only unsafe", "///", "file"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeDownloadName(tc.input))
		})
	}
}

func TestSanitizeDownloadNameCapsLength(t *testing.T) {
	long := strings.Repeat("a", 200) + ".pdf"
	assert.Len(t, SanitizeDownloadName(long), 120)
}
