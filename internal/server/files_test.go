package server

import (
	"net/http"
	"testing"
	"time"

	"vendorhub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile() *types.File {
	return &types.File{
		ID:         "file1",
		StorageKey: "uploads/file1/Quarterly Report.pdf",
		FileName:   "Quarterly Report.pdf",
		Purpose:    "document",
	}
}

func TestHandleFileDownload(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.files.file = testFile()
	mocks.signer.url = "https://s3.example/signed"
	mocks.signer.expiresAt = time.Date(2026, time.June, 1, 12, 10, 0, 0, time.UTC)

	rec := doRequest(t, s, http.MethodGet, "/api/files/file1/download")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, codeOK, body.Code)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://s3.example/signed", data["url"])
	assert.Equal(t, "Quarterly Report.pdf", data["fileName"])

	assert.Equal(t, "uploads/file1/Quarterly Report.pdf", mocks.signer.key)
	assert.Empty(t, mocks.signer.downloadName)
}

func TestHandleFileDownloadAttachment(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.files.file = testFile()
	mocks.signer.url = "https://s3.example/signed"

	rec := doRequest(t, s, http.MethodGet, "/api/files/file1/download?download=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Quarterly-Report.pdf", mocks.signer.downloadName)
}

func TestHandleFileDownloadCustomName(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.files.file = testFile()
	mocks.signer.url = "https://s3.example/signed"

	rec := doRequest(t, s, http.MethodGet, "/api/files/file1/download?download=contract%20v2.pdf")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "contract-v2.pdf", mocks.signer.downloadName)
}

func TestHandleFileDownloadNotFound(t *testing.T) {
	s, mocks := newTestService(t)
	mocks.files.err = types.ErrFileNotFound

	rec := doRequest(t, s, http.MethodGet, "/api/files/missing/download")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, decodeEnvelope(t, rec).Code)
}

func TestParseDownloadOption(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected string
	}{
		{"absent", "", ""},
		{"disabled", "0", ""},
		{"disabled word", "false", ""},
		{"stored name", "1", "report.pdf"},
		{"stored name word", "true", "report.pdf"},
		{"custom name", "My Invoice (final).pdf", "My-Invoice-final-.pdf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseDownloadOption(tc.value, "report.pdf"))
		})
	}
}
