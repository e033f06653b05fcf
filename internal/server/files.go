package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"vendorhub/internal/storage"
	"vendorhub/pkg/types"

	"github.com/alexedwards/flow"
)

type fileDownloadData struct {
	URL       string    `json:"url"`
	FileName  string    `json:"fileName"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleFileDownload issues a short-lived signed URL for a stored file. The
// optional "download" query parameter forces an attachment disposition:
// "1"/"true" uses the stored filename, any other non-empty value is used as
// the filename after sanitization.
func (s *Service) handleFileDownload(w http.ResponseWriter, r *http.Request) {
	fileID := flow.Param(r.Context(), "fileID")

	file, err := s.files.FileByID(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, types.ErrFileNotFound) {
			s.respondError(w, http.StatusNotFound, codeNotFound, "file not found")
			return
		}
		s.logger.WithError(err).Error("failed to fetch file")
		s.respondError(w, http.StatusInternalServerError, codeInternal, "failed to fetch file")
		return
	}

	downloadName := parseDownloadOption(r.URL.Query().Get("download"), file.FileName)

	url, expiresAt, err := s.storage.SignedDownloadURL(r.Context(), file.StorageKey, downloadName)
	if err != nil {
		s.logger.WithError(err).Error("failed to sign download url")
		s.respondError(w, http.StatusInternalServerError, codeInternal, "failed to sign download url")
		return
	}

	s.respondOK(w, fileDownloadData{
		URL:       url,
		FileName:  file.FileName,
		ExpiresAt: expiresAt,
	})
}

func parseDownloadOption(value, storedName string) string {
	if value == "" {
		return ""
	}

	switch strings.ToLower(value) {
	case "0", "false":
		return ""
	case "1", "true":
		return storage.SanitizeDownloadName(storedName)
	}

	return storage.SanitizeDownloadName(value)
}
