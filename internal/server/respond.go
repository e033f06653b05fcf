package server

import (
	"encoding/json"
	"net/http"
)

// Response codes follow the mobile clients' contract: "0000" for success,
// numeric-string error codes otherwise.
const (
	codeOK         = "0000"
	codeBadRequest = "4000"
	codeNotFound   = "4040"
	codeInternal   = "5000"
)

type envelope struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (s *Service) respondOK(w http.ResponseWriter, data any) {
	s.respondJSON(w, http.StatusOK, envelope{Code: codeOK, Data: data})
}

func (s *Service) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, envelope{Code: code, Message: message})
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("failed to encode response body")
	}
}
