package server

import (
	"context"
	"net/http"
	"time"
)

// handleHomeFeed composes the home feed fresh for every request. The build
// runs under a deadline so a slow read aborts all in-flight fetches instead
// of returning a partial feed.
func (s *Service) handleHomeFeed(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(s.config.Feed.BuildTimeoutSec) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	feed, err := s.feed.Build(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to build home feed")
		s.respondError(w, http.StatusInternalServerError, codeInternal, "failed to build home feed")
		return
	}

	s.respondOK(w, feed)
}
