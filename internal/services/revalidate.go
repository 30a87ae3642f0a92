package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"naukriedge/internal/logger"

	"go.uber.org/zap"
)

// RevalidateService nudges the frontend to recompute listing pages after a
// publish. Fire-and-forget: failures are logged and otherwise ignored, the
// pages recover on their normal revalidation interval.
type RevalidateService struct {
	siteURL string
	secret  string
	client  *http.Client
}

func NewRevalidateService(siteURL, secret string) *RevalidateService {
	return &RevalidateService{
		siteURL: siteURL,
		secret:  secret,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *RevalidateService) Revalidate(paths ...string) {
	if s.siteURL == "" || len(paths) == 0 {
		return
	}

	go func() {
		body, _ := json.Marshal(map[string][]string{"paths": paths})

		req, err := http.NewRequest(http.MethodPost, s.siteURL+"/api/revalidate", bytes.NewBuffer(body))
		if err != nil {
			logger.Log.Warn("failed to build revalidate request", zap.Error(err))
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if s.secret != "" {
			req.Header.Set("X-Revalidate-Secret", s.secret)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			logger.Log.Warn("revalidate call failed", zap.Strings("paths", paths), zap.Error(err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			logger.Log.Warn("revalidate call rejected",
				zap.Int("status", resp.StatusCode),
				zap.Strings("paths", paths),
			)
			return
		}
		logger.Log.Debug("revalidated paths", zap.Strings("paths", paths))
	}()
}
