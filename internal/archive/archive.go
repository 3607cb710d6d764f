// Package archive persists raw webhook payloads to disk so mis-parsed or
// disputed deliveries can be replayed by hand.
package archive

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// Archive writes one JSON file per received webhook.
type Archive struct {
	dir string
}

// New ensures the archive directory exists, falling back to fallbackDir when
// the primary is not writable (typical when the mounted volume is missing in
// local runs).
func New(dir, fallbackDir string) *Archive {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zlog.Logger.Warn().Err(err).Str("dir", dir).Str("fallback", fallbackDir).
			Msg("webhook archive dir not writable, using fallback")
		dir = fallbackDir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			zlog.Logger.Error().Err(err).Str("dir", dir).Msg("webhook archive disabled")
			return &Archive{}
		}
	}
	return &Archive{dir: dir}
}

type record struct {
	Headers http.Header     `json:"headers"`
	Method  string          `json:"method"`
	URL     string          `json:"url"`
	RawBody string          `json:"rawBody"`
	Body    json.RawMessage `json:"body,omitempty"`
}

// Save is best-effort: archival failures are logged, never propagated.
func (a *Archive) Save(kind string, req *http.Request, rawBody []byte) {
	if a.dir == "" {
		return
	}

	rec := record{
		Headers: req.Header,
		Method:  req.Method,
		URL:     req.URL.String(),
		RawBody: string(rawBody),
	}
	if json.Valid(rawBody) {
		rec.Body = json.RawMessage(rawBody)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to marshal webhook record")
		return
	}

	ts := strings.ReplaceAll(time.Now().UTC().Format("2006-01-02T15-04-05.000Z"), ".", "-")
	name := ts + "-" + kind + "-" + uuid.NewString()[:8] + ".json"

	if err := os.WriteFile(filepath.Join(a.dir, name), data, 0o644); err != nil {
		zlog.Logger.Warn().Err(err).Str("file", name).Msg("failed to write webhook record")
	}
}
