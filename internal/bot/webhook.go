package bot

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WebhookHandler returns the HTTP handler for webhook mode: Telegram delivers
// updates to POST /webhook/{secret}. The secret is a path segment, so the URL
// itself is the credential; the compare is constant-time.
func (s *Service) WebhookHandler(secret string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/webhook/{secret}", func(w http.ResponseWriter, req *http.Request) {
		got := chi.URLParam(req, "secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "bad secret"})
			return
		}

		var update tgbotapi.Update
		if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
			slog.Warn("Failed to decode webhook update", "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad update payload"})
			return
		}

		s.HandleUpdate(req.Context(), update)
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
