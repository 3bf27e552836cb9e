package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// uploadField is the multipart form field holding the ebook.
const uploadField = "file"

// healthTimeout bounds the health check.
const healthTimeout = 2 * time.Second

type indexResponse struct {
	Upload  string `json:"upload"`
	Field   string `json:"field"`
	Results string `json:"results"`
}

type resultResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TokenCount  int             `json:"token_count"`
	TopicID     int             `json:"topic_id"`
	Probability float64         `json:"probability"`
	Topics      []topicResponse `json:"topics"`
	CreatedAt   time.Time       `json:"created_at"`
}

type topicResponse struct {
	ID        int      `json:"id"`
	Keywords  string   `json:"keywords"`
	Documents []string `json:"documents"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Upload:  "POST /upload",
		Field:   uploadField,
		Results: "GET /results",
	})
}

// handleUpload stores the posted file, analyses it and redirects to its
// report. A request without a file goes back to the index.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		logger.Debug("upload without file", "err", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	name := secureFilename(header.Filename)
	if name == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	if err := s.store(name, content); err != nil {
		logger.Error("store upload", err, "name", name)
		writeError(w, http.StatusInternalServerError, errors.New("could not store upload"))
		return
	}

	analysis, err := s.analyses.Analyze(r.Context(), name, content)
	if err != nil {
		logger.Warn("analysis failed", "name", name, "err", err)
		writeError(w, statusFor(err), err)
		return
	}

	http.Redirect(w, r, "/results/"+analysis.ID, http.StatusSeeOther)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	analysis, err := s.analyses.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(analysis))
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.analyses.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := make([]resultResponse, len(analyses))
	for i := range analyses {
		out[i] = toResultResponse(&analyses[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := s.health(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// store writes content to the upload directory.
func (s *Server) store(name string, content []byte) error {
	if err := os.MkdirAll(s.cfg.UploadDir, 0750); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.cfg.UploadDir, name), content, 0640)
}

func toResultResponse(a *domain.Analysis) resultResponse {
	assignment := a.Assignment()
	out := resultResponse{
		ID:          a.ID,
		Name:        a.Name,
		TokenCount:  a.TokenCount,
		TopicID:     assignment.TopicID,
		Probability: assignment.Probability,
		Topics:      []topicResponse{},
		CreatedAt:   a.CreatedAt,
	}
	for _, id := range a.Result.Topics() {
		out.Topics = append(out.Topics, topicResponse{
			ID:        id,
			Keywords:  a.Result.TopicsWords[id],
			Documents: a.Result.DocumentsForTopics[id],
		})
	}
	return out
}

// secureFilename reduces an uploaded file name to a safe base name made of
// ASCII letters, digits, dots, dashes and underscores. It returns "" when
// nothing usable remains.
func secureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), "._")
}
