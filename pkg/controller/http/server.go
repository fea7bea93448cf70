package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/frontend"
	"github.com/intellimed/scribe/pkg/usecase"
	"github.com/intellimed/scribe/pkg/utils/logging"
	"github.com/intellimed/scribe/pkg/utils/safe"
)

// Server exposes the REST API and the embedded SPA
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/patients", s.createPatient)
		r.Get("/patients", s.listPatients)
		r.Get("/patients/{id}", s.getPatient)
		r.Get("/patients/{id}/conversations", s.listPatientConversations)

		r.Get("/users/{id}", s.getUser)

		r.Post("/upload-audio", s.uploadAudio)

		r.Post("/transcript-segments", s.createTranscriptSegment)
		r.Get("/conversations/{id}/transcript-segments", s.listTranscriptSegments)

		r.Post("/conversations", s.createConversation)
		r.Get("/conversations/{id}", s.getConversation)

		r.Post("/generate-soap-notes", s.generateSOAPNotes)
		r.Get("/soap-notes/{id}", s.getSOAPNote)
		r.Put("/soap-notes/{id}", s.updateSOAPNote)

		r.Post("/generate-chart-summary", s.generateChartSummary)
		r.Post("/check-clinical-guidelines", s.checkClinicalGuidelines)
		r.Post("/generate-medical-codes", s.generateMedicalCodes)
		r.Get("/additional-notes/{soapNoteId}", s.listAdditionalNotes)
	})

	// Static file serving for SPA (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind dist dir for static")
	}

	r.Get("/*", spaHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// spaHandler handles SPA routing by serving static files and falling back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		if urlPath == "" {
			urlPath = "index.html"
		}

		if file, err := staticFS.Open(urlPath); err != nil {
			// File not found, serve index.html for SPA routing
			if indexFile, err := staticFS.Open("index.html"); err == nil {
				defer safe.Close(r.Context(), indexFile)
				w.Header().Set("Content-Type", "text/html")
				safe.Copy(r.Context(), w, indexFile)
				return
			}

			http.NotFound(w, r)
			return
		} else {
			file.Close() //nolint:errcheck // read-only handle
		}

		fileServer.ServeHTTP(w, r)
	}
}
