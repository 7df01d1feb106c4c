package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/atharvakapadnis/agentic-tasks/resume"
	"github.com/atharvakapadnis/agentic-tasks/store"
	"github.com/gorilla/mux"
)

func (s *Server) routes(router *mux.Router) {
	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/openapi.json", s.handleOpenAPI).Methods(http.MethodGet)

	router.HandleFunc("/job-application", s.handleCreateJobApplication).Methods(http.MethodPost)
	router.HandleFunc("/job-applications", s.handleListJobApplications).Methods(http.MethodGet)
	router.HandleFunc("/job-application/{id}", s.handleGetJobApplication).Methods(http.MethodGet)

	router.HandleFunc("/task3/resume-optimization-pdf", s.handleResumeOptimizationPDF).Methods(http.MethodPost)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Agentic Tasks API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeDetail(w, http.StatusServiceUnavailable, "database unreachable: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.SchemaDocument(s.options.ToolPrefix))
}

type jobApplicationRequest struct {
	Company        string `json:"company"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	DateApplied    string `json:"date_applied"`
}

func (s *Server) handleCreateJobApplication(w http.ResponseWriter, r *http.Request) {
	var req jobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if len(req.Company) == 0 || len(req.JobTitle) == 0 || len(req.JobDescription) == 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "company, job_title, and job_description are required")
		return
	}

	app := store.JobApplication{
		Company:        req.Company,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	}

	if len(req.DateApplied) > 0 {
		date, err := store.ParseDate(req.DateApplied)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		app.DateApplied = date
	}

	created, err := s.assistant.CreateJobApplication(r.Context(), app)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"job_application_id": created.ID,
		"company":            created.Company,
		"job_title":          created.JobTitle,
		"job_description":    created.JobDescription,
		"date_applied":       created.DateApplied.String(),
	})
}

func (s *Server) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.assistant.ListJobApplications(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if apps == nil {
		apps = []store.JobApplication{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"job_applications": apps})
}

func (s *Server) handleGetJobApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid job application id")
		return
	}

	app, err := s.assistant.GetJobApplication(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Job application not found: "+strconv.FormatInt(id, 10))
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, app)
}

// handleResumeOptimizationPDF accepts a multipart resume upload, extracts
// its text, and runs the resume-optimization workflow.
func (s *Server) handleResumeOptimizationPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(resume.MaxBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("resume_file")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "resume_file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "failed to read resume_file")
		return
	}

	jobDescription := r.FormValue("job_description")
	if len(jobDescription) == 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "job_description is required")
		return
	}

	var jobApplicationID int64
	if raw := r.FormValue("job_application_id"); len(raw) > 0 {
		jobApplicationID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "invalid job_application_id")
			return
		}
	}

	resumeText, err := resume.ExtractText(data)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "failed to extract resume text: "+err.Error())
		return
	}

	suggestions, suggestionID, err := s.assistant.ResumeOptimization(r.Context(), resumeText, jobDescription, jobApplicationID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]any{"suggestions": suggestions}
	if suggestionID > 0 {
		response["resume_suggestion_id"] = suggestionID
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
