package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Nitish-kumar7/web-scraping/internal/analysis"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// handleAnalyze runs a full candidate analysis and returns the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	log.Printf("Starting candidate analysis for %s", req.PortfolioURL)

	report, err := s.analyzer.Run(r.Context(), analysis.Request{
		PortfolioURL:    req.PortfolioURL,
		GitHubURL:       req.GitHubURL,
		InstagramHandle: req.InstagramHandle,
		ResumeText:      req.ResumeText,
		JobDescription:  req.JobDescription,
		Requirements:    req.JobRequirements,
	})
	if err != nil {
		log.Printf("Analysis failed for %s: %v", req.PortfolioURL, err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleGitHubProfile fetches aggregated GitHub statistics for a username.
func (s *Server) handleGitHubProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		s.errorResponse(w, http.StatusBadRequest, "Username is required")
		return
	}

	log.Printf("Fetching GitHub profile for user: %s", username)

	profile, err := s.github.FetchProfile(r.Context(), username)
	if err != nil {
		log.Printf("Error fetching GitHub profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleResumeParse extracts structured data from submitted resume text.
func (s *Server) handleResumeParse(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	parsed, err := s.resume.ParseText(r.Context(), req.Text)
	if err != nil {
		log.Printf("Error parsing resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleGetAnalysis returns a stored analysis report by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Analysis ID is required")
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	report, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if report == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
