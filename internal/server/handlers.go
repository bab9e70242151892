package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sowmyalt/edu2job/internal/engine"
	"github.com/sowmyalt/edu2job/internal/retrain"
	"github.com/sowmyalt/edu2job/internal/server/middleware"
	"github.com/sowmyalt/edu2job/internal/types"
)

const maxBodyBytes = 1 << 20

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"trained": s.engine.Trained(),
	})
}

// handlePredict answers with ranked recommendations. Once the body is a valid
// profile the response is always 200 with a non-empty prediction list.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	profile, err := decodeProfile(r.Body)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	res := s.engine.Predict(profile)
	if res.Status != engine.StatusOK {
		log.Printf("[server] prediction status=%s request_id=%s err=%v",
			res.Status, middleware.GetRequestID(r.Context()), res.Err)
	}
	s.jsonResponse(w, http.StatusOK, res.Response())
}

func decodeProfile(body io.Reader) (types.Profile, error) {
	profile, err := types.DecodeProfile(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return types.Profile{}, &ErrValidation{Message: err.Error()}
	}

	if err := profile.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return types.Profile{}, &ErrValidation{
				Field:   strings.ToLower(verrs[0].Field()),
				Message: fmt.Sprintf("failed '%s' constraint", verrs[0].Tag()),
			}
		}
		return types.Profile{}, &ErrValidation{Message: err.Error()}
	}
	return profile, nil
}

// handleRetrain reloads the corpus and swaps in a new model. Concurrent
// requests queue behind the one in flight.
func (s *Server) handleRetrain(w http.ResponseWriter, r *http.Request) {
	if s.retrainer == nil {
		s.errorResponse(w, fmt.Errorf("%w: retraining is not configured", engine.ErrTrainingUnavailable))
		return
	}

	reason := "http"
	if id := middleware.GetRequestID(r.Context()); id != "" {
		reason = "http " + id
	}

	run, err := s.retrainer.Retrain(r.Context(), reason)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), map[string]any{"error": err.Error(), "run": run})
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

type modelResponse struct {
	engine.Summary
	LastRetrain *retrain.Run `json:"last_retrain,omitempty"`
}

// handleModel describes the served model and the most recent retrain.
func (s *Server) handleModel(w http.ResponseWriter, _ *http.Request) {
	resp := modelResponse{Summary: s.engine.Summary()}
	if s.retrainer != nil {
		if run, ok := s.retrainer.Last(); ok {
			resp.LastRetrain = &run
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleRoleDistribution(w http.ResponseWriter, r *http.Request) {
	snap := s.engine.Insights()
	if snap == nil {
		s.errorResponse(w, &ErrNotTrained{})
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}
	s.jsonResponse(w, http.StatusOK, snap.RoleDistribution(limit))
}

func (s *Server) handleDegreeTrends(w http.ResponseWriter, r *http.Request) {
	snap := s.engine.Insights()
	if snap == nil {
		s.errorResponse(w, &ErrNotTrained{})
		return
	}
	s.jsonResponse(w, http.StatusOK, snap.DegreeTrends(r.URL.Query().Get("degree")))
}

func (s *Server) handleSpecializationInsights(w http.ResponseWriter, r *http.Request) {
	snap := s.engine.Insights()
	if snap == nil {
		s.errorResponse(w, &ErrNotTrained{})
		return
	}
	s.jsonResponse(w, http.StatusOK, snap.SpecializationInsights(r.URL.Query().Get("specialization")))
}

// handleCareerPaths serves the curated table; it does not need a model.
func (s *Server) handleCareerPaths(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.CareerPaths(r.URL.Query().Get("specialization")))
}
