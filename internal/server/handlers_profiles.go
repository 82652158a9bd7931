package server

import (
	"net/http"

	"github.com/jonathan/cv-tracker/internal/certs"
	"github.com/jonathan/cv-tracker/internal/experience"
	"github.com/jonathan/cv-tracker/internal/merge"
	"github.com/jonathan/cv-tracker/internal/types"
)

// PlanRequest picks "add" or "replace" per collection; empty means add
type PlanRequest struct {
	Experiences    string `json:"experiences,omitempty"`
	Education      string `json:"education,omitempty"`
	Skills         string `json:"skills,omitempty"`
	Languages      string `json:"languages,omitempty"`
	Links          string `json:"links,omitempty"`
	Certifications string `json:"certifications,omitempty"`
}

// MergeRequest represents the request body for /v1/profiles/{id}/merge.
// Exactly one of Profile or CV supplies the incoming data.
type MergeRequest struct {
	Profile   *types.Profile `json:"profile,omitempty"`
	CV        string         `json:"cv,omitempty"`
	Plan      PlanRequest    `json:"plan"`
	Confirmed bool           `json:"confirmed"`
}

// DetectCertificationsRequest is the optional body of the detect route
type DetectCertificationsRequest struct {
	// Apply adds the candidates to the stored profile
	Apply bool `json:"apply"`
}

// DetectCertificationsResponse lists the certifications found in the profile text
type DetectCertificationsResponse struct {
	Candidates []types.Certification `json:"candidates"`
	Profile    *types.Profile        `json:"profile,omitempty"`
}

func (p PlanRequest) toPlan(confirmed bool) (merge.Plan, error) {
	plan := merge.Plan{Confirmed: confirmed}
	fields := []struct {
		name string
		raw  string
		dst  *merge.Mode
	}{
		{"experiences", p.Experiences, &plan.Experiences},
		{"education", p.Education, &plan.Education},
		{"skills", p.Skills, &plan.Skills},
		{"languages", p.Languages, &plan.Languages},
		{"links", p.Links, &plan.Links},
		{"certifications", p.Certifications, &plan.Certifications},
	}
	for _, f := range fields {
		mode, ok := merge.ParseMode(f.raw)
		if !ok {
			return merge.Plan{}, &ErrValidation{Field: "plan." + f.name, Message: "must be add or replace"}
		}
		*f.dst = mode
	}
	return plan, nil
}

// incomingProfile builds the profile to merge from the request
func (s *Server) incomingProfile(req *MergeRequest) (*types.Profile, error) {
	switch {
	case req.Profile != nil && req.CV != "":
		return nil, &ErrValidation{Field: "body", Message: "profile and cv are mutually exclusive"}
	case req.Profile != nil:
		if err := experience.NormalizeProfile(req.Profile); err != nil {
			return nil, err
		}
		if err := req.Profile.Validate(); err != nil {
			return nil, err
		}
		return req.Profile, nil
	case req.CV != "":
		doc := s.parser.Parse(req.CV)
		p := experience.ProfileFromCV(doc.Content)
		for _, name := range doc.Certifications {
			p.Certifications = append(p.Certifications, types.Certification{Name: name})
		}
		experience.NormalizeSkills(p)
		experience.TrimAchievements(p)
		return p, nil
	}
	return nil, &ErrValidation{Field: "body", Message: "profile or cv is required"}
}

// handleGetProfile returns a stored profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if p == nil {
		s.writeError(w, r, &ErrNotFound{Kind: "profile", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleMergeProfile merges imported data into a profile, creating it when absent.
// A replace that would discard entries without confirmation answers 409.
func (s *Server) handleMergeProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req MergeRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	plan, err := req.Plan.toPlan(req.Confirmed)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	incoming, err := s.incomingProfile(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	existing, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if existing == nil {
		existing = &types.Profile{}
	}

	merged, err := merge.MergeProfile(existing, incoming, plan)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	merged.ID = id.String()
	if err := s.store.SaveProfile(r.Context(), merged); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Debug("profile merged", "id", id, "experiences", len(merged.Experiences), "skills", len(merged.Skills))
	s.jsonResponse(w, http.StatusOK, merged)
}

// handleDetectCertifications scans a profile's free text for certifications
// it does not list yet
func (s *Server) handleDetectCertifications(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req DetectCertificationsRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if p == nil {
		s.writeError(w, r, &ErrNotFound{Kind: "profile", ID: id.String()})
		return
	}

	found := certs.Detect(certs.ProfileText(p), p.Certifications)
	resp := DetectCertificationsResponse{Candidates: found}
	if resp.Candidates == nil {
		resp.Candidates = []types.Certification{}
	}
	if req.Apply && len(found) > 0 {
		merged, err := merge.Merge(p.Certifications, found, merge.CertificationKey, merge.Options{Mode: merge.ModeAdd})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		p.Certifications = merged
		if err := s.store.SaveProfile(r.Context(), p); err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Profile = p
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
