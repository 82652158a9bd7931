package server

import (
	"net/http"
	"time"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/db"
	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/jonathan/cv-tracker/internal/types"
)

// ContentRequest carries raw stored résumé content
type ContentRequest struct {
	Content string `json:"content"`
}

// DetectResponse represents the response for /v1/cv/detect
type DetectResponse struct {
	Origin types.Origin `json:"origin"`
}

// DocumentResponse is a parsed résumé with its uncertainty markers
type DocumentResponse struct {
	Origin           types.Origin        `json:"origin"`
	Content          types.CVContent     `json:"content"`
	Uncertainties    []types.Uncertainty `json:"uncertainties"`
	NothingExtracted bool                `json:"nothingExtracted"`
	Certifications   []string            `json:"certifications,omitempty"`
	Other            []string            `json:"other,omitempty"`
	Buckets          *cvjson.Buckets     `json:"buckets,omitempty"`
}

// SerializeRequest represents the request body for /v1/cv/serialize
type SerializeRequest struct {
	Origin  types.Origin    `json:"origin"`
	Content types.CVContent `json:"content"`
	// Buckets are the sizes returned by parse, for the boundary strategy
	Buckets *cvjson.Buckets `json:"buckets,omitempty"`
	// Strategy is "", "sixty-forty" or "boundary"
	Strategy string `json:"strategy,omitempty"`
}

// SerializeResponse represents the response for /v1/cv/serialize
type SerializeResponse struct {
	Origin  types.Origin `json:"origin"`
	Content string       `json:"content"`
}

// PutCVRequest replaces a stored résumé. Raw content is parsed and keeps its
// detected format; structured content keeps the stored record's format, or
// Origin for a new record.
type PutCVRequest struct {
	Raw     string           `json:"raw,omitempty"`
	Content *types.CVContent `json:"content,omitempty"`
	Origin  types.Origin     `json:"origin,omitempty"`
}

// RecordResponse represents a stored résumé
type RecordResponse struct {
	ID        string           `json:"id"`
	Origin    types.Origin     `json:"origin"`
	Content   string           `json:"content"`
	Document  DocumentResponse `json:"document"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

func documentResponse(doc *resume.Document) DocumentResponse {
	return DocumentResponse{
		Origin:           doc.Origin,
		Content:          doc.Content,
		Uncertainties:    doc.Uncertainties.Items(),
		NothingExtracted: doc.NothingExtracted(),
		Certifications:   doc.Certifications,
		Other:            doc.Other,
		Buckets:          doc.Buckets,
	}
}

func recordResponse(rec *db.CVRecord, doc *resume.Document) RecordResponse {
	return RecordResponse{
		ID:        rec.ID.String(),
		Origin:    rec.Origin,
		Content:   rec.Content,
		Document:  documentResponse(doc),
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
	}
}

// handleDetect reports the format of raw content
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DetectResponse{Origin: parsing.DetectFormat(req.Content)})
}

// handleParse parses raw content into the editor shape
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	doc := s.parser.Parse(req.Content)
	s.jsonResponse(w, http.StatusOK, documentResponse(doc))
}

// handleSerialize writes editor content back in the requested origin format
func (s *Server) handleSerialize(w http.ResponseWriter, r *http.Request) {
	var req SerializeRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Origin == "" {
		req.Origin = types.OriginText
	}
	if !db.ValidOrigin(req.Origin) {
		s.writeError(w, r, &ErrValidation{Field: "origin", Message: "must be json or freeform-text"})
		return
	}

	doc := &resume.Document{Origin: req.Origin, Content: req.Content, Buckets: req.Buckets}
	var strategy cvjson.BucketStrategy
	switch req.Strategy {
	case "":
		strategy = s.strategyFor(doc)
	case cvjson.SixtyForty{}.Name():
		strategy = s.fallback
		if strategy == nil {
			strategy = cvjson.SixtyForty{}
		}
	case cvjson.BoundaryStrategy{}.Name():
		if req.Buckets == nil {
			s.writeError(w, r, &ErrValidation{Field: "buckets", Message: "required by the boundary strategy"})
			return
		}
		strategy = s.strategyFor(doc)
	default:
		s.writeError(w, r, &ErrValidation{Field: "strategy", Message: "unknown strategy " + req.Strategy})
		return
	}

	out, err := doc.Serialize(strategy)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SerializeResponse{Origin: doc.Origin, Content: out})
}

// handleGetCV loads a stored résumé and parses it in its stored format
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.store.GetCVRecord(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if rec == nil {
		s.writeError(w, r, &ErrNotFound{Kind: "cv", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, recordResponse(rec, s.parser.Open(rec.Origin, rec.Content)))
}

func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.DeleteCVRecord(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePutCV stores a résumé, serialized in its origin format
func (s *Server) handlePutCV(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req PutCVRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}

	var doc *resume.Document
	switch {
	case req.Raw != "":
		doc = s.parser.Parse(req.Raw)
	case req.Content != nil:
		existing, err := s.store.GetCVRecord(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if existing != nil {
			doc = s.parser.Open(existing.Origin, existing.Content)
		} else {
			origin := req.Origin
			if origin == "" {
				origin = types.OriginText
			}
			if !db.ValidOrigin(origin) {
				s.writeError(w, r, &ErrValidation{Field: "origin", Message: "must be json or freeform-text"})
				return
			}
			doc = &resume.Document{Origin: origin}
		}
		doc.Content = *req.Content
	default:
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "raw or content is required"})
		return
	}

	doc.EnsureIDs()
	out, err := doc.Serialize(s.strategyFor(doc))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec := &db.CVRecord{ID: id, Origin: doc.Origin, Content: out}
	if err := s.store.SaveCVRecord(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Debug("cv saved", "id", id, "origin", doc.Origin)
	s.jsonResponse(w, http.StatusOK, recordResponse(rec, doc))
}
