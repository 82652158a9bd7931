package server

import "net/http"

// handleGetJob returns a job description saved by "cvtrack import-job --save"
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jd, err := s.store.GetJobDescription(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if jd == nil {
		s.writeError(w, r, &ErrNotFound{Kind: "job description", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, jd)
}
