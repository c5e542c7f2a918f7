package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/job-matcher/internal/search"
)

// searchParams reads the dispatch parameters of GET /jobs.
func searchParams(r *http.Request) (search.Params, error) {
	q := r.URL.Query()
	p := search.Params{
		Search:     q.Get("search"),
		Location:   q.Get("location"),
		JobType:    q.Get("jobType"),
		Experience: q.Get("experience"),
		Industry:   q.Get("industry"),
		Skills:     search.SplitSkills(q.Get("skills")),
	}

	var err error
	if p.Page, err = intParam(r, "page", 1); err != nil {
		return p, err
	}
	if p.Limit, err = intParam(r, "limit", 0); err != nil {
		return p, err
	}
	if p.SalaryMin, err = optionalIntParam(r, "salaryMin"); err != nil {
		return p, err
	}
	if p.SalaryMax, err = optionalIntParam(r, "salaryMax"); err != nil {
		return p, err
	}
	if p.Remote, err = boolParam(r, "remote"); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	p, err := searchParams(r)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}

	resp, err := s.search.Search(r.Context(), p)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleSearchNLP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		s.failRequest(w, r, &ErrInvalidQuery{})
		return
	}
	page, err := intParam(r, "page", 1)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}

	resp, err := s.search.SearchNL(r.Context(), query, page, limit)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.search.Suggest(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", s.cfg.TrendingLimit)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	days, err := timeframeParam(r)
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	if days == 0 {
		days = s.cfg.TrendingTimeframeDays
	}

	resp, err := s.search.Trending(r.Context(), search.TrendingOptions{
		Limit:         limit,
		TimeframeDays: days,
		Algorithm:     r.URL.Query().Get("algorithm"),
	})
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := s.search.Insights(r.Context(), search.InsightsFilter{
		Industry:   q.Get("industry"),
		Location:   q.Get("location"),
		Experience: q.Get("experience"),
	})
	if err != nil {
		s.failRequest(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
