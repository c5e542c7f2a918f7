package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/search"
)

// intParam reads an optional integer query parameter. Absent or blank values yield def.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &search.InvalidParamError{Param: name, Value: raw}
	}
	return n, nil
}

// optionalIntParam reads an integer query parameter, returning nil when absent.
func optionalIntParam(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &search.InvalidParamError{Param: name, Value: raw}
	}
	return corpus.IntPtr(n), nil
}

// boolParam reads an optional boolean query parameter.
func boolParam(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &search.InvalidParamError{Param: name, Value: raw}
	}
	return b, nil
}

// timeframeParam reads a trending window in days. Both "30" and "30d" are accepted.
func timeframeParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("timeframe"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(raw), "d"))
	if err != nil || n < 0 {
		return 0, &search.InvalidParamError{Param: "timeframe", Value: raw}
	}
	return n, nil
}
