// Package search serves job search: the natural-language dispatch gate, NL and
// keyword search, suggestions, trending jobs and market insights.
package search

import (
	"time"

	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/parsing"
	"go.uber.org/zap"
)

// Defaults and bounds for paging.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// suggestionScanLimit bounds how many active jobs suggestions and insights aggregate over.
const suggestionScanLimit = 1000

// Service runs searches against a corpus.
type Service struct {
	corpus   corpus.Corpus
	parser   *parsing.QueryParser
	logger   *zap.Logger
	now      func() time.Time
	pageSize int
}

// NewService creates a Service over c. A nil parser uses the default pattern tables.
func NewService(c corpus.Corpus, parser *parsing.QueryParser, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parser == nil {
		parser = parsing.NewQueryParser(logger)
	}
	return &Service{
		corpus:   c,
		parser:   parser,
		logger:   logger,
		now:      time.Now,
		pageSize: DefaultPageSize,
	}
}

// WithClock replaces the clock used for trending windows and timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithPageSize sets the page size used when a request names none.
func (s *Service) WithPageSize(n int) *Service {
	if n > 0 {
		s.pageSize = min(n, MaxPageSize)
	}
	return s
}

// Parser returns the query parser the service uses.
func (s *Service) Parser() *parsing.QueryParser {
	return s.parser
}

// page normalizes a 1-based page and a page size.
func (s *Service) page(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.pageSize
	}
	return page, min(limit, MaxPageSize)
}
