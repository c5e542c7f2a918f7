// Package parsing turns free-text job searches into structured queries and
// normalizes skill names.
package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/job-matcher/internal/types"
	"go.uber.org/zap"
)

// Confidence contributions per extracted signal.
const (
	jobTypeConfidence    = 20
	experienceConfidence = 15
	industryConfidence   = 15
	skillConfidence      = 10
	locationConfidence   = 15
	salaryConfidence     = 10
	termConfidence       = 5
	maxConfidence        = 100

	minLocationLength = 3
	maxLocationLength = 49

	minTermLength = 3
)

// QueryParser extracts structured search intent from a natural-language query.
// It is safe for concurrent use.
type QueryParser struct {
	patterns *patternSet
	logger   *zap.Logger
}

// NewQueryParser creates a parser. A nil logger discards extraction failures.
func NewQueryParser(logger *zap.Logger) *QueryParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryParser{patterns: defaultPatterns, logger: logger}
}

var (
	defaultPatterns = newPatternSet()
	defaultParser   = NewQueryParser(nil)
)

// ParseQuery parses query with the default parser.
func ParseQuery(query string) *types.ParsedQuery {
	return defaultParser.Parse(query)
}

// Parse returns nil for empty or whitespace-only input. A failure in one
// category leaves that category empty; the remaining categories still parse.
func (p *QueryParser) Parse(query string) (parsed *types.ParsedQuery) {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("query parse failed, using fallback",
				zap.String("query", query),
				zap.Error(&ParseError{Message: "unexpected failure", Cause: fmt.Errorf("%v", r)}))
			parsed = fallbackParse(query)
		}
	}()

	parsed = &types.ParsedQuery{
		OriginalQuery: query,
		Skills:        []string{},
		SearchTerms:   []string{},
	}
	lower := strings.ToLower(query)
	confidence := 0

	p.extract("jobType", func() {
		if label, ok := p.patterns.jobTypes.firstMatch(lower); ok {
			parsed.JobType = &label
			confidence += jobTypeConfidence
		}
	})

	p.extract("experience", func() {
		if label, ok := p.patterns.experiences.firstMatch(lower); ok {
			parsed.Experience = &label
			confidence += experienceConfidence
		}
	})

	p.extract("industry", func() {
		if label, ok := p.patterns.industries.firstMatch(lower); ok {
			parsed.Industry = &label
			confidence += industryConfidence
		}
	})

	p.extract("skills", func() {
		skills := p.patterns.skills.allMatches(lower)
		if len(skills) > 0 {
			parsed.Skills = skills
			confidence += skillConfidence * len(skills)
		}
	})

	p.extract("location", func() {
		if location, ok := p.extractLocation(query); ok {
			parsed.Location = &location
			confidence += locationConfidence
		}
	})

	p.extract("salary", func() {
		if salary := p.extractSalary(lower); salary != nil {
			parsed.Salary = salary
			confidence += salaryConfidence
		}
	})

	p.extract("searchTerms", func() {
		terms := p.extractSearchTerms(lower, parsed.Location)
		parsed.SearchTerms = terms
		confidence += termConfidence * len(terms)
	})

	parsed.Confidence = min(confidence, maxConfidence)
	return parsed
}

// extract runs fn and converts a panic into a logged ExtractionError.
func (p *QueryParser) extract(category string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("query extraction failed",
				zap.Error(&ExtractionError{Category: category, Cause: fmt.Errorf("%v", r)}))
		}
	}()
	fn()
}

// extractLocation matches against the original casing so "Austin" stays "Austin".
func (p *QueryParser) extractLocation(query string) (string, bool) {
	for _, re := range p.patterns.locations {
		m := re.FindStringSubmatch(query)
		if len(m) < 2 {
			continue
		}
		location := strings.TrimSpace(m[1])
		location = locationSuffix.ReplaceAllString(location, "")
		location = strings.TrimSpace(trailingPunct.ReplaceAllString(location, ""))
		if n := utf8.RuneCountInString(location); n >= minLocationLength && n <= maxLocationLength {
			return location, true
		}
	}
	return "", false
}

// extractSalary uses the first salary pattern that matches. Figures below 1000
// are read as thousands.
func (p *QueryParser) extractSalary(lower string) *types.SalaryRange {
	for _, re := range p.patterns.salaries {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		low, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		low = scaleSalary(low)

		var high *int
		if len(m) > 2 && m[2] != "" {
			if v, err := strconv.Atoi(m[2]); err == nil {
				v = scaleSalary(v)
				high = &v
			}
		}

		switch {
		case openEndedSalary.MatchString(lower):
			return &types.SalaryRange{Min: low}
		case cappedSalary.MatchString(lower):
			ceiling := low
			return &types.SalaryRange{Min: 0, Max: &ceiling}
		default:
			return &types.SalaryRange{Min: low, Max: high}
		}
	}
	return nil
}

func scaleSalary(v int) int {
	if v < 1000 {
		return v * 1000
	}
	return v
}

// extractSearchTerms strips every recognized phrase and returns the leftover
// meaningful words, deduplicated in order.
func (p *QueryParser) extractSearchTerms(lower string, location *string) []string {
	clean := lower
	strip := func(re *regexp.Regexp) {
		clean = re.ReplaceAllString(clean, " ")
	}

	p.patterns.jobTypes.each(strip)
	p.patterns.experiences.each(strip)
	p.patterns.industries.each(strip)
	p.patterns.skills.each(strip)
	if location != nil && *location != "" {
		strip(regexp.MustCompile(`(?i)` + regexp.QuoteMeta(*location)))
	}
	// Ranges go first so a single-figure pattern cannot leave the lower bound
	// behind. Directional patterns sit last; stripping them next takes the
	// keyword together with its figure.
	for _, re := range p.patterns.salaries {
		if re.NumSubexp() == 2 {
			strip(re)
		}
	}
	for i := len(p.patterns.salaries) - 1; i >= 0; i-- {
		strip(p.patterns.salaries[i])
	}

	return p.tokenize(nonWord.ReplaceAllString(clean, " "))
}

func (p *QueryParser) tokenize(s string) []string {
	terms := []string{}
	seen := make(map[string]bool)
	for _, word := range strings.Fields(s) {
		if utf8.RuneCountInString(word) < minTermLength || p.patterns.stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		terms = append(terms, word)
	}
	return terms
}

// fallbackParse is the minimal result used when parsing fails outright.
func fallbackParse(query string) *types.ParsedQuery {
	terms := []string{}
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(word) >= minTermLength {
			terms = append(terms, word)
		}
	}
	return &types.ParsedQuery{
		OriginalQuery: query,
		Skills:        []string{},
		SearchTerms:   terms,
		Confidence:    0,
	}
}
