// Package skills provides case-insensitive skill overlap between job postings,
// user profiles and parsed queries.
package skills

import "strings"

// Matches reports whether two skill names overlap: either one contains the
// other, ignoring case. Empty names never match.
func Matches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Matching returns the entries of candidates that match at least one entry of
// against, in candidates order.
func Matching(candidates, against []string) []string {
	matched := make([]string, 0)
	for _, c := range candidates {
		for _, a := range against {
			if Matches(c, a) {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched
}

// CountMatching returns len(Matching(candidates, against)).
func CountMatching(candidates, against []string) int {
	return len(Matching(candidates, against))
}

// OverlapRatio is the number of job skills matching any user skill divided by
// the number of user skills, clamped to [0, 1].
func OverlapRatio(jobSkills, userSkills []string) float64 {
	if len(userSkills) == 0 {
		return 0.0
	}
	ratio := float64(CountMatching(jobSkills, userSkills)) / float64(len(userSkills))
	if ratio > 1.0 {
		ratio = 1.0
	}
	return ratio
}

// ContainsFold reports whether list holds name, ignoring case.
func ContainsFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}
