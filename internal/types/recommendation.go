package types

// ScoredRecommendation is a job candidate annotated by the recommendation engine.
type ScoredRecommendation struct {
	JobCandidate
	RecommendationScore int      `json:"recommendationScore"`
	MatchingReasons     []string `json:"matchingReasons"`
	RecommendationRank  int      `json:"recommendationRank"`
	Source              string   `json:"source,omitempty"`

	// IsAIGenerated is kept for wire compatibility; recommendations are rule-based.
	IsAIGenerated bool `json:"isAIGenerated"`
}

// RecommendResponse lists ranked recommendations.
type RecommendResponse struct {
	Count int                    `json:"count"`
	Data  []ScoredRecommendation `json:"data"`
}
