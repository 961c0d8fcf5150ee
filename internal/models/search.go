package models

import "time"

// SearchFilters is the typed shape of search_logs.filters_applied.
type SearchFilters struct {
	Difficulty *string  `json:"difficulty,omitempty"`
	Category   *string  `json:"category,omitempty"`
	MealType   *string  `json:"meal_type,omitempty"`
	Type       *string  `json:"type,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type SearchLog struct {
	ID             int64          `json:"id"`
	UserID         *int64         `json:"user_id"`
	SearchQuery    string         `json:"search_query"`
	SearchType     string         `json:"search_type"`
	FiltersApplied *SearchFilters `json:"filters_applied"`
	ResultsCount   int            `json:"results_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
