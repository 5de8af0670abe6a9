package rest

import (
	"techpulse/domain"
)

type trendsRequest struct {
	Keywords []string `json:"keywords" validate:"max=50,dive,required,max=64"`
}

type ingestRequest struct {
	Limit int `json:"limit" validate:"required,min=1,max=500"`
}

type ingestResponse struct {
	Fetched int    `json:"fetched"`
	Source  string `json:"source"`
}

type timelineEventRequest struct {
	ID              string  `json:"id" validate:"omitempty,max=128"`
	Title           string  `json:"title" validate:"required,max=512"`
	Date            string  `json:"date" validate:"required,isodate"`
	Description     string  `json:"description" validate:"max=4096"`
	Category        string  `json:"category" validate:"max=64"`
	ImportanceScore float64 `json:"importance_score" validate:"min=0"`
}

type timelineEventResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	ImportanceScore float64 `json:"importance_score"`
}

func toTimelineEventResponse(e *domain.TimelineEvent) timelineEventResponse {
	return timelineEventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Date:            e.DateString(),
		Description:     e.Description,
		Category:        e.Category,
		ImportanceScore: e.ImportanceScore,
	}
}

type userProfileRequest struct {
	DisplayName string   `json:"display_name" validate:"max=128"`
	Interests   []string `json:"interests" validate:"max=50,dive,required,max=64"`
}

type articlesResponse struct {
	Articles []*domain.Article `json:"articles"`
	Count    int               `json:"count"`
}
