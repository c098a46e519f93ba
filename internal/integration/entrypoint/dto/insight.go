// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pocket-ledger/backend/internal/application/usecase/insight"
	"github.com/pocket-ledger/backend/internal/application/usecase/theme"
)

// InsightResponse represents one insight card.
type InsightResponse struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	IconKey  string `json:"icon_key"`
	Empty    bool   `json:"empty"`
}

// InsightPanelResponse represents every card and the rotation cursor.
type InsightPanelResponse struct {
	Insights []InsightResponse `json:"insights"`
	Index    int               `json:"index"`
	Current  InsightResponse   `json:"current"`
}

// ThemeResponse represents the spend-driven colour set.
type ThemeResponse struct {
	Background string  `json:"background"`
	Secondary  string  `json:"secondary"`
	Accent     string  `json:"accent"`
	Text       string  `json:"text"`
	Percentage float64 `json:"percentage"`
}

func toInsightResponse(i insight.Insight) InsightResponse {
	return InsightResponse{
		Title:    i.Title,
		Value:    i.Value,
		Subtitle: i.Subtitle,
		IconKey:  i.IconKey,
		Empty:    i.Empty,
	}
}

// ToInsightPanelResponse converts the insights output.
func ToInsightPanelResponse(output *insight.GetInsightsOutput) InsightPanelResponse {
	insights := make([]InsightResponse, len(output.Insights))
	for i, in := range output.Insights {
		insights[i] = toInsightResponse(in)
	}
	return InsightPanelResponse{
		Insights: insights,
		Index:    output.Index,
		Current:  toInsightResponse(output.Current),
	}
}

// ToThemeResponse converts a theme.
func ToThemeResponse(t *theme.Theme) ThemeResponse {
	return ThemeResponse{
		Background: t.Background,
		Secondary:  t.Secondary,
		Accent:     t.Accent,
		Text:       t.Text,
		Percentage: t.Percentage,
	}
}
