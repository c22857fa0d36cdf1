// Package model provides data transfer objects for the report module.
package model

// SummaryResponse represents the generated (or fallback) summary text.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// StatsResponse represents aggregate counts over the caller's visible feed.
type StatsResponse struct {
	TotalUpdates int `json:"total_updates"`
	Teams        int `json:"teams"`
	Contributors int `json:"contributors"`
}

// ExportedReport is a rendered plain-text report document.
type ExportedReport struct {
	Filename string
	Content  string
}
