package dto

import "time"

type CelebrityDTO struct {
	Name        string `json:"name" example:"Louis Armstrong"`
	Description string `json:"description" example:"American jazz trumpeter"`
	ImageURL    string `json:"image_url,omitempty"`
	// Placeholder 는 ImageURL 이 없거나 로드에 실패했을 때 쓰는 아바타 URL 이다.
	Placeholder string `json:"placeholder"`
}

type ImageStageDTO struct {
	Provider string `json:"provider" example:"wikipedia"`
	Status   string `json:"status" example:"not_found"`
	Error    string `json:"error,omitempty"`
}

type ImageReportDTO struct {
	Name   string          `json:"name"`
	Source string          `json:"source,omitempty" example:"web_search"`
	Stages []ImageStageDTO `json:"stages"`
}

type BirthdaysResponseDTO struct {
	Date        string           `json:"date" example:"08-04"`
	DisplayDate string           `json:"display_date" example:"August 4"`
	Celebrities []CelebrityDTO   `json:"celebrities"`
	Images      []ImageReportDTO `json:"images,omitempty"`
	Cached      bool             `json:"cached"`
	FetchedAt   time.Time        `json:"fetched_at"`
}

type ThemeDTO struct {
	ID            string   `json:"id" example:"sunset"`
	Label         string   `json:"label" example:"Sunset"`
	GradientStops []string `json:"gradient_stops"`
	TextColor     string   `json:"text_color"`
	AccentColor   string   `json:"accent_color"`
	NameColor     string   `json:"name_color"`
}

type FontDTO struct {
	ID     string `json:"id" example:"poppins"`
	Label  string `json:"label" example:"Poppins"`
	Family string `json:"family"`
}

type StylesResponseDTO struct {
	Themes       []ThemeDTO `json:"themes"`
	Fonts        []FontDTO  `json:"fonts"`
	DefaultTheme string     `json:"default_theme"`
	DefaultFont  string     `json:"default_font"`
}
