package dto

import "time"

type SessionDTO struct {
	ID          string         `json:"id"`
	Status      string         `json:"status" example:"loaded"`
	Generation  uint64         `json:"generation"`
	Date        string         `json:"date,omitempty" example:"08-04"`
	Celebrities []CelebrityDTO `json:"celebrities"`
	Selection   []string       `json:"selection"`
	Friend      FriendDTO      `json:"friend"`
	Theme       string         `json:"theme"`
	Font        string         `json:"font"`
	CanGenerate bool           `json:"can_generate"`
	Post        *PostDTO       `json:"post,omitempty"`
	Error       string         `json:"error,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type SetDateRequestDTO struct {
	Date string `json:"date" binding:"required" example:"2024-08-04"`
}

type ToggleSelectionRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

type SetStyleRequestDTO struct {
	Theme string `json:"theme" example:"galaxy"`
	Font  string `json:"font" example:"anton"`
}
