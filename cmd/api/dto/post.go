package dto

import "time"

type FriendDTO struct {
	Name string `json:"name" example:"Sam"`
	// Photo 는 "data:image/...;base64," 형식이다.
	Photo string `json:"photo,omitempty"`
}

type CelebrityInputDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreatePostRequestDTO 는 세션 없이 카드를 만들 때 필요한 모든 입력이다.
type CreatePostRequestDTO struct {
	Friend      FriendDTO           `json:"friend"`
	// Date 는 서비스에서 친구 이름 다음에 검증한다.
	Date        string              `json:"date" example:"08-04"`
	Celebrities []CelebrityInputDTO `json:"celebrities"`
	Selection   []string            `json:"selection"`
	Theme       string              `json:"theme" example:"ocean"`
	Font        string              `json:"font" example:"pacifico"`
}

type PostDTO struct {
	ID          string         `json:"id"`
	Friend      FriendDTO      `json:"friend"`
	Celebrities []CelebrityDTO `json:"celebrities"`
	Date        string         `json:"date" example:"08-04"`
	DateLine    string         `json:"date_line" example:"Birthday Twins for August 4"`
	Theme       string         `json:"theme"`
	Font        string         `json:"font"`
	CreatedAt   time.Time      `json:"created_at"`
	Share       ShareDTO       `json:"share"`
}

type ShareDTO struct {
	Text             string `json:"text"`
	Twitter          string `json:"twitter"`
	Facebook         string `json:"facebook"`
	Instagram        string `json:"instagram"`
	DownloadFilename string `json:"download_filename"`
}
