package models

import "time"

// Post 는 카드 렌더링/내보내기에 쓰이는 최종 문서다. 생성 후에는 변경하지 않는다.
type Post struct {
	ID          string      `json:"id"`
	Friend      Friend      `json:"friend"`
	Celebrities []Celebrity `json:"celebrities"`
	Date        DateKey     `json:"date"`
	Style       Style       `json:"style"`
	CreatedAt   time.Time   `json:"created_at"`
}
