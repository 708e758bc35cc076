package models

import "strings"

// Friend 는 카드의 주인공이다. Photo 는 "data:image/...;base64," 형식의 data URI 이다.
type Friend struct {
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

func (f Friend) HasName() bool {
	return strings.TrimSpace(f.Name) != ""
}
