package session

import (
	"time"

	"birthday-twins/models"
)

// Status 는 컨트롤러 상태 머신의 단계다.
//
//	Idle -> Loading -> {Loaded, Failed}
//	Loaded -> PostGenerated
//	날짜 변경/재시도는 어느 상태에서든 Loading 으로 되돌린다.
type Status string

const (
	StatusIdle          Status = "idle"
	StatusLoading       Status = "loading"
	StatusLoaded        Status = "loaded"
	StatusFailed        Status = "failed"
	StatusPostGenerated Status = "post_generated"
)

// State 는 한 세션의 전체 상태 스냅샷이다. 전이마다 새 값으로 통째로 교체되며
// 내부 슬라이스는 공유되더라도 절대 수정되지 않는다.
type State struct {
	ID          string             `json:"id"`
	Status      Status             `json:"status"`
	Generation  uint64             `json:"generation"`
	Date        models.DateKey     `json:"date"`
	Celebrities []models.Celebrity `json:"celebrities"`
	Selection   []string           `json:"selection"`
	Friend      models.Friend      `json:"friend"`
	Style       models.Style       `json:"style"`
	Post        *models.Post       `json:"post,omitempty"`
	Error       string             `json:"error,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at"`

	selection models.Selection
}

// CanGenerate 는 카드 생성 버튼이 활성화될 조건이다.
func (s State) CanGenerate() bool {
	return (s.Status == StatusLoaded || s.Status == StatusPostGenerated) &&
		len(s.Celebrities) > 0 && s.Friend.HasName()
}

func (s State) withSelection(sel models.Selection) State {
	s.selection = sel
	s.Selection = sel.Names()
	if s.Selection == nil {
		s.Selection = []string{}
	}
	return s
}
