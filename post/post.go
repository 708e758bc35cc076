package post

import (
	"errors"
	"strings"
	"time"

	"birthday-twins/models"

	"github.com/google/uuid"
)

// DefaultCount 는 선택이 없을 때 목록 앞에서부터 가져오는 인원 수다.
const DefaultCount = 2

var (
	ErrEmptyFriendName        = errors.New("empty friend name")
	ErrNoCelebritiesAvailable = errors.New("no celebrities available")
)

// ResolveCelebrities 는 카드에 들어갈 인물을 정한다.
// 선택이 있으면 선택 순서대로 이름을 레코드로 되돌리고 목록에 없는 이름은 버린다.
// 이름이 중복된 경우 목록에서 먼저 나온 레코드를 쓴다.
// 선택이 없으면 목록의 앞 DefaultCount 명을 원래 순서대로 쓴다.
func ResolveCelebrities(selection models.Selection, all []models.Celebrity) []models.Celebrity {
	if selection.Len() > 0 {
		out := make([]models.Celebrity, 0, selection.Len())
		for _, name := range selection.Names() {
			if c, ok := models.FindCelebrity(all, name); ok {
				out = append(out, c)
			}
		}
		return out
	}

	n := min(DefaultCount, len(all))
	out := make([]models.Celebrity, n)
	copy(out, all[:n])
	return out
}

// Assemble 은 완전한 Post 를 만들거나 검증 오류를 반환한다. 부분 결과는 없다.
func Assemble(friend models.Friend, selection models.Selection, all []models.Celebrity, date models.DateKey, style models.Style) (models.Post, error) {
	if !friend.HasName() {
		return models.Post{}, ErrEmptyFriendName
	}

	celebrities := ResolveCelebrities(selection, all)
	if len(celebrities) == 0 {
		return models.Post{}, ErrNoCelebritiesAvailable
	}

	return models.Post{
		ID: uuid.NewString(),
		Friend: models.Friend{
			Name:  strings.TrimSpace(friend.Name),
			Photo: friend.Photo,
		},
		Celebrities: celebrities,
		Date:        date,
		Style:       style,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
