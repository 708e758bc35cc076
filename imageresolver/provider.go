package imageresolver

import "context"

// Provider 는 인물 이름으로 초상 이미지 URL 을 찾는 단계 하나다.
// 찾지 못한 경우는 ("", nil) 이고, 전송/파싱 실패만 error 로 돌려준다.
type Provider interface {
	Name() string
	Find(ctx context.Context, personName string) (string, error)
}
