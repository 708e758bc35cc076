package models

// Celebrity 는 조회 단계에서 만들어지고 이미지 해석 단계에서 ImageURL 이 채워지는 레코드다.
// ImageURL 이 비어 있으면 실제 사진이 없다는 뜻이며, 표시 계층이 placeholder 로 대체한다.
// Name 이 식별 키지만 한 결과 안에서 중복 제거는 하지 않는다.
type Celebrity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

func (c Celebrity) HasImage() bool {
	return c.ImageURL != ""
}

// WithImage 는 ImageURL 만 바꾼 사본을 반환한다.
func (c Celebrity) WithImage(url string) Celebrity {
	c.ImageURL = url
	return c
}

// FindCelebrity 는 이름이 같은 첫 번째 레코드를 반환한다.
func FindCelebrity(list []Celebrity, name string) (Celebrity, bool) {
	for _, c := range list {
		if c.Name == name {
			return c, true
		}
	}
	return Celebrity{}, false
}

// DuplicateNames 는 목록 안에서 두 번 이상 등장한 이름을 등장 순서대로 반환한다.
func DuplicateNames(list []Celebrity) []string {
	seen := make(map[string]int, len(list))
	var dups []string
	for _, c := range list {
		seen[c.Name]++
		if seen[c.Name] == 2 {
			dups = append(dups, c.Name)
		}
	}
	return dups
}
