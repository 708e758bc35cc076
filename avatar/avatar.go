// Package avatar builds the placeholder images shown when a person has no photo.
package avatar

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidVariant = errors.New("invalid avatar variant")

// Variant 는 플레이스홀더가 쓰이는 위치다. 위치마다 색과 크기가 다르다.
type Variant string

const (
	VariantList   Variant = "list"
	VariantCard   Variant = "card"
	VariantFriend Variant = "friend"
)

// RandomBackground 는 이름에서 배경색을 결정적으로 고르라는 뜻이다.
const RandomBackground = "random"

type Params struct {
	Background string
	Color      string
	Size       int
	Bold       bool
}

var variants = map[Variant]Params{
	VariantList:   {Background: RandomBackground, Color: "fff", Size: 128},
	VariantCard:   {Background: "FFFFFF", Color: "333", Size: 128, Bold: true},
	VariantFriend: {Background: "ffc107", Color: "fff", Size: 200, Bold: true},
}

func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return VariantList, nil
	}
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
	return v, nil
}

func (v Variant) Params() Params {
	if p, ok := variants[v]; ok {
		return p
	}
	return variants[VariantList]
}

// Builder 는 외부 아바타 서비스(ui-avatars 호환) URL 을 만든다.
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: baseURL}
}

func (b *Builder) URL(name string, v Variant) string {
	p := v.Params()

	q := url.Values{}
	q.Set("name", name)
	q.Set("background", p.Background)
	q.Set("color", p.Color)
	q.Set("size", strconv.Itoa(p.Size))
	if p.Bold {
		q.Set("bold", "true")
	}
	return b.baseURL + "?" + q.Encode()
}

// Initials 는 첫 단어와 마지막 단어의 첫 글자를 대문자로 돌려준다. 이름이 비어 있으면 "?".
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '.'
	})
	if len(words) == 0 {
		return "?"
	}

	first := []rune(words[0])[0]
	if len(words) == 1 {
		return string(unicode.ToUpper(first))
	}
	last := []rune(words[len(words)-1])[0]
	return string(unicode.ToUpper(first)) + string(unicode.ToUpper(last))
}
