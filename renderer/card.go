// Package renderer turns an assembled post into the shareable birthday card.
package renderer

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"birthday-twins/avatar"
	"birthday-twins/models"
)

const (
	Wish           = "Wishing you a day filled with love, laughter, and joy!"
	DateLinePrefix = "Birthday Twins for "
)

//go:embed card.html.tmpl
var cardSource string

var cardTemplate = template.Must(template.New("card").Parse(cardSource))

// PlaceholderFunc 는 사진이 없는 사람의 대체 이미지 URL 을 만든다.
type PlaceholderFunc func(name string, v avatar.Variant) string

type celebrityView struct {
	Name        string
	Description string
	Photo       template.URL
	Fallback    template.URL
}

type cardView struct {
	FriendName     string
	FriendPhoto    template.URL
	FriendFallback template.URL
	Wish           string
	DateLine       string
	ThemeName      models.Theme
	Effect         string
	FontURL        string
	Vars           template.CSS
	Celebrities    []celebrityView
}

// CardHTML 은 post 를 독립 실행 가능한 HTML 문서로 렌더링한다.
// 사진이 없거나 허용되지 않는 URL 이면 placeholder 가 만든 이미지를 쓴다.
func CardHTML(p models.Post, placeholder PlaceholderFunc) (string, error) {
	theme := p.Style.Theme.Spec()
	font := p.Style.Font.Spec()

	view := cardView{
		FriendName:     p.Friend.Name,
		FriendFallback: imageURL(placeholder(p.Friend.Name, avatar.VariantFriend)),
		Wish:           Wish,
		DateLine:       DateLinePrefix + p.Date.Display(),
		ThemeName:      p.Style.Theme,
		Effect:         theme.BackgroundNote,
		FontURL:        font.GoogleFontsURL,
		Vars:           cssVars(theme, font),
	}
	view.FriendPhoto = imageURL(p.Friend.Photo)
	if view.FriendPhoto == "" {
		view.FriendPhoto = view.FriendFallback
	}

	for _, c := range p.Celebrities {
		cv := celebrityView{
			Name:        c.Name,
			Description: c.Description,
			Fallback:    imageURL(placeholder(c.Name, avatar.VariantCard)),
			Photo:       imageURL(c.ImageURL),
		}
		if cv.Photo == "" {
			cv.Photo = cv.Fallback
		}
		view.Celebrities = append(view.Celebrities, cv)
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	return buf.String(), nil
}

// imageURL 은 http(s) 주소와 이미지 data URI 만 통과시킨다.
func imageURL(s string) template.URL {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "data:image/"):
		return template.URL(s)
	default:
		return ""
	}
}

// cssVars 는 고정 테이블 값만으로 만든다. 사용자 입력은 들어가지 않는다.
func cssVars(theme models.ThemeSpec, font models.FontSpec) template.CSS {
	vars := []string{
		"--gradient: linear-gradient(to bottom right, " + strings.Join(theme.GradientStops, ", ") + ")",
		"--text: " + theme.TextColor,
		"--accent: " + theme.AccentColor,
		"--name: " + theme.NameColor,
		"--overlay: " + theme.OverlayColor,
		"--shadow: " + theme.ShadowColor,
		"--font: " + font.Family,
		"--spacing: " + font.LetterSpacing,
		"--heading-spacing: " + font.HeadingSpacing,
	}
	return template.CSS(strings.Join(vars, "; ") + ";")
}
