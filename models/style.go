package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTheme = errors.New("invalid theme")
	ErrInvalidFont  = errors.New("invalid font")
)

type Theme string

const (
	ThemeSunset Theme = "sunset"
	ThemeOcean  Theme = "ocean"
	ThemeGalaxy Theme = "galaxy"
)

type Font string

const (
	FontPoppins  Font = "poppins"
	FontPacifico Font = "pacifico"
	FontAnton    Font = "anton"
)

var Themes = []Theme{ThemeSunset, ThemeOcean, ThemeGalaxy}
var Fonts = []Font{FontPoppins, FontPacifico, FontAnton}

// ThemeSpec 는 테마별 카드 색상 값이다.
type ThemeSpec struct {
	Label          string   `json:"label"`
	GradientStops  []string `json:"gradient_stops"`
	TextColor      string   `json:"text_color"`
	AccentColor    string   `json:"accent_color"`
	NameColor      string   `json:"name_color"`
	OverlayColor   string   `json:"overlay_color"`
	ShadowColor    string   `json:"shadow_color"`
	BackgroundNote string   `json:"background_effect"`
}

// FontSpec 는 폰트별 CSS 값이다.
type FontSpec struct {
	Label          string `json:"label"`
	Family         string `json:"family"`
	GoogleFontsURL string `json:"google_fonts_url"`
	LetterSpacing  string `json:"letter_spacing"`
	HeadingSpacing string `json:"heading_spacing"`
}

var themeSpecs = map[Theme]ThemeSpec{
	ThemeSunset: {
		Label:          "Sunset",
		GradientStops:  []string{"#fb923c", "#ef4444", "#db2777"},
		TextColor:      "#ffffff",
		AccentColor:    "#fde047",
		NameColor:      "#fef08a",
		OverlayColor:   "rgba(0,0,0,0.2)",
		ShadowColor:    "rgba(239,68,68,0.5)",
		BackgroundNote: "sun-rays",
	},
	ThemeOcean: {
		Label:          "Ocean",
		GradientStops:  []string{"#2dd4bf", "#06b6d4", "#2563eb"},
		TextColor:      "#ffffff",
		AccentColor:    "#a5f3fc",
		NameColor:      "#ffffff",
		OverlayColor:   "rgba(0,0,0,0.2)",
		ShadowColor:    "rgba(6,182,212,0.5)",
		BackgroundNote: "bubbles",
	},
	ThemeGalaxy: {
		Label:          "Galaxy",
		GradientStops:  []string{"#111827", "#000000", "#1e3a8a"},
		TextColor:      "#d1d5db",
		AccentColor:    "#f472b6",
		NameColor:      "#ffffff",
		OverlayColor:   "rgba(255,255,255,0.1)",
		ShadowColor:    "rgba(244,114,182,0.5)",
		BackgroundNote: "stars",
	},
}

var fontSpecs = map[Font]FontSpec{
	FontPoppins: {
		Label:          "Poppins",
		Family:         "'Poppins', sans-serif",
		GoogleFontsURL: "https://fonts.googleapis.com/css2?family=Poppins:wght@400;700&display=swap",
		LetterSpacing:  "normal",
		HeadingSpacing: "normal",
	},
	FontPacifico: {
		Label:          "Pacifico",
		Family:         "'Pacifico', cursive",
		GoogleFontsURL: "https://fonts.googleapis.com/css2?family=Pacifico&display=swap",
		LetterSpacing:  "normal",
		HeadingSpacing: "normal",
	},
	FontAnton: {
		Label:          "Anton",
		Family:         "'Anton', sans-serif",
		GoogleFontsURL: "https://fonts.googleapis.com/css2?family=Anton&display=swap",
		LetterSpacing:  "0.05em",
		HeadingSpacing: "0.1em",
	},
}

func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := themeSpecs[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

func ParseFont(s string) (Font, error) {
	f := Font(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := fontSpecs[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFont, s)
	}
	return f, nil
}

func (t Theme) Spec() ThemeSpec {
	return themeSpecs[t]
}

func (f Font) Spec() FontSpec {
	return fontSpecs[f]
}

// Style 은 테마와 폰트 선택이다.
type Style struct {
	Theme Theme `json:"theme"`
	Font  Font  `json:"font"`
}

func DefaultStyle() Style {
	return Style{Theme: ThemeSunset, Font: FontPoppins}
}

// ParseStyle 은 빈 값을 기본값으로 채운 뒤 두 값을 검증한다.
func ParseStyle(theme, font string) (Style, error) {
	s := DefaultStyle()
	if strings.TrimSpace(theme) != "" {
		t, err := ParseTheme(theme)
		if err != nil {
			return Style{}, err
		}
		s.Theme = t
	}
	if strings.TrimSpace(font) != "" {
		f, err := ParseFont(font)
		if err != nil {
			return Style{}, err
		}
		s.Font = f
	}
	return s, nil
}
