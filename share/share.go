// Package share builds the social-share intents offered next to a finished card.
package share

import (
	"net/url"
	"strings"
	"unicode"
)

const InstagramInstructions = "To share on Instagram, please download the image first and then upload it from your device!"

type Links struct {
	Text             string `json:"text"`
	Twitter          string `json:"twitter"`
	Facebook         string `json:"facebook"`
	Instagram        string `json:"instagram"`
	DownloadFilename string `json:"download_filename"`
}

func Message(friendName string) string {
	return "Happy Birthday to my amazing friend " + friendName + "! 🎉"
}

// Build 는 pageURL 을 공유 대상 링크로 삼아 모든 공유 링크를 만든다.
func Build(friendName, pageURL string) Links {
	text := escape(Message(friendName))
	page := escape(pageURL)

	return Links{
		Text:             Message(friendName),
		Twitter:          "https://twitter.com/intent/tweet?text=" + text + "&url=" + page,
		Facebook:         "https://www.facebook.com/sharer/sharer.php?u=" + page + "&quote=" + text,
		Instagram:        InstagramInstructions,
		DownloadFilename: DownloadFilename(friendName),
	}
}

// DownloadFilename 은 이름을 소문자로 바꾸고 공백 문자를 하나씩 '-' 로 치환한다.
func DownloadFilename(friendName string) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, strings.ToLower(friendName))
	return "birthday-post-for-" + slug + ".png"
}

// escape 는 쿼리 값 인코딩에서 공백을 %20 으로 쓴다.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
