package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"birthday-twins/avatar"
	"birthday-twins/birthdays"
	"birthday-twins/config"
	"birthday-twins/models"
	"birthday-twins/photo"
	"birthday-twins/post"
	"birthday-twins/renderer"
	"birthday-twins/share"
)

func newCardCmd(load loadPipeline) *cobra.Command {
	var (
		date      string
		friend    string
		photoPath string
		selected  []string
		theme     string
		font      string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Render a birthday card to an HTML or PNG file",
		Long: `card looks up the date, assembles the post and writes the card.
The output format follows the --out extension: .html or .png (needs Chrome).
Without --out the PNG is written to the share download file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 사진 변환이나 조회 비용을 쓰기 전에 이름부터 검사한다.
			f := models.Friend{Name: friend}
			if !f.HasName() {
				return post.ErrEmptyFriendName
			}

			key, err := models.ParseDateKey(date)
			if err != nil {
				return err
			}
			style, err := models.ParseStyle(theme, font)
			if err != nil {
				return err
			}
			if photoPath != "" {
				file, err := os.Open(photoPath)
				if err != nil {
					return err
				}
				defer file.Close()
				if f.Photo, err = photo.Normalize(file); err != nil {
					return err
				}
			}

			p, err := load(cmd)
			if err != nil {
				return err
			}
			res, err := p.Birthdays.Fetch(cmd.Context(), key, birthdays.FetchOptions{})
			if err != nil {
				return err
			}

			doc, err := post.Assemble(f, models.NewSelection(selected...), res.Celebrities, key, style)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = defaultOutPath(doc.Friend.Name)
			}
			html, err := renderer.CardHTML(doc, avatar.DataURI)
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(filepath.Ext(outPath)) {
			case ".html", ".htm":
				data = []byte(html)
			case ".png":
				data, err = renderer.NewScreenshotter(config.GetConfig().Renderer).CardPNG(cmd.Context(), html)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output extension: %s", outPath)
			}

			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d twins)\n", outPath, len(doc.Celebrities))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date as MM-DD or YYYY-MM-DD")
	cmd.Flags().StringVarP(&friend, "friend", "f", "", "friend's name")
	cmd.Flags().StringVar(&photoPath, "photo", "", "friend's photo (png, jpeg, gif, webp)")
	cmd.Flags().StringArrayVarP(&selected, "select", "s", nil, "celebrity to feature, in order (up to 3, repeatable)")
	cmd.Flags().StringVar(&theme, "theme", "", "sunset | ocean | galaxy")
	cmd.Flags().StringVar(&font, "font", "", "poppins | pacifico | anton")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (.html or .png)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

// defaultOutPath 는 다운로드 파일명을 현재 디렉터리 안의 파일 하나로 만든다.
// 이름에 든 경로 구분자는 '-' 로 바꾼다.
func defaultOutPath(friendName string) string {
	name := share.DownloadFilename(friendName)
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator {
			return '-'
		}
		return r
	}, name)
}
