package services

import (
	"birthday-twins/avatar"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/imageresolver"
	"birthday-twins/models"
	"birthday-twins/renderer"
	"birthday-twins/session"
	"birthday-twins/share"
)

func mapCelebrities(list []models.Celebrity, avatars *avatar.Builder, v avatar.Variant) []dto.CelebrityDTO {
	out := make([]dto.CelebrityDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CelebrityDTO{
			Name:        c.Name,
			Description: c.Description,
			ImageURL:    c.ImageURL,
			Placeholder: avatars.URL(c.Name, v),
		})
	}
	return out
}

func mapReports(reports []imageresolver.Report) []dto.ImageReportDTO {
	if len(reports) == 0 {
		return nil
	}
	out := make([]dto.ImageReportDTO, 0, len(reports))
	for _, r := range reports {
		stages := make([]dto.ImageStageDTO, 0, len(r.Stages))
		for _, st := range r.Stages {
			stages = append(stages, dto.ImageStageDTO{Provider: st.Provider, Status: string(st.Status), Error: st.Error})
		}
		out = append(out, dto.ImageReportDTO{Name: r.Name, Source: r.Source, Stages: stages})
	}
	return out
}

func mapPost(p models.Post, avatars *avatar.Builder, pageURL string) dto.PostDTO {
	links := share.Build(p.Friend.Name, pageURL)
	return dto.PostDTO{
		ID:          p.ID,
		Friend:      dto.FriendDTO{Name: p.Friend.Name, Photo: p.Friend.Photo},
		Celebrities: mapCelebrities(p.Celebrities, avatars, avatar.VariantCard),
		Date:        p.Date.String(),
		DateLine:    renderer.DateLinePrefix + p.Date.Display(),
		Theme:       string(p.Style.Theme),
		Font:        string(p.Style.Font),
		CreatedAt:   p.CreatedAt,
		Share: dto.ShareDTO{
			Text:             links.Text,
			Twitter:          links.Twitter,
			Facebook:         links.Facebook,
			Instagram:        links.Instagram,
			DownloadFilename: links.DownloadFilename,
		},
	}
}

func mapSession(st session.State, avatars *avatar.Builder, pageURL string) dto.SessionDTO {
	out := dto.SessionDTO{
		ID:          st.ID,
		Status:      string(st.Status),
		Generation:  st.Generation,
		Celebrities: mapCelebrities(st.Celebrities, avatars, avatar.VariantList),
		Selection:   st.Selection,
		Friend:      dto.FriendDTO{Name: st.Friend.Name, Photo: st.Friend.Photo},
		Theme:       string(st.Style.Theme),
		Font:        string(st.Style.Font),
		CanGenerate: st.CanGenerate(),
		Error:       st.Error,
		UpdatedAt:   st.UpdatedAt,
	}
	if !st.Date.IsZero() {
		out.Date = st.Date.String()
	}
	if st.Post != nil {
		p := mapPost(*st.Post, avatars, pageURL)
		out.Post = &p
	}
	return out
}
