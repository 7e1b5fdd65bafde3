package settings

import (
	"time"

	settingsDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/settings"
)

// SiteSettings is the single site-wide configuration record.
type SiteSettings struct {
	SiteName     string    `json:"siteName"`
	Tagline      string    `json:"tagline"`
	AboutText    string    `json:"aboutText"`
	ContactEmail string    `json:"contactEmail"`
	GithubURL    string    `json:"githubUrl"`
	LinkedinURL  string    `json:"linkedinUrl"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromDataModel(s *settingsDatamodel.SiteSettings) *SiteSettings {
	return &SiteSettings{
		SiteName:     s.SiteName,
		Tagline:      s.Tagline,
		AboutText:    s.AboutText,
		ContactEmail: s.ContactEmail,
		GithubURL:    s.GithubURL,
		LinkedinURL:  s.LinkedinURL,
		UpdatedAt:    s.UpdatedAt,
	}
}
