package settings

import "time"

// SiteSettings is a singleton row with a fixed id.
const SingletonID = "singleton"

type SiteSettings struct {
	ID           string    `gorm:"primaryKey"`
	SiteName     string    `gorm:"column:site_name"`
	Tagline      string    `gorm:"column:tagline"`
	AboutText    string    `gorm:"column:about_text"`
	ContactEmail string    `gorm:"column:contact_email"`
	GithubURL    string    `gorm:"column:github_url"`
	LinkedinURL  string    `gorm:"column:linkedin_url"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
