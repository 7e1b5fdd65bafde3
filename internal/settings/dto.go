package settings

// UpdateSettingsDTO overwrites the singleton. Fields map 1:1 onto the
// stored record; omitted fields reset to empty.
type UpdateSettingsDTO struct {
	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline"`
	AboutText    string `json:"aboutText"`
	ContactEmail string `json:"contactEmail"`
	GithubURL    string `json:"githubUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
}
