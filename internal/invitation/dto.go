package invitation

// CreateInvitationDTO is the admin-facing payload for inviting an email.
type CreateInvitationDTO struct {
	Email  string   `json:"email"`
	AppIDs []string `json:"app_ids"`
}

// AcceptInvitationDTO carries the invitee's chosen profile.
type AcceptInvitationDTO struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
