package domain

// TeamMember is a staff profile shown on the public site and managed from
// the admin dashboard. The only hard-deleted entity in the system.
type TeamMember struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"is_active"`
	Bio      string `json:"bio,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
