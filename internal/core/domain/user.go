package domain

type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
