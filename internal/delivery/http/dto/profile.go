package dto

type ProfileNamesRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AvatarRequest struct {
	AvatarRef string `json:"avatar_ref"`
}
