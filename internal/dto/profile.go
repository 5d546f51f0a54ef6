package dto

// ProfileStatusResponse is returned by GET /me/profile before a profile exists
type ProfileStatusResponse struct {
	ProfileCompleted bool `json:"profileCompleted"`
	KYCVerified      bool `json:"kycVerified"`
}
