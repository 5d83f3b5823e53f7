package dto

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	FullName string `json:"full_name" validate:"max=255"`
}

// LoginResponse is the login payload: the identity the admin panel shows in
// its header plus the bearer token for subsequent calls.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Token    string `json:"token"`
}

type UpdateSettingRequest struct {
	Key   string `json:"setting_key" validate:"required,min=1,max=128"`
	Value string `json:"setting_value"`
	Type  string `json:"setting_type" validate:"omitempty,oneof=text number boolean json image"`
}
