package models

// Consultant is a named agent allowed to log calls and submit reports.
// Name never changes after creation.
type Consultant struct {
	UserID   string `json:"user_id" yaml:"user_id"`
	Name     string `json:"name" yaml:"name"`
	Password string `json:"password" yaml:"password"`
}

// ConsultantRename carries the mutable parts of a consultant. Empty fields are kept.
type ConsultantRename struct {
	NewUserID   string
	NewPassword string
}

// IsEmpty reports whether the rename changes nothing.
func (r ConsultantRename) IsEmpty() bool {
	return r.NewUserID == "" && r.NewPassword == ""
}
