package models

import "strings"

type Role string

const (
	RoleDoctor   Role = "doctor"
	RolePatient  Role = "patient"
	RoleLab      Role = "lab"
	RolePharmacy Role = "pharmacy"
)

const (
	ActionLogin  = "login"
	ActionSignup = "signup"
)

// Roles lists every portal role in display order.
var Roles = []Role{RoleDoctor, RolePatient, RoleLab, RolePharmacy}

func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Roles {
		if role == known {
			return role, true
		}
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Title() string {
	switch r {
	case RoleDoctor:
		return "Doctor"
	case RolePatient:
		return "Patient"
	case RoleLab:
		return "Laboratory"
	case RolePharmacy:
		return "Pharmacy"
	}
	return string(r)
}

// Path returns the route of the given action for the role, e.g. /lab/login.
func (r Role) Path(action string) string {
	return "/" + string(r) + "/" + action
}

type RoleCard struct {
	Role        Role   `json:"role"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	AriaLabel   string `json:"aria_label"`
	LoginPath   string `json:"login_path"`
	SignupPath  string `json:"signup_path"`
}
