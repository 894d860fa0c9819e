package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Role-related messages
	GetRolesSuccessMessage      = "get roles successfully"
	GetRoleSuccessMessage       = "get role successfully"
	NavigationSuccessMessage    = "navigation resolved successfully"
	GetLoginFormSuccessMessage  = "get login form successfully"
	GetSignupFormSuccessMessage = "get signup form successfully"

	// Auth messages
	LoginSuccessMessage      = "successfully login"
	SignupSuccessMessage     = "account created successfully"
	GetSessionSuccessMessage = "get session successfully"
	LogoutSuccessMessage     = "successfully logout"
)
