package requests

type Login struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// Signup is the JSON form of a signup submission. Multipart submissions are
// mapped onto the same shape by the controller.
type Signup struct {
	Values     map[string]string   `json:"values"`
	Flags      map[string]bool     `json:"flags"`
	Selections map[string][]string `json:"selections"`
}
