package responses

type Navigation struct {
	Role     string `json:"role"`
	Location string `json:"location"`
}
