package requests

type Navigation struct {
	ClientKey string `validate:"required,max=128"`
	Role      string `validate:"required,role"`
}
