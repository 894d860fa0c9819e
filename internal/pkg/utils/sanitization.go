package utils

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if v = strings.TrimSpace(v); v != "" {
			sanitizedArray = append(sanitizedArray, v)
		}
	}
	return sanitizedArray
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

// SanitizeSignupRequest trims every value except passwords, lowercases the
// email and drops blank selection entries.
func SanitizeSignupRequest(input *requests.Signup) {
	for name, value := range input.Values {
		if models.IsSecretField(name) {
			continue
		}
		value = strings.TrimSpace(value)
		if name == models.FieldEmail {
			value = strings.ToLower(value)
		}
		input.Values[name] = value
	}

	for name, values := range input.Selections {
		input.Selections[name] = cleanWhiteSpaceFromEachStringOfAnArray(values)
	}
}
