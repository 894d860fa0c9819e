package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("doctor", "governmentId", "Passport.PDF")

	assert.True(t, strings.HasPrefix(key, "doctor/governmentId/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotEqual(t, key, GenerateObjectKey("doctor", "governmentId", "Passport.PDF"))
}
