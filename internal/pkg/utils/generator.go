package utils

import (
	"curasync-service/internal/pkg/constvars"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.NewString()
}

// GenerateObjectKey builds the storage key of an attachment:
// {role}/{field}/{uuid}{ext}, keeping the original file extension.
func GenerateObjectKey(role, field, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf(constvars.AttachmentObjectFormat, role, field, uuid.NewString(), extension)
}
