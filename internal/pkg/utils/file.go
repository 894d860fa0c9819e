package utils

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// CheckFile accepts file when its declared MIME type is in the allow-list
// and its size does not exceed the ceiling. The size limit is inclusive.
func CheckFile(field string, file *models.FileDescriptor, constraint models.FileConstraint) error {
	if file == nil {
		return exceptions.ErrFileRule(constvars.RuleFileMissing, field, constvars.FileMessageMissing)
	}

	if !isAllowedType(file.MimeType, constraint.AllowedTypes) {
		message := fmt.Sprintf(constvars.FileMessageTypeInvalid, strings.Join(constraint.AllowedTypes, ", "))
		return exceptions.ErrFileRule(constvars.RuleFileTypeRejected, field, message)
	}

	maxSizeInBytes := int64(constraint.MaxSizeMB) * constvars.BytesPerMegabyte
	if file.Size > maxSizeInBytes {
		message := fmt.Sprintf(constvars.FileMessageTooLarge, constraint.MaxSizeMB)
		return exceptions.ErrFileRule(constvars.RuleFileTooLarge, field, message)
	}

	return nil
}

func isAllowedType(mimeType string, allowedTypes []string) bool {
	for _, allowed := range allowedTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

// FormatFileSize renders a byte count as "x.xx KB" below one megabyte and
// "x.xx MB" from there on.
func FormatFileSize(bytes int64) string {
	if bytes < constvars.BytesPerMegabyte {
		return fmt.Sprintf("%.2f KB", float64(bytes)/constvars.BytesPerKilobyte)
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/constvars.BytesPerMegabyte)
}

// ResolveMimeType returns the declared type of an uploaded part. Parts sent
// without a type, or as a generic octet stream, are sniffed from content.
func ResolveMimeType(declared string, content []byte) string {
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if declared != "" && declared != constvars.MIMEOctetStream {
		return declared
	}
	detected := mimetype.Detect(content)
	return strings.Split(detected.String(), ";")[0]
}
