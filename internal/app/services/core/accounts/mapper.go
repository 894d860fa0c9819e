package accounts

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"
)

// displayNameFields are tried in order; people sign up with a full name,
// organisations with their own name.
var displayNameFields = []string{
	models.FieldFullName,
	models.FieldLaboratoryName,
	models.FieldPharmacyName,
}

// accountFields are lifted out of the profile map onto the account itself.
var accountFields = map[string]bool{
	models.FieldEmail:           true,
	models.FieldPassword:        true,
	models.FieldConfirmPassword: true,
	models.FieldPhoneNumber:     true,
}

func displayName(draft *models.FormDraft) string {
	for _, field := range displayNameFields {
		if name := strings.TrimSpace(draft.Value(field)); name != "" {
			return name
		}
	}
	return draft.Value(models.FieldEmail)
}

func normalizedEmail(draft *models.FormDraft) string {
	return strings.ToLower(strings.TrimSpace(draft.Value(models.FieldEmail)))
}

// buildAccount maps a validated draft onto an account record. Passwords are
// never copied; the caller sets PasswordHash.
func buildAccount(id string, draft *models.FormDraft) *models.Account {
	account := &models.Account{
		ID:          id,
		Role:        draft.Role,
		Email:       normalizedEmail(draft),
		DisplayName: displayName(draft),
		PhoneNumber: draft.Value(models.FieldPhoneNumber),
		Profile:     make(map[string]string),
		Selections:  make(map[string][]string),
		Flags:       make(map[string]bool),
		Attachments: make(map[string]models.StoredAttachment),
	}

	for name, value := range draft.Values {
		if accountFields[name] || value == "" {
			continue
		}
		account.Profile[name] = value
	}
	for name, values := range draft.Selections {
		account.Selections[name] = append([]string(nil), values...)
	}
	for name, value := range draft.Flags {
		account.Flags[name] = value
	}

	account.SetCreatedAtUpdatedAt()
	return account
}

func buildReceipt(account *models.Account) *models.AccountReceipt {
	return &models.AccountReceipt{
		AccountID:   account.ID,
		Role:        account.Role,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		CreatedAt:   account.CreatedAt,
	}
}

// describeFiles records the files of a draft without an object key.
func describeFiles(files map[string]*models.FileAttachment) map[string]models.StoredAttachment {
	described := make(map[string]models.StoredAttachment, len(files))
	for field, file := range files {
		if file == nil {
			continue
		}
		described[field] = models.StoredAttachment{Name: file.Name, MimeType: file.MimeType, Size: file.Size}
	}
	return described
}

// buildAttachmentLinks lists attachments in field order. linkFor returns the
// download link of one attachment, or "" when there is none.
func buildAttachmentLinks(attachments map[string]models.StoredAttachment, linkFor func(models.StoredAttachment) string) []models.AttachmentLink {
	if len(attachments) == 0 {
		return nil
	}

	fields := make([]string, 0, len(attachments))
	for field := range attachments {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	links := make([]models.AttachmentLink, 0, len(fields))
	for _, field := range fields {
		attachment := attachments[field]
		link := models.AttachmentLink{
			Field:     field,
			Name:      attachment.Name,
			MimeType:  attachment.MimeType,
			Size:      attachment.Size,
			SizeLabel: utils.FormatFileSize(attachment.Size),
		}
		if linkFor != nil {
			link.URL = linkFor(attachment)
		}
		links = append(links, link)
	}
	return links
}

func buildSession(sessionID, accountID string, role models.Role, email string, rememberMe bool, expiry time.Duration) *models.Session {
	return &models.Session{
		SessionID:  sessionID,
		AccountID:  accountID,
		Role:       role,
		Email:      email,
		RememberMe: rememberMe,
		ExpiresAt:  time.Now().Add(expiry),
	}
}
