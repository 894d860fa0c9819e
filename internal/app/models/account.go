package models

import "time"

type Account struct {
	ID           string                      `json:"id" bson:"_id"`
	Role         Role                        `json:"role" bson:"role"`
	Email        string                      `json:"email" bson:"email"`
	PasswordHash string                      `json:"-" bson:"passwordHash"`
	DisplayName  string                      `json:"displayName" bson:"displayName"`
	PhoneNumber  string                      `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Profile      map[string]string           `json:"profile,omitempty" bson:"profile,omitempty"`
	Selections   map[string][]string         `json:"selections,omitempty" bson:"selections,omitempty"`
	Flags        map[string]bool             `json:"flags,omitempty" bson:"flags,omitempty"`
	Attachments  map[string]StoredAttachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
	TimeModel    `bson:",inline"`
}

// StoredAttachment is an uploaded file as recorded on its account.
type StoredAttachment struct {
	ObjectKey string `json:"object_key" bson:"objectKey"`
	Name      string `json:"name" bson:"name"`
	MimeType  string `json:"mime_type" bson:"mimeType"`
	Size      int64  `json:"size" bson:"size"`
}

type AccountReceipt struct {
	AccountID   string    `json:"account_id"`
	Role        Role      `json:"role"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`

	// Attachments lists uploaded files in field order.
	Attachments []AttachmentLink `json:"attachments,omitempty"`
}

// AttachmentLink describes one uploaded file on a receipt. URL is a time
// limited download link and is empty when none could be issued.
type AttachmentLink struct {
	Field     string `json:"field"`
	Name      string `json:"name"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"size_label"`
	URL       string `json:"url,omitempty"`
}

// AccountRegisteredEvent is published once an account has been stored.
type AccountRegisteredEvent struct {
	Event       string    `json:"event"`
	AccountID   string    `json:"account_id"`
	Role        Role      `json:"role"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	OccurredAt  time.Time `json:"occurred_at"`
}
