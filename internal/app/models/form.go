package models

import (
	"bytes"
	"io"
)

type FieldKind string

const (
	FieldKindText        FieldKind = "text"
	FieldKindEmail       FieldKind = "email"
	FieldKindPassword    FieldKind = "password"
	FieldKindPhone       FieldKind = "tel"
	FieldKindDate        FieldKind = "date"
	FieldKindTime        FieldKind = "time"
	FieldKindNumber      FieldKind = "number"
	FieldKindTextarea    FieldKind = "textarea"
	FieldKindSelect      FieldKind = "select"
	FieldKindCheckbox    FieldKind = "checkbox"
	FieldKindMultiSelect FieldKind = "multiselect"
	FieldKindFile        FieldKind = "file"
)

// IsValue reports whether the field is carried in FormDraft.Values.
func (k FieldKind) IsValue() bool {
	switch k {
	case FieldKindCheckbox, FieldKindMultiSelect, FieldKindFile:
		return false
	}
	return true
}

type FileConstraint struct {
	AllowedTypes []string `json:"allowed_types"`
	MaxSizeMB    int      `json:"max_size_mb"`
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormField struct {
	Name        string          `json:"name"`
	Label       string          `json:"label"`
	Kind        FieldKind       `json:"kind"`
	Required    bool            `json:"required"`
	Placeholder string          `json:"placeholder,omitempty"`
	Options     []FieldOption   `json:"options,omitempty"`
	Constraint  *FileConstraint `json:"constraint,omitempty"`
}

func (f FormField) HasOption(value string) bool {
	for _, option := range f.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

type FormSchema struct {
	Role     Role        `json:"role"`
	Action   string      `json:"action"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Fields   []FormField `json:"fields"`
}

func (s *FormSchema) Field(name string) (FormField, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FormField{}, false
}

type FileDescriptor struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

type FileAttachment struct {
	FileDescriptor
	Content []byte `json:"-"`
}

func (a *FileAttachment) Reader() io.Reader {
	return bytes.NewReader(a.Content)
}

// FormDraft holds the in-progress values of one form. Selections keep
// insertion order and never contain duplicates.
type FormDraft struct {
	Role       Role                       `json:"role"`
	Values     map[string]string          `json:"values"`
	Flags      map[string]bool            `json:"flags"`
	Selections map[string][]string        `json:"selections"`
	Files      map[string]*FileAttachment `json:"-"`
}

func NewFormDraft(role Role) *FormDraft {
	draft := &FormDraft{Role: role}
	draft.Reset()
	return draft
}

func (d *FormDraft) Reset() {
	d.Values = make(map[string]string)
	d.Flags = make(map[string]bool)
	d.Selections = make(map[string][]string)
	d.Files = make(map[string]*FileAttachment)
}

func (d *FormDraft) Value(name string) string {
	return d.Values[name]
}

// Toggle adds option to the named selection, or removes it when present.
func (d *FormDraft) Toggle(name, option string) {
	current := d.Selections[name]
	for i, selected := range current {
		if selected == option {
			d.Selections[name] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	d.Selections[name] = append(current, option)
}

// Clone returns a copy that shares no maps with d. File contents are shared.
func (d *FormDraft) Clone() *FormDraft {
	clone := NewFormDraft(d.Role)
	for key, value := range d.Values {
		clone.Values[key] = value
	}
	for key, value := range d.Flags {
		clone.Flags[key] = value
	}
	for key, values := range d.Selections {
		clone.Selections[key] = append([]string(nil), values...)
	}
	for key, file := range d.Files {
		clone.Files[key] = file
	}
	return clone
}

type SubmissionState string

const (
	SubmissionStateIdle       SubmissionState = "idle"
	SubmissionStateSubmitting SubmissionState = "submitting"
	SubmissionStateError      SubmissionState = "error"
)
