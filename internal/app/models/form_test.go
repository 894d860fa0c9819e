package models

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormDraftToggle(t *testing.T) {
	draft := NewFormDraft(RoleLab)

	draft.Toggle("testsOffered", "MRI")
	draft.Toggle("testsOffered", "ECG")
	draft.Toggle("testsOffered", "X-Ray")
	assert.Equal(t, []string{"MRI", "ECG", "X-Ray"}, draft.Selections["testsOffered"])

	draft.Toggle("testsOffered", "ECG")
	assert.Equal(t, []string{"MRI", "X-Ray"}, draft.Selections["testsOffered"])

	draft.Toggle("testsOffered", "ECG")
	assert.Equal(t, []string{"MRI", "X-Ray", "ECG"}, draft.Selections["testsOffered"])
}

func TestFormDraftClone(t *testing.T) {
	draft := NewFormDraft(RoleDoctor)
	draft.Values["email"] = "a@b.co"
	draft.Flags["agreeToTerms"] = true
	draft.Toggle("specialization", "cardiology")

	clone := draft.Clone()
	clone.Values["email"] = "changed@b.co"
	clone.Toggle("specialization", "neurology")

	assert.Equal(t, "a@b.co", draft.Values["email"])
	assert.Equal(t, []string{"cardiology"}, draft.Selections["specialization"])
	assert.True(t, clone.Flags["agreeToTerms"])
}

func TestFormDraftReset(t *testing.T) {
	draft := NewFormDraft(RolePatient)
	draft.Values["fullName"] = "Jane"
	draft.Files["profilePicture"] = &FileAttachment{Content: []byte("x")}

	draft.Reset()

	assert.Empty(t, draft.Values)
	assert.Empty(t, draft.Files)
	assert.Equal(t, RolePatient, draft.Role)
}

func TestFileAttachmentReader(t *testing.T) {
	attachment := &FileAttachment{Content: []byte("%PDF-1.7")}

	first, _ := io.ReadAll(attachment.Reader())
	second, _ := io.ReadAll(attachment.Reader())

	assert.Equal(t, first, second)
}

func TestFieldKindIsValue(t *testing.T) {
	assert.True(t, FieldKindEmail.IsValue())
	assert.True(t, FieldKindSelect.IsValue())
	assert.False(t, FieldKindCheckbox.IsValue())
	assert.False(t, FieldKindMultiSelect.IsValue())
	assert.False(t, FieldKindFile.IsValue())
}
