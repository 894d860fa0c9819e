package constvars

// Rule identifiers reported with every form and file rejection.
const (
	RuleMissingRequiredField    = "missing-required-field"
	RulePasswordMismatch        = "password-mismatch"
	RulePasswordTooShort        = "password-too-short"
	RuleMalformedEmail          = "malformed-email"
	RuleTermsNotAccepted        = "terms-not-accepted"
	RuleRoleConstraintViolation = "role-constraint-violation"
	RuleInvalidOption           = "invalid-option"
	RuleFileMissing             = "file-missing"
	RuleFileTypeRejected        = "file-type-rejected"
	RuleFileTooLarge            = "file-too-large"
	RuleSubmissionFailed        = "submission-failed"
)
