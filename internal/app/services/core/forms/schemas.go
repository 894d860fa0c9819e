package forms

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"fmt"
)

// LabTestCatalog is the fixed set of tests a laboratory can offer.
var LabTestCatalog = []string{
	"Blood Tests",
	"Urine Analysis",
	"X-Ray",
	"MRI",
	"CT Scan",
	"Ultrasound",
	"ECG",
	"Pathology",
	"Microbiology",
}

type Limits struct {
	ProfilePictureMaxMB int
	DocumentMaxMB       int
}

// Registry holds one signup and one login schema per role. Schemas are
// shared and must be treated as read-only.
type Registry struct {
	signup map[models.Role]*models.FormSchema
	login  map[models.Role]*models.FormSchema
}

func NewRegistry(limits Limits) *Registry {
	registry := &Registry{
		signup: make(map[models.Role]*models.FormSchema, len(models.Roles)),
		login:  make(map[models.Role]*models.FormSchema, len(models.Roles)),
	}
	for _, role := range models.Roles {
		registry.signup[role] = buildSignupSchema(role, limits)
		registry.login[role] = buildLoginSchema(role)
	}
	return registry
}

func (r *Registry) SignupSchema(role models.Role) (*models.FormSchema, error) {
	schema, ok := r.signup[role]
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role.String())
	}
	return schema, nil
}

func (r *Registry) LoginSchema(role models.Role) (*models.FormSchema, error) {
	schema, ok := r.login[role]
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role.String())
	}
	return schema, nil
}

func buildLoginSchema(role models.Role) *models.FormSchema {
	return &models.FormSchema{
		Role:     role,
		Action:   models.ActionLogin,
		Title:    "Welcome back!",
		Subtitle: fmt.Sprintf("%s Login - Enter your credentials to access your account", role.Title()),
		Fields: []models.FormField{
			{Name: models.FieldEmail, Label: "Email Address", Kind: models.FieldKindEmail, Required: true},
			{Name: models.FieldPassword, Label: "Password", Kind: models.FieldKindPassword, Required: true},
			{Name: models.FieldRememberMe, Label: "Remember me", Kind: models.FieldKindCheckbox},
		},
	}
}

func buildSignupSchema(role models.Role, limits Limits) *models.FormSchema {
	profilePicture := &models.FileConstraint{
		AllowedTypes: []string{constvars.MIMEImageJPEG, constvars.MIMEImagePNG},
		MaxSizeMB:    limits.ProfilePictureMaxMB,
	}
	document := &models.FileConstraint{
		AllowedTypes: []string{constvars.MIMEApplicationPDF, constvars.MIMEImageJPEG, constvars.MIMEImagePNG},
		MaxSizeMB:    limits.DocumentMaxMB,
	}

	var fields []models.FormField
	switch role {
	case models.RoleDoctor:
		fields = append(credentialFields(models.FieldFullName, "Full Name"),
			models.FormField{Name: models.FieldLicenseNumber, Label: "Medical License Number", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldSpecialization, Label: "Specialization", Kind: models.FieldKindSelect, Required: true, Options: specializations},
			models.FormField{Name: models.FieldYearsExperience, Label: "Years of Experience", Kind: models.FieldKindNumber, Required: true},
			models.FormField{Name: models.FieldConsultationFees, Label: "Consultation Fees", Kind: models.FieldKindNumber, Required: true},
			models.FormField{Name: models.FieldPhoneNumber, Label: "Phone Number", Kind: models.FieldKindPhone, Required: true},
			models.FormField{Name: models.FieldWorkAddress, Label: "Work Address", Kind: models.FieldKindTextarea, Required: true},
			models.FormField{Name: models.FieldHospitalName, Label: "Hospital Name", Kind: models.FieldKindText},
			models.FormField{Name: models.FieldAvailabilityHours, Label: "Availability Hours", Kind: models.FieldKindText, Required: true, Placeholder: "e.g., Mon-Fri 9AM-5PM"},
			models.FormField{Name: models.FieldProfilePicture, Label: "Profile Picture", Kind: models.FieldKindFile, Constraint: profilePicture},
			models.FormField{Name: models.FieldGovernmentID, Label: "Government ID", Kind: models.FieldKindFile, Constraint: document},
		)
	case models.RolePatient:
		fields = append(credentialFields(models.FieldFullName, "Full Name"),
			models.FormField{Name: models.FieldDateOfBirth, Label: "Date of Birth", Kind: models.FieldKindDate, Required: true},
			models.FormField{Name: models.FieldGender, Label: "Gender", Kind: models.FieldKindSelect, Required: true, Options: genders},
			models.FormField{Name: models.FieldBloodGroup, Label: "Blood Group", Kind: models.FieldKindSelect, Required: true, Options: bloodGroups},
			models.FormField{Name: models.FieldPhoneNumber, Label: "Phone Number", Kind: models.FieldKindPhone, Required: true},
			models.FormField{Name: models.FieldAddress, Label: "Address", Kind: models.FieldKindTextarea, Required: true},
			models.FormField{Name: models.FieldEmergencyContactName, Label: "Emergency Contact Name", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldEmergencyContactPhone, Label: "Emergency Contact Phone", Kind: models.FieldKindPhone, Required: true},
			models.FormField{Name: models.FieldHealthInsurance, Label: "Health Insurance Number", Kind: models.FieldKindText},
			models.FormField{Name: models.FieldMedicalHistory, Label: "Medical History", Kind: models.FieldKindTextarea, Placeholder: "Any pre-existing conditions, allergies, or important medical information"},
			models.FormField{Name: models.FieldProfilePicture, Label: "Profile Picture", Kind: models.FieldKindFile, Constraint: profilePicture},
			models.FormField{Name: models.FieldGovernmentID, Label: "Government ID", Kind: models.FieldKindFile, Constraint: document},
		)
	case models.RoleLab:
		fields = append(credentialFields(models.FieldLaboratoryName, "Laboratory Name"),
			models.FormField{Name: models.FieldLabRegistrationNumber, Label: "Lab Registration Number", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldPhoneNumber, Label: "Phone Number", Kind: models.FieldKindPhone, Required: true},
			models.FormField{Name: models.FieldAddress, Label: "Address", Kind: models.FieldKindTextarea, Required: true},
			models.FormField{Name: models.FieldWorkingHours, Label: "Working Hours", Kind: models.FieldKindText, Required: true, Placeholder: "e.g., Mon-Fri 9AM-5PM"},
			models.FormField{Name: models.FieldTestsOffered, Label: "Tests Offered", Kind: models.FieldKindMultiSelect, Required: true, Options: labTests()},
			models.FormField{Name: models.FieldAccreditationCertificate, Label: "Accreditation Certificate", Kind: models.FieldKindFile, Constraint: document},
		)
	case models.RolePharmacy:
		fields = append(credentialFields(models.FieldPharmacyName, "Pharmacy Name"),
			models.FormField{Name: models.FieldPharmacyRegistrationNumber, Label: "Pharmacy Registration Number", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldPharmacyLicenseNumber, Label: "Pharmacy License Number", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldPharmacistName, Label: "Pharmacist Name", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldPharmacistLicenseNumber, Label: "Pharmacist License Number", Kind: models.FieldKindText, Required: true},
			models.FormField{Name: models.FieldPhoneNumber, Label: "Phone Number", Kind: models.FieldKindPhone, Required: true},
			models.FormField{Name: models.FieldAddress, Label: "Address", Kind: models.FieldKindTextarea, Required: true},
			models.FormField{Name: models.FieldOpeningHours, Label: "Opening Hours", Kind: models.FieldKindText, Required: true, Placeholder: "e.g., 9:00 AM"},
			models.FormField{Name: models.FieldClosingHours, Label: "Closing Hours", Kind: models.FieldKindText, Required: true, Placeholder: "e.g., 6:00 PM"},
			models.FormField{Name: models.FieldDeliveryAvailable, Label: "Delivery Available", Kind: models.FieldKindCheckbox},
			models.FormField{Name: models.FieldProfilePicture, Label: "Profile Picture", Kind: models.FieldKindFile, Constraint: profilePicture},
		)
	}

	fields = append(fields, models.FormField{
		Name:     models.FieldAgreeToTerms,
		Label:    "I agree to the terms & policy",
		Kind:     models.FieldKindCheckbox,
		Required: true,
	})

	return &models.FormSchema{
		Role:     role,
		Action:   models.ActionSignup,
		Title:    "Get Started Now",
		Subtitle: fmt.Sprintf("Create your %s account and start your journey", role.Title()),
		Fields:   fields,
	}
}

// credentialFields are the first four fields of every signup form; only the
// name field differs between people and organisations.
func credentialFields(nameField, nameLabel string) []models.FormField {
	return []models.FormField{
		{Name: nameField, Label: nameLabel, Kind: models.FieldKindText, Required: true},
		{Name: models.FieldEmail, Label: "Email Address", Kind: models.FieldKindEmail, Required: true},
		{Name: models.FieldPassword, Label: "Password", Kind: models.FieldKindPassword, Required: true},
		{Name: models.FieldConfirmPassword, Label: "Confirm Password", Kind: models.FieldKindPassword, Required: true},
	}
}

var specializations = []models.FieldOption{
	{Value: "general", Label: "General Medicine"},
	{Value: "cardiology", Label: "Cardiology"},
	{Value: "dermatology", Label: "Dermatology"},
	{Value: "neurology", Label: "Neurology"},
	{Value: "pediatrics", Label: "Pediatrics"},
	{Value: "psychiatry", Label: "Psychiatry"},
	{Value: "orthopedics", Label: "Orthopedics"},
}

var genders = []models.FieldOption{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "other", Label: "Other"},
}

var bloodGroups = []models.FieldOption{
	{Value: "A+", Label: "A+"},
	{Value: "A-", Label: "A-"},
	{Value: "B+", Label: "B+"},
	{Value: "B-", Label: "B-"},
	{Value: "AB+", Label: "AB+"},
	{Value: "AB-", Label: "AB-"},
	{Value: "O+", Label: "O+"},
	{Value: "O-", Label: "O-"},
}

func labTests() []models.FieldOption {
	options := make([]models.FieldOption, len(LabTestCatalog))
	for i, test := range LabTestCatalog {
		options[i] = models.FieldOption{Value: test, Label: test}
	}
	return options
}
