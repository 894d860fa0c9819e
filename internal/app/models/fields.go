package models

// Form field names shared by the schemas, the validator and the account mapper.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldPhoneNumber     = "phoneNumber"
	FieldAddress         = "address"
	FieldAgreeToTerms    = "agreeToTerms"
	FieldRememberMe      = "rememberMe"
	FieldProfilePicture  = "profilePicture"
	FieldGovernmentID    = "governmentId"

	FieldLicenseNumber     = "licenseNumber"
	FieldSpecialization    = "specialization"
	FieldYearsExperience   = "yearsExperience"
	FieldConsultationFees  = "consultationFees"
	FieldWorkAddress       = "workAddress"
	FieldHospitalName      = "hospitalName"
	FieldAvailabilityHours = "availabilityHours"

	FieldDateOfBirth           = "dateOfBirth"
	FieldGender                = "gender"
	FieldBloodGroup            = "bloodGroup"
	FieldEmergencyContactName  = "emergencyContactName"
	FieldEmergencyContactPhone = "emergencyContactPhone"
	FieldHealthInsurance       = "healthInsurance"
	FieldMedicalHistory        = "medicalHistory"

	FieldLaboratoryName           = "laboratoryName"
	FieldLabRegistrationNumber    = "labRegistrationNumber"
	FieldWorkingHours             = "workingHours"
	FieldTestsOffered             = "testsOffered"
	FieldAccreditationCertificate = "accreditationCertificate"

	FieldPharmacyName               = "pharmacyName"
	FieldPharmacyRegistrationNumber = "pharmacyRegistrationNumber"
	FieldPharmacyLicenseNumber      = "pharmacyLicenseNumber"
	FieldPharmacistName             = "pharmacistName"
	FieldPharmacistLicenseNumber    = "pharmacistLicenseNumber"
	FieldOpeningHours               = "openingHours"
	FieldClosingHours               = "closingHours"
	FieldDeliveryAvailable          = "deliveryAvailable"
)

// IsSecretField reports whether the field holds a password and must be kept
// byte for byte.
func IsSecretField(name string) bool {
	return name == FieldPassword || name == FieldConfirmPassword
}
