package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

func validContact() models.ContactInfo {
	return models.ContactInfo{Email: "budi@example.com", Phone: "081234567890"}
}

func validPassenger() models.PassengerRecord {
	return models.PassengerRecord{
		FirstName:      "Budi",
		LastName:       "Santoso",
		PassportNumber: "A1234567",
		DateOfBirth:    "1990-05-14",
		Gender:         models.GenderMale,
	}
}

func TestValidateAccepted(t *testing.T) {
	result := Validate(validContact(), []models.PassengerRecord{validPassenger()})

	assert.True(t, result.OK)
	assert.Equal(t, -1, result.PassengerIndex)
	assert.Equal(t, -1, result.OtherIndex)
}

func TestValidateContactRequired(t *testing.T) {
	result := Validate(models.ContactInfo{Email: "budi@example.com"}, []models.PassengerRecord{validPassenger()})

	require.False(t, result.OK)
	assert.Equal(t, RuleContactRequired, result.Rule)
	assert.Equal(t, "Mohon lengkapi informasi kontak", result.Message)
	assert.Equal(t, -1, result.PassengerIndex)
}

func TestValidateEmailFormat(t *testing.T) {
	for _, email := range []string{"budi", "budi@", "budi@example", "bu di@example.com", "@example.com"} {
		contact := validContact()
		contact.Email = email

		result := Validate(contact, []models.PassengerRecord{validPassenger()})
		require.False(t, result.OK, email)
		assert.Equal(t, RuleEmailFormat, result.Rule, email)
	}
}

func TestValidatePhoneFormat(t *testing.T) {
	accepted := []string{
		"081234567890",
		"+6281234567890",
		"6281234567890",
		"0812-3456-7890",
		"0812 3456 7890",
	}
	for _, phone := range accepted {
		contact := validContact()
		contact.Phone = phone

		result := Validate(contact, []models.PassengerRecord{validPassenger()})
		assert.True(t, result.OK, phone)
	}

	rejected := []string{"12345", "+1555123456789012", "abc", "91234567890"}
	for _, phone := range rejected {
		contact := validContact()
		contact.Phone = phone

		result := Validate(contact, []models.PassengerRecord{validPassenger()})
		require.False(t, result.OK, phone)
		assert.Equal(t, RulePhoneFormat, result.Rule, phone)
	}
}

func TestValidatePassengerRequired(t *testing.T) {
	second := validPassenger()
	second.PassportNumber = ""

	result := Validate(validContact(), []models.PassengerRecord{validPassenger(), second})

	require.False(t, result.OK)
	assert.Equal(t, RulePassengerRequired, result.Rule)
	assert.Equal(t, 1, result.PassengerIndex)
	assert.Contains(t, result.Message, "penumpang 2")
}

func TestValidateNameFormat(t *testing.T) {
	p := validPassenger()
	p.FirstName = "Budi3"

	result := Validate(validContact(), []models.PassengerRecord{p})

	require.False(t, result.OK)
	assert.Equal(t, RuleNameFormat, result.Rule)
	assert.Equal(t, 0, result.PassengerIndex)
}

func TestValidatePassportFormat(t *testing.T) {
	p := validPassenger()
	p.PassportNumber = "A12"

	result := Validate(validContact(), []models.PassengerRecord{p})

	require.False(t, result.OK)
	assert.Equal(t, RulePassportFormat, result.Rule)
}

func TestValidatePassportComposition(t *testing.T) {
	digitsOnly := validPassenger()
	digitsOnly.PassportNumber = "12345678"

	result := Validate(validContact(), []models.PassengerRecord{digitsOnly})
	require.False(t, result.OK)
	assert.Equal(t, RulePassportComposition, result.Rule)

	lettersOnly := validPassenger()
	lettersOnly.PassportNumber = "ABCDEFG"

	result = Validate(validContact(), []models.PassengerRecord{lettersOnly})
	require.False(t, result.OK)
	assert.Equal(t, RulePassportComposition, result.Rule)
}

func TestValidatePassportIsNormalizedBeforeCheck(t *testing.T) {
	p := validPassenger()
	p.PassportNumber = "  a1234567  "

	result := Validate(validContact(), []models.PassengerRecord{p})
	assert.True(t, result.OK)
}

func TestValidateDOBFuture(t *testing.T) {
	p := validPassenger()
	p.DateOfBirth = "2099-01-01"

	result := Validate(validContact(), []models.PassengerRecord{p})

	require.False(t, result.OK)
	assert.Equal(t, RuleDOBFuture, result.Rule)
	assert.Equal(t, 0, result.PassengerIndex)
}

func TestValidateDuplicatePassport(t *testing.T) {
	first := validPassenger()
	second := validPassenger()
	second.FirstName = "Siti"
	second.LastName = "Rahayu"
	second.PassportNumber = "a1234567" // same as first after normalization

	result := Validate(validContact(), []models.PassengerRecord{first, second})

	require.False(t, result.OK)
	assert.Equal(t, RuleDuplicatePassport, result.Rule)
	assert.Equal(t, 0, result.PassengerIndex)
	assert.Equal(t, 1, result.OtherIndex)
	assert.Contains(t, result.Message, "Penumpang 1 dan Penumpang 2")
}

func TestValidateDuplicatePassenger(t *testing.T) {
	first := validPassenger()
	second := validPassenger()
	second.PassportNumber = "B7654321"
	second.FirstName = "  budi " // identity compare ignores case and padding

	result := Validate(validContact(), []models.PassengerRecord{first, second})

	require.False(t, result.OK)
	assert.Equal(t, RuleDuplicatePassenger, result.Rule)
	assert.Equal(t, 0, result.PassengerIndex)
	assert.Equal(t, 1, result.OtherIndex)
}

func TestValidateRuleOrder(t *testing.T) {
	// A record violating several rules reports the earliest one.
	contact := models.ContactInfo{Email: "bad-email", Phone: "12"}
	p := validPassenger()
	p.PassportNumber = "12345678"

	result := Validate(contact, []models.PassengerRecord{p})
	require.False(t, result.OK)
	assert.Equal(t, RuleEmailFormat, result.Rule)
}

func TestValidateCompletenessBeforeFormat(t *testing.T) {
	// Passenger 1 has a bad name, passenger 2 is missing a field; the
	// completeness pass over all passengers runs before any format pass.
	first := validPassenger()
	first.FirstName = "B4d"
	second := validPassenger()
	second.DateOfBirth = ""

	result := Validate(validContact(), []models.PassengerRecord{first, second})

	require.False(t, result.OK)
	assert.Equal(t, RulePassengerRequired, result.Rule)
	assert.Equal(t, 1, result.PassengerIndex)
}
