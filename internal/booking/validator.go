package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

type RuleID string

const (
	RuleContactRequired     RuleID = "contact_required"
	RuleEmailFormat         RuleID = "email_format"
	RulePhoneFormat         RuleID = "phone_format"
	RulePassengerRequired   RuleID = "passenger_required"
	RuleNameFormat          RuleID = "name_format"
	RulePassportFormat      RuleID = "passport_format"
	RulePassportComposition RuleID = "passport_composition"
	RuleDOBFuture           RuleID = "dob_future"
	RuleDuplicatePassport   RuleID = "duplicate_passport"
	RuleDuplicatePassenger  RuleID = "duplicate_passenger"
)

// ValidationResult is either accepted, or the first violated rule with
// the offending passenger index (and the second index for pairwise
// duplicate rules). Indices are -1 when not applicable.
type ValidationResult struct {
	OK             bool
	Rule           RuleID
	Message        string
	PassengerIndex int
	OtherIndex     int
}

func Accepted() ValidationResult {
	return ValidationResult{OK: true, PassengerIndex: -1, OtherIndex: -1}
}

func rejected(rule RuleID, message string) ValidationResult {
	return ValidationResult{Rule: rule, Message: message, PassengerIndex: -1, OtherIndex: -1}
}

func rejectedAt(rule RuleID, message string, index int) ValidationResult {
	return ValidationResult{Rule: rule, Message: message, PassengerIndex: index, OtherIndex: -1}
}

func rejectedPair(rule RuleID, message string, i, j int) ValidationResult {
	return ValidationResult{Rule: rule, Message: message, PassengerIndex: i, OtherIndex: j}
}

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,12}$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	passportRe = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	letterRe   = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

// NormalizePhone strips the spaces and hyphens people type into phone
// numbers before the pattern check.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(phone)
}

// NormalizePassport upper-cases and trims a passport number; all
// passport checks and comparisons run on this form.
func NormalizePassport(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// Validate checks the contact info and passenger records against the
// booking form rules, short-circuiting on the first violation. Rules
// run in a fixed order: contact completeness, email shape, phone
// shape, then per-passenger completeness, name shape, passport shape,
// date of birth, and finally the pairwise duplicate checks.
func Validate(contact models.ContactInfo, passengers []models.PassengerRecord) ValidationResult {
	if contact.Email == "" || contact.Phone == "" {
		return rejected(RuleContactRequired, "Mohon lengkapi informasi kontak")
	}

	if !emailRe.MatchString(contact.Email) {
		return rejected(RuleEmailFormat, "Format email tidak valid. Contoh: nama@email.com")
	}

	if !phoneRe.MatchString(NormalizePhone(contact.Phone)) {
		return rejected(RulePhoneFormat,
			"Format nomor telepon tidak valid. Contoh: 081234567890 atau +6281234567890")
	}

	for i, p := range passengers {
		if p.FirstName == "" || p.LastName == "" || p.PassportNumber == "" || p.DateOfBirth == "" {
			return rejectedAt(RulePassengerRequired,
				fmt.Sprintf("Mohon lengkapi semua data penumpang %d", i+1), i)
		}
	}

	for i, p := range passengers {
		if !nameRe.MatchString(strings.TrimSpace(p.FirstName)) {
			return rejectedAt(RuleNameFormat,
				fmt.Sprintf("Nama depan penumpang %d tidak valid. Hanya huruf dan spasi (2-50 karakter)", i+1), i)
		}
		if !nameRe.MatchString(strings.TrimSpace(p.LastName)) {
			return rejectedAt(RuleNameFormat,
				fmt.Sprintf("Nama belakang penumpang %d tidak valid. Hanya huruf dan spasi (2-50 karakter)", i+1), i)
		}
	}

	for i, p := range passengers {
		passport := NormalizePassport(p.PassportNumber)

		if !passportRe.MatchString(passport) {
			return rejectedAt(RulePassportFormat,
				fmt.Sprintf("Nomor paspor penumpang %d tidak valid. Format: 6-9 karakter huruf kapital dan angka. Contoh: A1234567 atau AB1234567", i+1), i)
		}

		if !letterRe.MatchString(passport) || !digitRe.MatchString(passport) {
			return rejectedAt(RulePassportComposition,
				fmt.Sprintf("Nomor paspor penumpang %d harus mengandung minimal 1 huruf dan 1 angka. Contoh: A1234567", i+1), i)
		}
	}

	// The form layer constrains the date picker, but a future date of
	// birth would still reach the provider as nonsense.
	today := time.Now().Format("2006-01-02")
	for i, p := range passengers {
		dob, err := time.Parse("2006-01-02", p.DateOfBirth)
		if err != nil {
			continue
		}
		if dob.Format("2006-01-02") > today {
			return rejectedAt(RuleDOBFuture,
				fmt.Sprintf("Tanggal lahir penumpang %d tidak boleh di masa depan", i+1), i)
		}
	}

	for i := 0; i < len(passengers); i++ {
		for j := i + 1; j < len(passengers); j++ {
			if NormalizePassport(passengers[i].PassportNumber) == NormalizePassport(passengers[j].PassportNumber) {
				return rejectedPair(RuleDuplicatePassport,
					fmt.Sprintf("Penumpang %d dan Penumpang %d tidak boleh memiliki nomor paspor yang sama", i+1, j+1), i, j)
			}
		}
	}

	for i := 0; i < len(passengers); i++ {
		for j := i + 1; j < len(passengers); j++ {
			if sameIdentity(passengers[i], passengers[j]) {
				return rejectedPair(RuleDuplicatePassenger,
					fmt.Sprintf("Data Penumpang %d dan Penumpang %d terlihat identik (Nama dan Tanggal Lahir sama)", i+1, j+1), i, j)
			}
		}
	}

	return Accepted()
}

func sameIdentity(a, b models.PassengerRecord) bool {
	normalize := func(s string) string {
		return strings.ToUpper(strings.TrimSpace(s))
	}
	return normalize(a.FirstName) == normalize(b.FirstName) &&
		normalize(a.LastName) == normalize(b.LastName) &&
		strings.TrimSpace(a.DateOfBirth) == strings.TrimSpace(b.DateOfBirth)
}
