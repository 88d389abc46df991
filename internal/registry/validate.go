package registry

import (
	"fmt"
	"regexp"
	"strings"

	"linklogic/internal/domain"
)

const maxNameLength = 20

var (
	playerNameRe = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)
	phoneRe      = regexp.MustCompile(`^[\d\s\-+()]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateRegistration checks the registration fields. Player names are
// limited to letters, digits, underscores and spaces; the phone number
// allows digits, spaces and punctuation only and needs at least ten
// digits; email is optional but must parse if given.
func ValidateRegistration(realName, playerName, cellPhone, email string) error {
	if realName == "" {
		return fmt.Errorf("%w: real name is required", domain.ErrValidation)
	}
	if playerName == "" {
		return fmt.Errorf("%w: player name is required", domain.ErrValidation)
	}
	if len(playerName) > maxNameLength {
		return fmt.Errorf("%w: player name exceeds %d characters", domain.ErrValidation, maxNameLength)
	}
	if !playerNameRe.MatchString(playerName) {
		return fmt.Errorf("%w: player name contains invalid characters", domain.ErrValidation)
	}
	if !phoneRe.MatchString(cellPhone) {
		return fmt.Errorf("%w: phone number contains invalid characters", domain.ErrValidation)
	}
	if digitCount(cellPhone) < 10 {
		return fmt.Errorf("%w: phone number needs at least 10 digits", domain.ErrValidation)
	}
	if email != "" && !emailRe.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
