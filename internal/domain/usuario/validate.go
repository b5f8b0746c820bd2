package usuario

import "regexp"

// MinPasswordLen is the minimum accepted credential length at registration.
const MinPasswordLen = 6

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
