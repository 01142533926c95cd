package student

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// letters only at both ends; a hyphen or apostrophe is always followed by a letter
	namePattern  = `[A-Za-z](?:[A-Za-z]|['-][A-Za-z])+`
	emailPattern = `[A-Za-z0-9_.-]+@[A-Za-z0-9_-]+(?:\.[A-Za-z0-9_-]+)+`

	nameRegex  = regexp.MustCompile(`^` + namePattern + `$`)
	emailRegex = regexp.MustCompile(`^` + emailPattern + `$`)
)

// segmentMatcher consumes its segment from the start of `rest` and returns what is left.
type segmentMatcher func(rest string, ns *NewStudent) (string, bool)

var credentialSegments = []struct {
	reason Reason
	match  segmentMatcher
}{
	{ReasonFirstName, matchFirstName},
	{ReasonLastName, matchLastName},
	{ReasonEmail, matchEmail},
}

// ParseCredentials splits `text` into first name, last name and email.
// The input must be `<first name> <last name tokens...> <email>`, with single whitespace separators.
// The email takes the rest of the input, so trailing text makes it invalid.
// Only the first invalid segment is reported, as a *CredentialsError.
func ParseCredentials(text string) (NewStudent, error) {
	if countSpaces(text) < 2 {
		return NewStudent{}, newCredentialsError(ReasonUnparseable)
	}

	var ns NewStudent
	rest := text
	for _, seg := range credentialSegments {
		var ok bool
		if rest, ok = seg.match(rest, &ns); !ok {
			return NewStudent{}, newCredentialsError(seg.reason)
		}
	}
	return ns, nil
}

// nextToken returns the text before the first whitespace and the text after it.
// ok is false if there is no whitespace left.
func nextToken(s string) (token, rest string, ok bool) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, "", false
	}
	_, size := utf8.DecodeRuneInString(s[idx:])
	return s[:idx], s[idx+size:], true
}

func matchFirstName(rest string, ns *NewStudent) (string, bool) {
	token, after, ok := nextToken(rest)
	if !ok || !nameRegex.MatchString(token) {
		return rest, false
	}
	ns.FirstName = token
	return after, true
}

// matchLastName consumes name tokens for as long as each is followed by whitespace.
func matchLastName(rest string, ns *NewStudent) (string, bool) {
	end := 0
	remaining := rest
	for {
		token, after, ok := nextToken(remaining)
		if !ok || !nameRegex.MatchString(token) {
			break
		}
		end = len(rest) - len(remaining) + len(token)
		remaining = after
	}
	if end == 0 {
		return rest, false
	}
	ns.LastName = rest[:end]
	return remaining, true
}

func matchEmail(rest string, ns *NewStudent) (string, bool) {
	if !emailRegex.MatchString(rest) {
		return rest, false
	}
	ns.Email = rest
	return "", true
}

func countSpaces(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
