package domain

import "strings"

// DomainWhitelist is the set of email domains allowed to accept a public
// invitation. The comma-separated string form is a storage convenience; code
// works with the parsed set and re-serialises only at the storage boundary.
type DomainWhitelist []string

// ParseDomainWhitelist parses a comma-separated domain list. Entries are
// trimmed, lowercased, stripped of a leading "@", and de-duplicated; empty
// entries are dropped.
func ParseDomainWhitelist(s string) DomainWhitelist {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make(DomainWhitelist, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		entry := strings.ToLower(strings.TrimSpace(part))
		entry = strings.TrimPrefix(entry, "@")
		if entry == "" {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// Empty reports whether the whitelist imposes no restriction.
func (w DomainWhitelist) Empty() bool { return len(w) == 0 }

// String returns the comma-separated storage form.
func (w DomainWhitelist) String() string {
	return strings.Join(w, ",")
}

// Allows reports whether an email address may accept an invitation carrying
// this whitelist. An empty whitelist allows everyone. An entry matches when
// it equals the email's domain or is a parent-domain suffix of it, so
// "example.com" admits both "a@example.com" and "a@mail.example.com".
func (w DomainWhitelist) Allows(email string) bool {
	if w.Empty() {
		return true
	}

	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	for _, entry := range w {
		if domain == entry || strings.HasSuffix(domain, "."+entry) {
			return true
		}
	}
	return false
}

// EmailDomain extracts the lowercased domain part of an email address, or ""
// if the address has no "@".
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
