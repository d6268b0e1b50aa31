package azure

import (
	"strings"

	"github.com/raito-io/golang-set/set"
)

// externalMarker is the substring Azure AD injects into the user principal
// name of invited (guest) identities.
const externalMarker = "#EXT#"

// NormalizedIdentity is the directory-searchable form of a raw sign-in name.
type NormalizedIdentity struct {
	LoginName string
	External  bool
}

// VerifiedDomains is the set of domain suffixes a directory has proven
// ownership of, plus its designated initial domain. Read-only once built.
type VerifiedDomains struct {
	names   set.Set[string]
	initial string
}

func NewVerifiedDomains(domains []VerifiedDomain) VerifiedDomains {
	names := set.NewSet[string]()
	initial := ""

	for _, d := range domains {
		names.Add(strings.ToLower(d.Name))

		if d.IsInitial {
			initial = d.Name
		}
	}

	return VerifiedDomains{names: names, initial: initial}
}

// Matches reports whether a domain suffix belongs to the directory. Besides
// the exact (case-insensitive) match, a suffix contained in a verified entry
// also counts, which keeps subdomain sign-in names internal.
func (v VerifiedDomains) Matches(suffix string) bool {
	s := strings.ToLower(suffix)

	if v.names.Contains(s) {
		return true
	}

	for _, name := range v.names.Slice() {
		if strings.Contains(name, s) {
			return true
		}
	}

	return false
}

// Initial returns the directory's default verified domain.
func (v VerifiedDomains) Initial() string {
	return v.initial
}

// Normalize canonicalizes a raw sign-in identifier into the login name the
// target directory can be searched with. Guest identities carry the
// convention localpart_homedomain#EXT#@initialdomain; stripping the marker
// and rejoining the last underscore with @ reconstructs the user's original
// email-style identifier. When the reconstructed domain suffix is not
// verified in the target directory, the identifier is re-wrapped into the
// guest convention using the target's initial domain.
//
// Normalize is pure and total: malformed input flows through as the
// best-effort transformed string, never an error. An external identifier
// without an underscore after marker-stripping is passed through unchanged
// into the verified-domain check.
func Normalize(signInName string, domains VerifiedDomains) NormalizedIdentity {
	login := signInName
	external := false

	if idx := strings.Index(login, externalMarker); idx >= 0 {
		login = login[:idx]
		external = true
	}

	if !external {
		return NormalizedIdentity{LoginName: login}
	}

	if idx := strings.LastIndex(login, "_"); idx >= 0 {
		login = login[:idx] + "@" + login[idx+1:]
	}

	if idx := strings.LastIndex(login, "@"); idx >= 0 {
		if suffix := login[idx+1:]; !domains.Matches(suffix) {
			// Still homed elsewhere: search for the guest object instead.
			login = strings.ReplaceAll(login, "@", "_") + externalMarker + "@" + domains.Initial()
		}
	}

	return NormalizedIdentity{LoginName: login, External: true}
}
