package directory

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/candidatos-info/diretorio/candidates"
	"github.com/candidatos-info/diretorio/slug"
)

const (
	// RoleCandidate is the only role of directory users
	RoleCandidate = "Candidate"

	// Male is the default gender
	Male = "Male"

	// Female is only set when the source says exactly "Female"
	Female = "Female"

	defaultName  = "Candidate"
	defaultParty = "Independent"
	avatarURL    = "https://ui-avatars.com/api/?background=random&name=%s"
)

// User is a candidate ready to be shown on the directory.
type User struct {
	ID              string `json:"id" csv:"id"`
	Name            string `json:"name" csv:"name"`
	Role            string `json:"role" csv:"role"`
	AvatarURL       string `json:"avatarUrl" csv:"avatar_url"`
	Party           string `json:"party" csv:"party"`
	PartySlug       string `json:"partySlug" csv:"party_slug"`
	Governorate     string `json:"governorate" csv:"governorate"`
	GovernorateSlug string `json:"governorateSlug" csv:"governorate_slug"`
	Gender          string `json:"gender" csv:"gender"`
}

// Normalize turns raw candidate records into directory users, filling
// defaults for missing values. Unknown governorates become Baghdad.
func Normalize(records []candidates.Record) []User {
	users := make([]User, 0, len(records))
	for i, r := range records {
		users = append(users, normalize(i, r))
	}
	return users
}

func normalize(i int, r candidates.Record) User {
	name := first(r, defaultName, "name", "full_name", "fullName")
	party := first(r, defaultParty, "party", "party_name", "partyName")
	governorate := ResolveGovernorate(r["governorate"]).Value
	id := first(r, "", "id")
	if id == "" {
		base := slug.Make(name)
		if base == "" {
			base = "candidate"
		}
		id = fmt.Sprintf("%s-%d", base, i+1)
	}
	avatar := first(r, "", "avatarUrl", "avatar_url", "photo")
	if avatar == "" {
		avatar = fmt.Sprintf(avatarURL, url.QueryEscape(name))
	}
	gender := Male
	if r["gender"] == Female {
		gender = Female
	}
	return User{
		ID:              id,
		Name:            name,
		Role:            RoleCandidate,
		AvatarURL:       avatar,
		Party:           party,
		PartySlug:       slug.Make(party),
		Governorate:     governorate,
		GovernorateSlug: slug.Make(governorate),
		Gender:          gender,
	}
}

// first returns the first non blank value among keys, trimmed, or def.
func first(r candidates.Record, def string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return def
}
