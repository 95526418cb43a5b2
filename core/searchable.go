package core

import "strings"

// Marker tokens appended to the searchable text when attachments exist.
const (
	ResumeMarker = "has_resume"
	VideoMarker  = "has_video"
)

// SearchableText flattens a candidate and its user into the single lowercase
// string that queries are matched against. Fields are joined with spaces and
// not escaped, so profile text can satisfy a term meant for another field
// (a bio mentioning "has_resume" reads like an attached resume).
// Either argument may be nil.
func SearchableText(candidate *Candidate, user *User) string {
	var parts []string
	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	if user != nil {
		add(user.FullName, user.Email)
	}

	if candidate != nil {
		add(candidate.Headline, candidate.Location, candidate.Bio, candidate.ExperienceLevel)
		add(candidate.Skills...)
		for _, exp := range candidate.Experience {
			add(exp.Title, exp.Company, exp.Description)
		}
		for _, edu := range candidate.Education {
			add(edu.Degree, edu.Major, edu.University)
		}
		for _, cert := range candidate.Certifications {
			add(cert.Name, cert.Issuer)
		}
		if candidate.HasResume() {
			add(ResumeMarker)
		}
		if candidate.HasVideo() {
			add(VideoMarker)
		}
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// SearchableText returns the searchable text of the profile.
func (p *Profile) SearchableText() string {
	return SearchableText(&p.Candidate, &p.User)
}
