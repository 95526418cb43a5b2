package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IDFromEmail derives the ID shared by a user and their candidate profile.
// Emails are compared case-insensitively.
func IDFromEmail(email string) ID {
	return IDFromContent(strings.ToLower(strings.TrimSpace(email)))
}

// User is the account behind a candidate profile.
type User struct {
	Id       ID
	FullName string
	Email    string
}

// Experience is one entry of a candidate's work history.
type Experience struct {
	Title       string
	Company     string
	Description string
}

// Education is one entry of a candidate's education history.
type Education struct {
	Degree     string
	Major      string
	University string
}

// Certification is a professional certification held by a candidate.
type Certification struct {
	Name   string
	Issuer string
}

// Candidate holds the searchable profile fields of a job seeker.
type Candidate struct {
	Id              ID
	Headline        string
	Location        string
	Bio             string
	ExperienceLevel string
	Skills          []string
	Experience      []Experience
	Education       []Education
	Certifications  []Certification
	ResumeURL       string // Empty when no resume is attached
	VideoURL        string // Empty when no intro video is attached
}

// HasResume reports whether a resume is attached.
func (c *Candidate) HasResume() bool {
	return c.ResumeURL != ""
}

// HasVideo reports whether an intro video is attached.
func (c *Candidate) HasVideo() bool {
	return c.VideoURL != ""
}

// Profile is the stored unit of the candidate pool: a user and their
// candidate record. Candidate.Id always equals User.Id.
type Profile struct {
	User       User
	Candidate  Candidate
	InsertedAt time.Time // When the profile was first stored
	UpdatedAt  time.Time // When the profile was last written
}

// NewProfile builds a profile for user and candidate, assigning both the ID
// derived from the user's email.
func NewProfile(user User, candidate Candidate) *Profile {
	id := IDFromEmail(user.Email)
	user.Id = id
	candidate.Id = id
	return &Profile{User: user, Candidate: candidate}
}

// SavedQuery is a named boolean query kept by a recruiter for reuse.
type SavedQuery struct {
	Name       string
	Query      string
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Match is a profile that satisfied a query. Matches carry no score.
type Match struct {
	Profile *Profile
}
