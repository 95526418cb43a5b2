package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/talentq/core"
)

// Document is a profile import file. JSON documents are read as YAML.
type Document struct {
	Profiles []ProfileDoc `yaml:"profiles"`
}

// ProfileDoc is one profile as written in an import document.
type ProfileDoc struct {
	FullName        string             `yaml:"full_name"`
	Email           string             `yaml:"email"`
	Headline        string             `yaml:"headline"`
	Location        string             `yaml:"location"`
	Bio             string             `yaml:"bio"`
	ExperienceLevel string             `yaml:"experience_level"`
	Skills          []string           `yaml:"skills"`
	Experience      []ExperienceDoc    `yaml:"experience"`
	Education       []EducationDoc     `yaml:"education"`
	Certifications  []CertificationDoc `yaml:"certifications"`
	ResumeURL       string             `yaml:"resume_url"`
	VideoURL        string             `yaml:"video_url"`
}

type ExperienceDoc struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Description string `yaml:"description"`
}

type EducationDoc struct {
	Degree     string `yaml:"degree"`
	Major      string `yaml:"major"`
	University string `yaml:"university"`
}

type CertificationDoc struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
}

// Profile converts the document entry into a profile keyed by its email.
func (d ProfileDoc) Profile() *core.Profile {
	candidate := core.Candidate{
		Headline:        d.Headline,
		Location:        d.Location,
		Bio:             d.Bio,
		ExperienceLevel: d.ExperienceLevel,
		Skills:          d.Skills,
		ResumeURL:       d.ResumeURL,
		VideoURL:        d.VideoURL,
	}
	for _, e := range d.Experience {
		candidate.Experience = append(candidate.Experience, core.Experience(e))
	}
	for _, e := range d.Education {
		candidate.Education = append(candidate.Education, core.Education(e))
	}
	for _, c := range d.Certifications {
		candidate.Certifications = append(candidate.Certifications, core.Certification(c))
	}
	return core.NewProfile(core.User{FullName: d.FullName, Email: d.Email}, candidate)
}

// DecodeDocument reads a document from r. An empty input is an empty document.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// ReadDocument reads the document at path.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// IsDocumentFile reports whether path has an extension the importer reads.
func IsDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
