package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "This is a much longer piece of content that should still hash consistently",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestIDFromEmail_CaseAndSpaceInsensitive(t *testing.T) {
	a := IDFromEmail("Ada@Example.com")
	b := IDFromEmail("  ada@example.com ")

	if a != b {
		t.Errorf("IDFromEmail() differs for equivalent emails: %d vs %d", a, b)
	}
	if a != IDFromContent("ada@example.com") {
		t.Errorf("IDFromEmail() should hash the normalized email")
	}
}

func TestNewProfile_AssignsSharedID(t *testing.T) {
	p := NewProfile(
		User{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Candidate{Headline: "Engineer"},
	)

	if p.User.Id == 0 {
		t.Fatal("NewProfile() left user ID unset")
	}
	if p.User.Id != p.Candidate.Id {
		t.Errorf("NewProfile() IDs differ: user %d candidate %d", p.User.Id, p.Candidate.Id)
	}
	if p.Candidate.Headline != "Engineer" {
		t.Errorf("NewProfile() dropped candidate fields")
	}
}

func TestCandidateAttachments(t *testing.T) {
	c := Candidate{}
	if c.HasResume() || c.HasVideo() {
		t.Error("empty candidate should have no attachments")
	}

	c.ResumeURL = "https://files.example.com/cv.pdf"
	c.VideoURL = "https://files.example.com/intro.mp4"
	if !c.HasResume() {
		t.Error("HasResume() = false with a resume URL")
	}
	if !c.HasVideo() {
		t.Error("HasVideo() = false with a video URL")
	}
}
