package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Serializers for the stored records, in the mus format. cmd/musgen
// regenerates this file; keep the field order in sync with the structs.
var (
	IDMUS            = idMUS{}
	UserMUS          = userMUS{}
	ExperienceMUS    = experienceMUS{}
	EducationMUS     = educationMUS{}
	CertificationMUS = certificationMUS{}
	CandidateMUS     = candidateMUS{}
	ProfileMUS       = profileMUS{}
	SavedQueryMUS    = savedQueryMUS{}
)

type serializer[T any] interface {
	Marshal(v T, bs []byte) (n int)
	Unmarshal(bs []byte) (v T, n int, err error)
	Size(v T) (size int)
	Skip(bs []byte) (n int, err error)
}

// encoder appends fields to a buffer presized with the matching Size call.
type encoder struct {
	bs []byte
	n  int
}

func (e *encoder) id(v ID)          { e.n += varint.Uint64.Marshal(uint64(v), e.bs[e.n:]) }
func (e *encoder) str(v string)     { e.n += ord.String.Marshal(v, e.bs[e.n:]) }
func (e *encoder) time(v time.Time) { e.n += varint.Int64.Marshal(v.UnixMicro(), e.bs[e.n:]) }
func (e *encoder) length(l int)     { e.n += varint.Uint64.Marshal(uint64(l), e.bs[e.n:]) }
func (e *encoder) strs(vs []string) { encodeSlice(e, ord.String, vs) }

func encodeSlice[T any](e *encoder, s serializer[T], vs []T) {
	e.length(len(vs))
	for _, v := range vs {
		e.n += s.Marshal(v, e.bs[e.n:])
	}
}

// sizer mirrors encoder without writing.
type sizer struct {
	size int
}

func (s *sizer) id(v ID)          { s.size += varint.Uint64.Size(uint64(v)) }
func (s *sizer) str(v string)     { s.size += ord.String.Size(v) }
func (s *sizer) time(v time.Time) { s.size += varint.Int64.Size(v.UnixMicro()) }
func (s *sizer) length(l int)     { s.size += varint.Uint64.Size(uint64(l)) }
func (s *sizer) strs(vs []string) { sizeSlice(s, ord.String, vs) }

func sizeSlice[T any](s *sizer, ser serializer[T], vs []T) {
	s.length(len(vs))
	for _, v := range vs {
		s.size += ser.Size(v)
	}
}

// decoder reads fields in order and keeps the first error.
type decoder struct {
	bs  []byte
	n   int
	err error
}

func (d *decoder) id() ID {
	if d.err != nil {
		return 0
	}
	v, n, err := varint.Uint64.Unmarshal(d.bs[d.n:])
	d.n += n
	d.err = err
	return ID(v)
}

func (d *decoder) str() string {
	if d.err != nil {
		return ""
	}
	v, n, err := ord.String.Unmarshal(d.bs[d.n:])
	d.n += n
	d.err = err
	return v
}

func (d *decoder) time() time.Time {
	if d.err != nil {
		return time.Time{}
	}
	v, n, err := varint.Int64.Unmarshal(d.bs[d.n:])
	d.n += n
	d.err = err
	return time.UnixMicro(v).UTC()
}

func (d *decoder) length() int {
	if d.err != nil {
		return 0
	}
	v, n, err := varint.Uint64.Unmarshal(d.bs[d.n:])
	d.n += n
	if err != nil {
		d.err = err
		return 0
	}
	// every element takes at least one byte
	if v > uint64(len(d.bs)-d.n) {
		d.err = ErrCorruptRecord
		return 0
	}
	return int(v)
}

func (d *decoder) strs() []string { return decodeSlice(d, ord.String) }

func decodeSlice[T any](d *decoder, s serializer[T]) []T {
	l := d.length()
	if d.err != nil || l == 0 {
		return nil
	}
	vs := make([]T, l)
	for i := range vs {
		v, n, err := s.Unmarshal(d.bs[d.n:])
		d.n += n
		if err != nil {
			d.err = err
			return nil
		}
		vs[i] = v
	}
	return vs
}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return ID(u), n, err
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type userMUS struct{}

func (s userMUS) Marshal(v User, bs []byte) (n int) {
	e := &encoder{bs: bs}
	e.id(v.Id)
	e.str(v.FullName)
	e.str(v.Email)
	return e.n
}

func (s userMUS) Unmarshal(bs []byte) (v User, n int, err error) {
	d := &decoder{bs: bs}
	v.Id = d.id()
	v.FullName = d.str()
	v.Email = d.str()
	return v, d.n, d.err
}

func (s userMUS) Size(v User) (size int) {
	z := &sizer{}
	z.id(v.Id)
	z.str(v.FullName)
	z.str(v.Email)
	return z.size
}

func (s userMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type experienceMUS struct{}

func (s experienceMUS) Marshal(v Experience, bs []byte) (n int) {
	e := &encoder{bs: bs}
	e.str(v.Title)
	e.str(v.Company)
	e.str(v.Description)
	return e.n
}

func (s experienceMUS) Unmarshal(bs []byte) (v Experience, n int, err error) {
	d := &decoder{bs: bs}
	v.Title = d.str()
	v.Company = d.str()
	v.Description = d.str()
	return v, d.n, d.err
}

func (s experienceMUS) Size(v Experience) (size int) {
	z := &sizer{}
	z.str(v.Title)
	z.str(v.Company)
	z.str(v.Description)
	return z.size
}

func (s experienceMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type educationMUS struct{}

func (s educationMUS) Marshal(v Education, bs []byte) (n int) {
	e := &encoder{bs: bs}
	e.str(v.Degree)
	e.str(v.Major)
	e.str(v.University)
	return e.n
}

func (s educationMUS) Unmarshal(bs []byte) (v Education, n int, err error) {
	d := &decoder{bs: bs}
	v.Degree = d.str()
	v.Major = d.str()
	v.University = d.str()
	return v, d.n, d.err
}

func (s educationMUS) Size(v Education) (size int) {
	z := &sizer{}
	z.str(v.Degree)
	z.str(v.Major)
	z.str(v.University)
	return z.size
}

func (s educationMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type certificationMUS struct{}

func (s certificationMUS) Marshal(v Certification, bs []byte) (n int) {
	e := &encoder{bs: bs}
	e.str(v.Name)
	e.str(v.Issuer)
	return e.n
}

func (s certificationMUS) Unmarshal(bs []byte) (v Certification, n int, err error) {
	d := &decoder{bs: bs}
	v.Name = d.str()
	v.Issuer = d.str()
	return v, d.n, d.err
}

func (s certificationMUS) Size(v Certification) (size int) {
	z := &sizer{}
	z.str(v.Name)
	z.str(v.Issuer)
	return z.size
}

func (s certificationMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type candidateMUS struct{}

func (s candidateMUS) Marshal(v Candidate, bs []byte) (n int) {
	e := &encoder{bs: bs}
	e.id(v.Id)
	e.str(v.Headline)
	e.str(v.Location)
	e.str(v.Bio)
	e.str(v.ExperienceLevel)
	e.strs(v.Skills)
	encodeSlice(e, ExperienceMUS, v.Experience)
	encodeSlice(e, EducationMUS, v.Education)
	encodeSlice(e, CertificationMUS, v.Certifications)
	e.str(v.ResumeURL)
	e.str(v.VideoURL)
	return e.n
}

func (s candidateMUS) Unmarshal(bs []byte) (v Candidate, n int, err error) {
	d := &decoder{bs: bs}
	v.Id = d.id()
	v.Headline = d.str()
	v.Location = d.str()
	v.Bio = d.str()
	v.ExperienceLevel = d.str()
	v.Skills = d.strs()
	v.Experience = decodeSlice(d, ExperienceMUS)
	v.Education = decodeSlice(d, EducationMUS)
	v.Certifications = decodeSlice(d, CertificationMUS)
	v.ResumeURL = d.str()
	v.VideoURL = d.str()
	return v, d.n, d.err
}

func (s candidateMUS) Size(v Candidate) (size int) {
	z := &sizer{}
	z.id(v.Id)
	z.str(v.Headline)
	z.str(v.Location)
	z.str(v.Bio)
	z.str(v.ExperienceLevel)
	z.strs(v.Skills)
	sizeSlice(z, ExperienceMUS, v.Experience)
	sizeSlice(z, EducationMUS, v.Education)
	sizeSlice(z, CertificationMUS, v.Certifications)
	z.str(v.ResumeURL)
	z.str(v.VideoURL)
	return z.size
}

func (s candidateMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type profileMUS struct{}

func (s profileMUS) Marshal(v Profile, bs []byte) (n int) {
	n = UserMUS.Marshal(v.User, bs)
	n += CandidateMUS.Marshal(v.Candidate, bs[n:])
	e := &encoder{bs: bs, n: n}
	e.time(v.InsertedAt)
	e.time(v.UpdatedAt)
	return e.n
}

func (s profileMUS) Unmarshal(bs []byte) (v Profile, n int, err error) {
	v.User, n, err = UserMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Candidate, n1, err = CandidateMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d := &decoder{bs: bs, n: n}
	v.InsertedAt = d.time()
	v.UpdatedAt = d.time()
	return v, d.n, d.err
}

func (s profileMUS) Size(v Profile) (size int) {
	z := &sizer{size: UserMUS.Size(v.User) + CandidateMUS.Size(v.Candidate)}
	z.time(v.InsertedAt)
	z.time(v.UpdatedAt)
	return z.size
}

func (s profileMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type savedQueryMUS struct{}

func (s savedQueryMUS) Marshal(v SavedQuery, bs []byte) (n int) {
	e := &encoder{bs: bs}
	e.str(v.Name)
	e.str(v.Query)
	e.time(v.InsertedAt)
	e.time(v.UpdatedAt)
	return e.n
}

func (s savedQueryMUS) Unmarshal(bs []byte) (v SavedQuery, n int, err error) {
	d := &decoder{bs: bs}
	v.Name = d.str()
	v.Query = d.str()
	v.InsertedAt = d.time()
	v.UpdatedAt = d.time()
	return v, d.n, d.err
}

func (s savedQueryMUS) Size(v SavedQuery) (size int) {
	z := &sizer{}
	z.str(v.Name)
	z.str(v.Query)
	z.time(v.InsertedAt)
	z.time(v.UpdatedAt)
	return z.size
}

func (s savedQueryMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}
