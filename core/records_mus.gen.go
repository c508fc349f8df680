// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceLUvUtj3JWOhvΔlqBUxQINwΞΞ = ord.NewSliceSer[string](ord.String)
	slicesH3em7twijghpXdPXP7XggΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var StatusMUS = statusMUS{}

type statusMUS struct{}

func (s statusMUS) Marshal(v Status, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s statusMUS) Unmarshal(bs []byte) (v Status, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Status(tmp)
	return
}

func (s statusMUS) Size(v Status) (size int) {
	return varint.Int.Size(int(v))
}

func (s statusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var JobCategoryMUS = jobCategoryMUS{}

type jobCategoryMUS struct{}

func (s jobCategoryMUS) Marshal(v JobCategory, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s jobCategoryMUS) Unmarshal(bs []byte) (v JobCategory, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = JobCategory(tmp)
	return
}

func (s jobCategoryMUS) Size(v JobCategory) (size int) {
	return ord.String.Size(string(v))
}

func (s jobCategoryMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var CandidateFieldsMUS = candidateFieldsMUS{}

type candidateFieldsMUS struct{}

func (s candidateFieldsMUS) Marshal(v CandidateFields, bs []byte) (n int) {
	n = ord.String.Marshal(v.FullName, bs)
	n += ord.String.Marshal(v.FirstName, bs[n:])
	n += ord.String.Marshal(v.LastName, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Phone, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.CurrentCTC, bs[n:])
	n += ord.String.Marshal(v.NoticePeriod, bs[n:])
	n += ord.String.Marshal(v.TotalExperience, bs[n:])
	n += sliceLUvUtj3JWOhvΔlqBUxQINwΞΞ.Marshal(v.Skills, bs[n:])
	return n + JobCategoryMUS.Marshal(v.Category, bs[n:])
}

func (s candidateFieldsMUS) Unmarshal(bs []byte) (v CandidateFields, n int, err error) {
	v.FullName, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FirstName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Phone, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CurrentCTC, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NoticePeriod, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TotalExperience, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = sliceLUvUtj3JWOhvΔlqBUxQINwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = JobCategoryMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateFieldsMUS) Size(v CandidateFields) (size int) {
	size = ord.String.Size(v.FullName)
	size += ord.String.Size(v.FirstName)
	size += ord.String.Size(v.LastName)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Phone)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.CurrentCTC)
	size += ord.String.Size(v.NoticePeriod)
	size += ord.String.Size(v.TotalExperience)
	size += sliceLUvUtj3JWOhvΔlqBUxQINwΞΞ.Size(v.Skills)
	return size + JobCategoryMUS.Size(v.Category)
}

func (s candidateFieldsMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLUvUtj3JWOhvΔlqBUxQINwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = JobCategoryMUS.Skip(bs[n:])
	n += n1
	return
}

var CandidateRecordMUS = candidateRecordMUS{}

type candidateRecordMUS struct{}

func (s candidateRecordMUS) Marshal(v CandidateRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.SourceName, bs[n:])
	n += ord.String.Marshal(v.Format, bs[n:])
	n += ord.String.Marshal(v.RawText, bs[n:])
	n += CandidateFieldsMUS.Marshal(v.Fields, bs[n:])
	n += slicesH3em7twijghpXdPXP7XggΞΞ.Marshal(v.Vector, bs[n:])
	n += StatusMUS.Marshal(v.Status, bs[n:])
	n += ord.String.Marshal(v.FailureReason, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.ReceivedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.IndexedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateRecordMUS) Unmarshal(bs []byte) (v CandidateRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Format, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RawText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Fields, n1, err = CandidateFieldsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicesH3em7twijghpXdPXP7XggΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = StatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FailureReason, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReceivedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IndexedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateRecordMUS) Size(v CandidateRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.SourceName)
	size += ord.String.Size(v.Format)
	size += ord.String.Size(v.RawText)
	size += CandidateFieldsMUS.Size(v.Fields)
	size += slicesH3em7twijghpXdPXP7XggΞΞ.Size(v.Vector)
	size += StatusMUS.Size(v.Status)
	size += ord.String.Size(v.FailureReason)
	size += raw.TimeUnixMicro.Size(v.ReceivedAt)
	size += raw.TimeUnixMicro.Size(v.IndexedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = CandidateFieldsMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesH3em7twijghpXdPXP7XggΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IndexManifestMUS = indexManifestMUS{}

type indexManifestMUS struct{}

func (s indexManifestMUS) Marshal(v IndexManifest, bs []byte) (n int) {
	n = ord.String.Marshal(v.EmbeddingModel, bs)
	n += varint.Int.Marshal(v.Dimensions, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s indexManifestMUS) Unmarshal(bs []byte) (v IndexManifest, n int, err error) {
	v.EmbeddingModel, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Dimensions, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexManifestMUS) Size(v IndexManifest) (size int) {
	size = ord.String.Size(v.EmbeddingModel)
	size += varint.Int.Size(v.Dimensions)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s indexManifestMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
