package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Document IDs are generated by content-based hashing so that the same
// uploaded bytes always map to the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Status tracks a document's progress through the processing pipeline.
// Progression is monotonic forward except on retry, which re-enters at the
// failing stage, and on re-trigger of a failed document, which re-enters
// at StatusReceived.
type Status int

const (
	// StatusReceived means the document has been stored but not yet processed.
	StatusReceived Status = iota + 1
	// StatusParsing means text extraction and field extraction are in progress.
	StatusParsing
	// StatusParsed means structured fields have been extracted.
	StatusParsed
	// StatusEmbedding means the embedding vector is being computed.
	StatusEmbedding
	// StatusIndexed means the document is searchable.
	StatusIndexed
	// StatusFailed means processing terminated with an error.
	// The failure reason is recorded on the record.
	StatusFailed
)

var statusNames = map[Status]string{
	StatusReceived:  "received",
	StatusParsing:   "parsing",
	StatusParsed:    "parsed",
	StatusEmbedding: "embedding",
	StatusIndexed:   "indexed",
	StatusFailed:    "failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further pipeline work is pending for the status.
// StatusFailed is terminal for the pipeline but may be re-triggered manually.
func (s Status) Terminal() bool {
	return s == StatusIndexed || s == StatusFailed
}

// JobCategory is a coarse-grained role classification assigned by keyword scoring.
type JobCategory string

const (
	CategoryBackend     JobCategory = "Backend"
	CategoryFrontend    JobCategory = "Frontend"
	CategoryFullstack   JobCategory = "Fullstack"
	CategoryDevOps      JobCategory = "DevOps"
	CategoryQA          JobCategory = "QA"
	CategoryDatabase    JobCategory = "Database"
	CategoryMobile      JobCategory = "Mobile"
	CategoryDataScience JobCategory = "DataScience"

	// CategoryGeneral is the catch-all assigned when no category keyword matches.
	CategoryGeneral JobCategory = "General"
)

// CategoryPriority is the fixed category order used to break keyword-score
// ties. Earlier entries win.
var CategoryPriority = []JobCategory{
	CategoryBackend,
	CategoryFrontend,
	CategoryFullstack,
	CategoryDevOps,
	CategoryQA,
	CategoryDatabase,
	CategoryMobile,
	CategoryDataScience,
	CategoryGeneral,
}

// CandidateFields holds the structured attributes derived from resume text.
// Every field is optional; an empty string (or empty slice) means the
// corresponding heuristic found nothing, which is a valid outcome.
type CandidateFields struct {
	FullName        string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Location        string
	CurrentCTC      string // stored verbatim, e.g. "12 LPA"
	NoticePeriod    string // stored verbatim, e.g. "30 days"
	TotalExperience string // stored verbatim, e.g. "5 years"
	Skills          []string
	Category        JobCategory
}

// CandidateRecord represents one processed resume document.
type CandidateRecord struct {
	Id            ID
	SourceName    string // original file name, informational only
	Format        string // declared document format from the upload ("pdf", "docx", ...)
	RawText       string // extracted plain text, immutable once set
	Fields        CandidateFields
	Vector        []float32 // embedding over the canonicalized text; set at index time
	Status        Status
	FailureReason string // set only when Status == StatusFailed
	ReceivedAt    time.Time
	IndexedAt     time.Time // zero until first successful index
	UpdatedAt     time.Time
}

// IndexManifest records the embedding configuration the index was built with.
// Vectors from different models must never share an index; upserts and
// queries are rejected on mismatch until a full reindex.
type IndexManifest struct {
	EmbeddingModel string
	Dimensions     int
	UpdatedAt      time.Time
}

// SearchQuery describes one similarity search over the candidate index.
// It is ephemeral and never persisted.
type SearchQuery struct {
	Text                string
	EnhancedText        string // equals Text under the no-op strategy
	CategoryFilter      JobCategory
	SimilarityThreshold float32 // results strictly below are excluded
	Limit               int
}

// SearchResult is one matched candidate with its similarity score in [0,1]
// and a snapshot of the record's extracted fields at index time.
type SearchResult struct {
	Record *CandidateRecord
	Score  float32
}

// CanonicalText builds the text form used as embedding input. Structured
// fields are prepended so skills and category influence the vector, not
// only prose.
func (r *CandidateRecord) CanonicalText() string {
	var b strings.Builder
	if r.Fields.FullName != "" {
		b.WriteString("Name: ")
		b.WriteString(r.Fields.FullName)
		b.WriteString("\n")
	}
	if r.Fields.Category != "" && r.Fields.Category != CategoryGeneral {
		b.WriteString("Category: ")
		b.WriteString(string(r.Fields.Category))
		b.WriteString("\n")
	}
	if len(r.Fields.Skills) > 0 {
		b.WriteString("Skills: ")
		b.WriteString(strings.Join(r.Fields.Skills, ", "))
		b.WriteString("\n")
	}
	if r.Fields.TotalExperience != "" {
		b.WriteString("Experience: ")
		b.WriteString(r.Fields.TotalExperience)
		b.WriteString("\n")
	}
	if r.Fields.Location != "" {
		b.WriteString("Location: ")
		b.WriteString(r.Fields.Location)
		b.WriteString("\n")
	}
	b.WriteString(r.RawText)
	return b.String()
}
