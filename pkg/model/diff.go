package model

// LineType qualifies a single line within a hunk.
type LineType string

const (
	// LineContext is unchanged surrounding text
	LineContext LineType = "context"
	// LineAdded exists only on the branch side
	LineAdded LineType = "added"
	// LineRemoved exists only on the source side
	LineRemoved LineType = "removed"
)

// Line is one line of a hunk. OldNumber and NewNumber are 1-based and
// zero when the line has no counterpart on that side.
type Line struct {
	Type      LineType `json:"type" yaml:"type"`
	Content   string   `json:"content" yaml:"content"`
	OldNumber int      `json:"oldNumber,omitempty" yaml:"oldNumber,omitempty"`
	NewNumber int      `json:"newNumber,omitempty" yaml:"newNumber,omitempty"`
	_         struct{}
}

// Hunk is a contiguous block of changed lines plus surrounding
// context. ID is content-derived and stable across recomputations of
// the same logical hunk, so review comments anchored to it keep
// resolving.
type Hunk struct {
	ID           string `json:"id" yaml:"id"`
	OldStart     int    `json:"oldStart" yaml:"oldStart"`
	OldLineCount int    `json:"oldLineCount" yaml:"oldLineCount"`
	NewStart     int    `json:"newStart" yaml:"newStart"`
	NewLineCount int    `json:"newLineCount" yaml:"newLineCount"`
	Lines        []Line `json:"lines" yaml:"lines"`
	_            struct{}
}

// DiffStatus classifies a file-level change.
type DiffStatus string

const (
	// DiffAdded is content newly authored on the branch
	DiffAdded DiffStatus = "added"
	// DiffModified is content that differs from its source lineage
	DiffModified DiffStatus = "modified"
	// DiffDeleted is source content archived on the branch
	DiffDeleted DiffStatus = "deleted"
)

// FileDiff is the change set of one content item. It is transient and
// recomputed on every comparison request, never persisted.
type FileDiff struct {
	Path      string     `json:"path" yaml:"path"`
	ContentID string     `json:"contentId" yaml:"contentId"`
	Status    DiffStatus `json:"status" yaml:"status"`
	Additions int        `json:"additions" yaml:"additions"`
	Deletions int        `json:"deletions" yaml:"deletions"`
	Hunks     []Hunk     `json:"hunks,omitempty" yaml:"hunks,omitempty"`
	Before    string     `json:"before,omitempty" yaml:"before,omitempty"`
	After     string     `json:"after,omitempty" yaml:"after,omitempty"`
	_         struct{}
}

// ComparisonStats aggregates totals across all changed files.
type ComparisonStats struct {
	FilesChanged int `json:"filesChanged" yaml:"filesChanged"`
	Additions    int `json:"additions" yaml:"additions"`
	Deletions    int `json:"deletions" yaml:"deletions"`
	_            struct{}
}

// BranchComparison is the full diff of a branch against its source
// lineage, as served to the presentation layer.
type BranchComparison struct {
	BranchID string          `json:"branchId" yaml:"branchId"`
	BaseRef  string          `json:"baseRef" yaml:"baseRef"`
	HeadRef  string          `json:"headRef" yaml:"headRef"`
	Files    []FileDiff      `json:"files" yaml:"files"`
	Stats    ComparisonStats `json:"stats" yaml:"stats"`
	_        struct{}
}
