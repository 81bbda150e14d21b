package diff

import (
	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

// DefaultContextLines is the number of unchanged lines kept on each
// side of a change when grouping hunks.
const DefaultContextLines = 3

// Result is the outcome of comparing two line sequences.
type Result struct {
	Additions int
	Deletions int
	Hunks     []model.Hunk
}

// Compute derives a minimal line-level edit script between two
// versions of a document, grouped into hunks with DefaultContextLines
// of context. The function is total over any two finite sequences,
// including empty ones, and deterministic: identical inputs yield
// identical output. Additions and Deletions count non-context lines
// only, and a hunk without at least one non-context line is never
// emitted.
func Compute(oldLines, newLines []string) Result {
	return ComputeContext(oldLines, newLines, DefaultContextLines)
}

// ComputeContext is Compute with an explicit context window width.
func ComputeContext(oldLines, newLines []string, contextLines int) Result {
	if contextLines < 0 {
		contextLines = 0
	}
	return groupHunks(editScript(oldLines, newLines), contextLines)
}

// Counts computes only the addition and deletion totals of the edit
// script, skipping hunk construction. Comparison summaries use this
// cheaper path.
func Counts(oldLines, newLines []string) (additions, deletions int) {
	for _, o := range editScript(oldLines, newLines) {
		switch o.kind {
		case opInsert:
			additions++
		case opDelete:
			deletions++
		}
	}
	return additions, deletions
}

type opKind int

const (
	opKeep opKind = iota
	opDelete
	opInsert
)

// op is one step of the edit script. Line numbers are 1-based, zero
// when the line has no counterpart on that side.
type op struct {
	kind   opKind
	text   string
	oldNum int
	newNum int
}

// editScript walks a longest-common-subsequence table built over
// suffixes, so that ties resolve toward matches occurring earlier in
// both sequences. On equal remaining subsequence lengths a deletion is
// taken before an insertion, which keeps output stable.
func editScript(a, b []string) []op {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	ops := make([]op, 0, n+m)
	i, j := 0, 0
	oldNum, newNum := 1, 1
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, op{opKeep, a[i], oldNum, newNum})
			i, j = i+1, j+1
			oldNum, newNum = oldNum+1, newNum+1
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, op{opDelete, a[i], oldNum, 0})
			i, oldNum = i+1, oldNum+1
		default:
			ops = append(ops, op{opInsert, b[j], 0, newNum})
			j, newNum = j+1, newNum+1
		}
	}
	for ; i < n; i++ {
		ops = append(ops, op{opDelete, a[i], oldNum, 0})
		oldNum++
	}
	for ; j < m; j++ {
		ops = append(ops, op{opInsert, b[j], 0, newNum})
		newNum++
	}
	return ops
}

// groupHunks folds an edit script into hunks. Changes separated by at
// most 2*contextLines unchanged lines share a hunk.
func groupHunks(ops []op, contextLines int) Result {
	var res Result
	for _, o := range ops {
		switch o.kind {
		case opInsert:
			res.Additions++
		case opDelete:
			res.Deletions++
		}
	}
	if res.Additions == 0 && res.Deletions == 0 {
		return res
	}

	changed := make([]int, 0, res.Additions+res.Deletions)
	for i, o := range ops {
		if o.kind != opKeep {
			changed = append(changed, i)
		}
	}

	type span struct{ first, last int }
	spans := []span{{first: changed[0], last: changed[0]}}
	for _, c := range changed[1:] {
		cur := &spans[len(spans)-1]
		if c-cur.last-1 <= 2*contextLines {
			cur.last = c
			continue
		}
		spans = append(spans, span{first: c, last: c})
	}

	res.Hunks = make([]model.Hunk, 0, len(spans))
	for _, s := range spans {
		start := s.first - contextLines
		if start < 0 {
			start = 0
		}
		end := s.last + contextLines
		if end > len(ops)-1 {
			end = len(ops) - 1
		}
		res.Hunks = append(res.Hunks, buildHunk(ops, start, end))
	}
	return res
}

func buildHunk(ops []op, start, end int) model.Hunk {
	h := model.Hunk{Lines: make([]model.Line, 0, end-start+1)}
	for k := start; k <= end; k++ {
		o := ops[k]
		line := model.Line{Content: o.text, OldNumber: o.oldNum, NewNumber: o.newNum}
		switch o.kind {
		case opKeep:
			line.Type = model.LineContext
		case opDelete:
			line.Type = model.LineRemoved
		case opInsert:
			line.Type = model.LineAdded
		}
		h.Lines = append(h.Lines, line)
		if o.oldNum > 0 {
			if h.OldStart == 0 {
				h.OldStart = o.oldNum
			}
			h.OldLineCount++
		}
		if o.newNum > 0 {
			if h.NewStart == 0 {
				h.NewStart = o.newNum
			}
			h.NewLineCount++
		}
	}
	// a hunk with no lines on one side anchors after the last line
	// preceding it on that side
	if h.OldLineCount == 0 {
		h.OldStart = lastNumBefore(ops, start, func(o op) int { return o.oldNum })
	}
	if h.NewLineCount == 0 {
		h.NewStart = lastNumBefore(ops, start, func(o op) int { return o.newNum })
	}
	return h
}

func lastNumBefore(ops []op, start int, num func(op) int) int {
	for k := start - 1; k >= 0; k-- {
		if n := num(ops[k]); n > 0 {
			return n
		}
	}
	return 0
}

// AdditionHunks renders whole-content insertion as a single hunk, used
// when a content item has no source lineage. Empty content yields no
// hunks.
func AdditionHunks(lines []string) []model.Hunk {
	if len(lines) == 0 {
		return nil
	}
	h := model.Hunk{
		OldStart:     0,
		OldLineCount: 0,
		NewStart:     1,
		NewLineCount: len(lines),
		Lines:        make([]model.Line, 0, len(lines)),
	}
	for i, text := range lines {
		h.Lines = append(h.Lines, model.Line{Type: model.LineAdded, Content: text, NewNumber: i + 1})
	}
	return []model.Hunk{h}
}

// DeletionHunks is the mirror of AdditionHunks for removed content.
func DeletionHunks(lines []string) []model.Hunk {
	if len(lines) == 0 {
		return nil
	}
	h := model.Hunk{
		OldStart:     1,
		OldLineCount: len(lines),
		NewStart:     0,
		NewLineCount: 0,
		Lines:        make([]model.Line, 0, len(lines)),
	}
	for i, text := range lines {
		h.Lines = append(h.Lines, model.Line{Type: model.LineRemoved, Content: text, OldNumber: i + 1})
	}
	return []model.Hunk{h}
}
