package compare

import (
	"strings"

	"github.com/anishTP/echo-portal-sub004/pkg/diff"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

const metadataDelimiter = "---"

// MetadataLines renders a content item's metadata fields into a
// fixed-order block framed by --- delimiters. Absent fields are
// omitted. The block is diffed with the same engine as body text so
// that metadata edits and body edits flow through one diff.
func MetadataLines(item model.ContentItem, subcategoryName string) []string {
	lines := []string{metadataDelimiter}
	if item.Title != "" {
		lines = append(lines, "title: "+item.Title)
	}
	if item.Description != "" {
		lines = append(lines, "description: "+item.Description)
	}
	if item.Category != "" {
		lines = append(lines, "category: "+item.Category)
	}
	if subcategoryName != "" {
		lines = append(lines, "subcategory: "+subcategoryName)
	}
	if len(item.Tags) > 0 {
		lines = append(lines, "tags: "+strings.Join(item.Tags, ", "))
	}
	return append(lines, metadataDelimiter)
}

// bodyLines splits a body into diffable lines. An empty body has no
// lines at all rather than one empty line.
func bodyLines(body string) []string {
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

// virtualDocument is the conceptual "metadata + blank separator +
// body" document combined line numbers refer to.
func virtualDocument(item model.ContentItem, subcategoryName string) []string {
	lines := MetadataLines(item, subcategoryName)
	lines = append(lines, "")
	return append(lines, bodyLines(item.Body)...)
}

// mergeDiffs combines a metadata diff and a body diff into one ordered
// result: metadata hunks first, then body hunks with their line
// numbers offset past the metadata block and the blank separator, so
// combined numbers stay monotonic against the virtual document.
func mergeDiffs(metaRes, bodyRes diff.Result, oldMetaLen, newMetaLen int) diff.Result {
	merged := diff.Result{
		Additions: metaRes.Additions + bodyRes.Additions,
		Deletions: metaRes.Deletions + bodyRes.Deletions,
	}
	if len(metaRes.Hunks)+len(bodyRes.Hunks) == 0 {
		return merged
	}
	merged.Hunks = make([]model.Hunk, 0, len(metaRes.Hunks)+len(bodyRes.Hunks))
	merged.Hunks = append(merged.Hunks, metaRes.Hunks...)

	oldOffset := oldMetaLen + 1
	newOffset := newMetaLen + 1
	for _, h := range bodyRes.Hunks {
		h.OldStart += oldOffset
		h.NewStart += newOffset
		shifted := make([]model.Line, len(h.Lines))
		for i, l := range h.Lines {
			if l.OldNumber > 0 {
				l.OldNumber += oldOffset
			}
			if l.NewNumber > 0 {
				l.NewNumber += newOffset
			}
			shifted[i] = l
		}
		h.Lines = shifted
		merged.Hunks = append(merged.Hunks, h)
	}
	return merged
}
