package diff

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^hunk-\d+-[0-9a-z]{1,8}$`)

func TestAssignIDsFormat(t *testing.T) {
	res := Compute(lines("a\nb\nc"), lines("a\nX\nc"))
	AssignIDs("guides/setup", res.Hunks)

	for _, h := range res.Hunks {
		assert.Regexp(t, idPattern, h.ID)
	}
}

func TestAssignIDsIdempotent(t *testing.T) {
	oldDoc := lines("a\nb\nc\nd\ne")
	newDoc := lines("a\nB\nc\nd\nE")

	first := Compute(oldDoc, newDoc)
	AssignIDs("article", first.Hunks)
	second := Compute(oldDoc, newDoc)
	AssignIDs("article", second.Hunks)

	require.Equal(t, len(first.Hunks), len(second.Hunks))
	for i := range first.Hunks {
		assert.Equal(t, first.Hunks[i].ID, second.Hunks[i].ID)
	}
}

func TestAssignIDsDistinguishHunks(t *testing.T) {
	oldDoc := make([]string, 40)
	for i := range oldDoc {
		oldDoc[i] = strings.Repeat("line", i+1)
	}
	newDoc := make([]string, 40)
	copy(newDoc, oldDoc)
	newDoc[3] = "changed early"
	newDoc[20] = "changed middle"
	newDoc[36] = "changed late"

	res := Compute(oldDoc, newDoc)
	require.Len(t, res.Hunks, 3)
	AssignIDs("doc", res.Hunks)

	seen := map[string]struct{}{}
	for _, h := range res.Hunks {
		_, dup := seen[h.ID]
		assert.False(t, dup, "duplicate hunk id %s", h.ID)
		seen[h.ID] = struct{}{}
	}
}

// An edit far below a hunk must not disturb that hunk's id: the id
// depends only on the hunk's own start position and leading content.
func TestAssignIDsStableUnderDownstreamEdits(t *testing.T) {
	oldDoc := make([]string, 40)
	for i := range oldDoc {
		oldDoc[i] = strings.Repeat("x", i+1)
	}

	newDoc := make([]string, 40)
	copy(newDoc, oldDoc)
	newDoc[5] = "anchored change"

	before := Compute(oldDoc, newDoc)
	require.Len(t, before.Hunks, 1)
	AssignIDs("doc", before.Hunks)

	// touch another line far past the first hunk's window
	newDoc[35] = "later change"
	after := Compute(oldDoc, newDoc)
	require.Len(t, after.Hunks, 2)
	AssignIDs("doc", after.Hunks)

	assert.Equal(t, before.Hunks[0].ID, after.Hunks[0].ID)
}

// Long multibyte lines must truncate on rune boundaries: two lines
// agreeing on the first 20 characters hash alike, and the signature
// never carries a torn character.
func TestAssignIDsMultibyteSignature(t *testing.T) {
	prefix := strings.Repeat("é", 25)

	res1 := Compute([]string{"base"}, []string{prefix + "один"})
	res2 := Compute([]string{"base"}, []string{prefix + "другой"})
	require.Len(t, res1.Hunks, 1)
	require.Len(t, res2.Hunks, 1)
	AssignIDs("doc", res1.Hunks)
	AssignIDs("doc", res2.Hunks)

	assert.Regexp(t, idPattern, res1.Hunks[0].ID)
	assert.Equal(t, res1.Hunks[0].ID, res2.Hunks[0].ID)
}

func TestAssignIDsDependOnPath(t *testing.T) {
	res1 := Compute(lines("a\nb"), lines("a\nc"))
	res2 := Compute(lines("a\nb"), lines("a\nc"))
	AssignIDs("first-title", res1.Hunks)
	AssignIDs("second-title", res2.Hunks)

	require.Len(t, res1.Hunks, 1)
	require.Len(t, res2.Hunks, 1)
	assert.NotEqual(t, res1.Hunks[0].ID, res2.Hunks[0].ID)
}
