package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestValidateBranch(t *testing.T) {
	valid := BranchDescriptor{
		ID:                "br-1",
		Name:              "my-branch-1",
		OwnerID:           "alice",
		State:             StateDraft,
		RequiredApprovals: 1,
	}
	require.NoError(t, ValidateBranch(valid))

	fixtures := []struct {
		name    string
		mutate  func(*BranchDescriptor)
		errLike string
	}{
		{"empty id", func(b *BranchDescriptor) { b.ID = "" }, "empty field"},
		{"empty name", func(b *BranchDescriptor) { b.Name = "" }, "empty field"},
		{"empty owner", func(b *BranchDescriptor) { b.OwnerID = "" }, "empty field"},
		{"zero quorum", func(b *BranchDescriptor) { b.RequiredApprovals = 0 }, "invalid quorum"},
		{"bad name", func(b *BranchDescriptor) { b.Name = "spaces not allowed" }, `" "`},
		{"bad rune after multibyte letter", func(b *BranchDescriptor) { b.Name = "café!" }, `"!"`},
		{"bad multibyte rune", func(b *BranchDescriptor) { b.Name = "notes·2" }, `"·"`},
	}
	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			b := valid
			f.mutate(&b)
			err := ValidateBranch(b)
			require.Error(t, err)
			assert.Contains(t, err.Error(), f.errLike)
		})
	}

	// multibyte letters themselves are allowed
	intl := valid
	intl.Name = "café-guide"
	assert.NoError(t, ValidateBranch(intl))
}

func TestBranchReviewers(t *testing.T) {
	b := BranchDescriptor{Reviewers: []string{"bob", "carol"}}
	assert.True(t, b.HasReviewer("bob"))
	assert.False(t, b.HasReviewer("dave"))
	assert.True(t, StateReview.Reviewable())
	assert.False(t, StateDraft.Reviewable())
	assert.False(t, StateApproved.Reviewable())
}

func TestKindFromRoles(t *testing.T) {
	assert.Equal(t, ActorHuman, KindFromRoles(nil))
	assert.Equal(t, ActorHuman, KindFromRoles([]string{"editor"}))
	assert.Equal(t, ActorHuman, KindFromRoles([]string{"bot", "editor"}))
	assert.Equal(t, ActorAutomated, KindFromRoles([]string{"bot"}))
	assert.Equal(t, ActorAutomated, KindFromRoles([]string{"system", "automated"}))

	a := NewActor("ci", "system")
	assert.Equal(t, ActorAutomated, a.Kind)
}

func TestReviewStates(t *testing.T) {
	now := time.Now()
	r := Review{
		ID:          "rev-1",
		BranchID:    "br-1",
		ReviewerID:  "bob",
		Status:      ReviewPending,
		ReviewCycle: 1,
	}
	require.NoError(t, ValidateReview(r))
	assert.True(t, r.Active())
	assert.False(t, r.Approved())

	r.Status = ReviewCompleted
	r.Decision = DecisionApproved
	r.CompletedAt = &now
	assert.False(t, r.Active())
	assert.True(t, r.Approved())

	r.ReviewCycle = 0
	assert.Error(t, ValidateReview(r))
}

func TestReviewYAMLRoundTrip(t *testing.T) {
	r := Review{
		ID:          "rev-2",
		BranchID:    "br-1",
		ReviewerID:  "carol",
		Status:      ReviewCompleted,
		Decision:    DecisionChangesRequested,
		ReviewCycle: 2,
		Comments:    []Comment{{ID: "c-1", AuthorID: "carol", HunkID: "hunk-0-a1b2c3d4", Body: "typo"}},
	}
	data, err := yaml.Marshal(r)
	require.NoError(t, err)

	var back Review
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, r.Decision, back.Decision)
	assert.Equal(t, r.Comments[0].HunkID, back.Comments[0].HunkID)
}
