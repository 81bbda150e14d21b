package lifecycle

import (
	"context"
	"testing"

	"github.com/anishTP/echo-portal-sub004/pkg/errors"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	fixtures := []struct {
		state model.BranchState
		event Event
		want  model.BranchState
		ok    bool
	}{
		{model.StateDraft, EventSubmit, model.StateReview, true},
		{model.StateDraft, EventApprove, model.StateDraft, false},
		{model.StateReview, EventApprove, model.StateApproved, true},
		{model.StateReview, EventRequestChanges, model.StateDraft, true},
		{model.StateReview, EventPublish, model.StateReview, false},
		{model.StateApproved, EventPublish, model.StatePublished, true},
		{model.StateApproved, EventRequestChanges, model.StateDraft, true},
		{model.StatePublished, EventArchive, model.StateArchived, true},
		{model.StateArchived, EventSubmit, model.StateArchived, false},
	}
	for _, f := range fixtures {
		next, ok := Next(f.state, f.event)
		assert.Equal(t, f.ok, ok, "%s + %s", f.state, f.event)
		if ok {
			assert.Equal(t, f.want, next, "%s + %s", f.state, f.event)
		}
	}
}

func TestEngineExecute(t *testing.T) {
	ctx := context.Background()
	branches := mem.NewBranchStore()
	branch := model.BranchDescriptor{
		ID: "br-1", Name: "b1", OwnerID: "alice",
		State: model.StateDraft, RequiredApprovals: 1,
	}
	require.NoError(t, branches.Create(ctx, &branch))

	eng := NewEngine(branches)
	require.NoError(t, Submit(ctx, eng, "br-1", model.NewActor("alice")))

	got, err := branches.Get(ctx, "br-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateReview, got.State)

	// publishing from review is refused
	err = eng.Execute(ctx, TransitionRequest{BranchID: "br-1", Event: EventPublish, ActorID: "alice"})
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	err = eng.Execute(ctx, TransitionRequest{BranchID: "missing", Event: EventSubmit, ActorID: "alice"})
	assert.Error(t, err)
}
