package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/kipp/internal/domain"
	"github.com/runoshun/kipp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCompletion_Execute_RoundTrip(t *testing.T) {
	holder := testutil.NewHolder(
		domain.NewToDo("buy milk"),
		domain.NewDeadline("submit report", day(2024, 1, 1)),
	)
	uc := NewSetCompletion(holder, domain.RepeatReject, nil)
	ctx := context.Background()

	for number := 1; number <= holder.List.Len(); number++ {
		before := holder.List.Render()

		out, err := uc.Execute(ctx, SetCompletionInput{Number: number, Completed: true})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.True(t, out.Task.Completed())

		_, err = uc.Execute(ctx, SetCompletionInput{Number: number, Completed: false})
		require.NoError(t, err)
		assert.Equal(t, before, holder.List.Render())
	}
}

func TestSetCompletion_Execute_InvalidNumber(t *testing.T) {
	holder := testutil.NewHolder(domain.NewToDo("a"), domain.NewToDo("b"))
	uc := NewSetCompletion(holder, domain.RepeatReject, nil)

	for _, number := range []int{0, 3, -1} {
		_, err := uc.Execute(context.Background(), SetCompletionInput{Number: number, Completed: true})
		assert.ErrorIs(t, err, domain.ErrInvalidTaskNumber, "number %d", number)
	}
}

func TestSetCompletion_Execute_RepeatRejected(t *testing.T) {
	done := domain.NewToDo("done")
	done.Complete()
	holder := testutil.NewHolder(done, domain.NewToDo("open"))
	uc := NewSetCompletion(holder, domain.RepeatReject, nil)

	_, err := uc.Execute(context.Background(), SetCompletionInput{Number: 1, Completed: true})
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	assert.True(t, done.Completed())

	_, err = uc.Execute(context.Background(), SetCompletionInput{Number: 2, Completed: false})
	assert.ErrorIs(t, err, domain.ErrAlreadyIncomplete)
}

func TestSetCompletion_Execute_RepeatAllowed(t *testing.T) {
	done := domain.NewToDo("done")
	done.Complete()
	holder := testutil.NewHolder(done)
	uc := NewSetCompletion(holder, domain.RepeatAllow, nil)

	out, err := uc.Execute(context.Background(), SetCompletionInput{Number: 1, Completed: true})

	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.True(t, out.Task.Completed())
}
