package observer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewhub/pkg/notification"
	"github.com/dmitrymomot/viewhub/pkg/observer"
)

func TestObserver_NotifyObserver(t *testing.T) {
	t.Parallel()

	t.Run("invokes callback with notification", func(t *testing.T) {
		t.Parallel()
		var got notification.Notification
		o := observer.New(func(_ context.Context, n notification.Notification) error {
			got = n
			return nil
		}, "ctx")

		require.NoError(t, o.NotifyObserver(context.Background(), notification.New("X", 1)))
		require.NotNil(t, got)
		assert.Equal(t, "X", got.Name())
		assert.Equal(t, 1, got.Body())
	})

	t.Run("returns callback error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		o := observer.New(func(context.Context, notification.Notification) error { return boom }, nil)
		assert.ErrorIs(t, o.NotifyObserver(context.Background(), notification.New("X", nil)), boom)
	})

	t.Run("nil callback is a no-op", func(t *testing.T) {
		t.Parallel()
		o := observer.New(nil, "ctx")
		assert.NoError(t, o.NotifyObserver(context.Background(), notification.New("X", nil)))
	})
}

func TestObserver_CompareNotifyContext(t *testing.T) {
	t.Parallel()

	type ident struct{ id int }
	ptr := &ident{id: 1}
	token := observer.NewToken()

	tests := []struct {
		name  string
		ctx   any
		other any
		want  bool
	}{
		{"equal strings", "a", "a", true},
		{"different strings", "a", "b", false},
		{"same pointer", ptr, ptr, true},
		{"equal pointee, different pointer", ptr, &ident{id: 1}, false},
		{"equal structs", ident{id: 2}, ident{id: 2}, true},
		{"same token", token, token, true},
		{"token vs its string", token, token.String(), false},
		{"different types", 1, int64(1), false},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, "a", false},
		{"uncomparable slice", []int{1}, []int{1}, false},
		{"uncomparable map", map[string]int{}, map[string]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := observer.New(nil, tt.ctx)
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, o.CompareNotifyContext(tt.other))
			})
		})
	}
}

func TestObserver_NotifyContext(t *testing.T) {
	t.Parallel()
	token := observer.NewToken()
	o := observer.New(nil, token)
	assert.Equal(t, token, o.NotifyContext())
}

func TestNewToken(t *testing.T) {
	t.Parallel()
	a, b := observer.NewToken(), observer.NewToken()
	assert.NotEmpty(t, a.String())
	assert.NotEqual(t, a, b)
}
