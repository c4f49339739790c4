package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/viewhub/pkg/notification"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("name and body", func(t *testing.T) {
		t.Parallel()
		n := notification.New("X", 42)
		assert.Equal(t, "X", n.Name())
		assert.Equal(t, 42, n.Body())
		assert.Empty(t, n.Type())
	})

	t.Run("with type", func(t *testing.T) {
		t.Parallel()
		n := notification.New("X", nil, notification.WithType("error"))
		assert.Equal(t, "error", n.Type())
		assert.Nil(t, n.Body())
	})

	t.Run("nil option is ignored", func(t *testing.T) {
		t.Parallel()
		n := notification.New("X", "b", nil)
		assert.Equal(t, "X", n.Name())
	})

	t.Run("satisfies interface", func(t *testing.T) {
		t.Parallel()
		var n notification.Notification = notification.New("X", nil)
		assert.Equal(t, "X", n.Name())
	})
}

func TestMessage_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  notification.Message
		want string
	}{
		{
			name: "without type",
			msg:  notification.New("saved", 1),
			want: `notification "saved" body=1`,
		},
		{
			name: "with type",
			msg:  notification.New("saved", "doc", notification.WithType("draft")),
			want: `notification "saved" type="draft" body=doc`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.msg.String())
		})
	}
}
