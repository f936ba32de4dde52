package notifications

import (
	"context"
	"errors"
	"testing"

	go_redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStreamClient struct {
	added []*go_redis.XAddArgs
	err   error
}

func (f *fakeStreamClient) XAdd(_ context.Context, a *go_redis.XAddArgs) *go_redis.StringCmd {
	f.added = append(f.added, a)
	cmd := go_redis.NewStringCmd(context.Background())
	if f.err != nil {
		cmd.SetErr(f.err)
	}
	return cmd
}

func TestSendEnqueuesMail(t *testing.T) {
	client := &fakeStreamClient{}
	svc := NewService(client, "mail:outbox", "noreply@restaurant.local")

	svc.Send(context.Background(), "Подтверждение бронирования", "перейди по ссылке",
		[]string{"guest@example.com", "second@example.com"})

	require.Len(t, client.added, 1)
	args := client.added[0]
	assert.Equal(t, "mail:outbox", args.Stream)

	values, ok := args.Values.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "noreply@restaurant.local", values["from"])
	assert.Equal(t, "Подтверждение бронирования", values["subject"])
	assert.Equal(t, "перейди по ссылке", values["body"])
	assert.Equal(t, "guest@example.com,second@example.com", values["recipients"])
}

func TestSendSkipsEmptyRecipients(t *testing.T) {
	client := &fakeStreamClient{}
	svc := NewService(client, "mail:outbox", "noreply@restaurant.local")

	svc.Send(context.Background(), "subject", "body", nil)

	assert.Empty(t, client.added)
}

func TestSendSwallowsEnqueueError(t *testing.T) {
	client := &fakeStreamClient{err: errors.New("connection refused")}
	svc := NewService(client, "mail:outbox", "noreply@restaurant.local")

	// Ошибка постановки в очередь не должна приводить к панике или возврату
	svc.Send(context.Background(), "subject", "body", []string{"guest@example.com"})

	assert.Len(t, client.added, 1)
}
