package worker

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/store"
)

func TestSweeperPrunesIdleDashboards(t *testing.T) {
	reg := dashboard.NewRegistry(func(string) *dashboard.Dashboard {
		sess := gateway.NewSession(gateway.NewClient("http://127.0.0.1:1"), store.NewMemoryStore())
		return dashboard.New(sess, zerolog.Nop())
	})
	reg.Get("a")
	reg.Get("b")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := NewSessionSweeper(reg, nil, time.Nanosecond, 5*time.Millisecond, zerolog.Nop())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return reg.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
