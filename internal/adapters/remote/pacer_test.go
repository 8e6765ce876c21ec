package remote_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"city_explorer/internal/adapters/remote"
)

func TestPacer_SleepsBeforeEveryCall(t *testing.T) {
	var total time.Duration
	var mu sync.Mutex
	p := remote.NewPacer(300*time.Millisecond, func(ctx context.Context, d time.Duration) bool {
		mu.Lock()
		total += d
		mu.Unlock()
		return true
	})

	const n = 5
	for i := 0; i < n; i++ {
		if err := p.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if total < n*300*time.Millisecond {
		t.Fatalf("expected at least %v of pacing, got %v", n*300*time.Millisecond, total)
	}
}

func TestPacer_SerializesConcurrentCallers(t *testing.T) {
	p := remote.NewPacer(time.Millisecond, nil)
	var inFlight, maxSeen int32

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func(context.Context) error {
				cur := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxSeen)
					if cur <= m || atomic.CompareAndSwapInt32(&maxSeen, m, cur) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return nil
			})
		}()
	}
	wg.Wait()
	if m := atomic.LoadInt32(&maxSeen); m != 1 {
		t.Fatalf("expected strictly sequential calls, saw %d at once", m)
	}
}

func TestPacer_CanceledContextSkipsCall(t *testing.T) {
	p := remote.NewPacer(time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := p.Do(ctx, func(context.Context) error { called = true; return nil })
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("expected canceled without call, got err=%v called=%v", err, called)
	}
}

func TestPacer_QueuedCallerHonorsDeadline(t *testing.T) {
	p := remote.NewPacer(0, nil)
	holding := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func(context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	start := time.Now()
	called := false
	err := p.Do(ctx, func(context.Context) error { called = true; return nil })
	if !errors.Is(err, context.DeadlineExceeded) || called {
		t.Fatalf("expected deadline without call, got err=%v called=%v", err, called)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("queued caller waited %v past its 10ms deadline", elapsed)
	}
}

func TestPacer_TurnFreedAfterAbandonedWait(t *testing.T) {
	p := remote.NewPacer(0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Do(ctx, func(context.Context) error { return nil })

	done := make(chan error, 1)
	go func() { done <- p.Do(context.Background(), func(context.Context) error { return nil }) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("pacer stayed locked after a canceled caller")
	}
}
