package rediscache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leofalp/calcagent/providers/observability"
)

// fakeClient is an in-memory Client. A non-nil getErr or setErr is returned
// instead of touching the store.
type fakeClient struct {
	mu     sync.Mutex
	store  map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
	sets   int
}

func newFakeClient() *fakeClient {
	return &fakeClient{store: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.store[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(context.Context, string, ...observability.Attribute) {}
func (l *recordingLogger) Info(context.Context, string, ...observability.Attribute)  {}
func (l *recordingLogger) Error(context.Context, string, ...observability.Attribute) {}
func (l *recordingLogger) Warn(_ context.Context, msg string, _ ...observability.Attribute) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func TestCache_MissThenHit(t *testing.T) {
	client := newFakeClient()
	c := NewWithClient(client, time.Minute)
	ctx := context.Background()

	if c.Name() != "redis" {
		t.Errorf("Name() = %q, want redis", c.Name())
	}

	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return `{"status":"success","report":"ok"}`, nil
	}

	v, hit, err := c.GetOrCompute(ctx, "k", compute)
	if err != nil || hit {
		t.Fatalf("first call: hit=%v err=%v", hit, err)
	}
	if client.ttls["k"] != time.Minute {
		t.Errorf("stored TTL = %v, want 1m", client.ttls["k"])
	}

	v2, hit, err := c.GetOrCompute(ctx, "k", compute)
	if err != nil || !hit {
		t.Fatalf("second call: hit=%v err=%v", hit, err)
	}
	if v != v2 {
		t.Errorf("cached value %q differs from computed %q", v2, v)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestCache_GetErrorSkipsCompute(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("connection refused")
	c := NewWithClient(client, 0)

	called := false
	_, _, err := c.GetOrCompute(context.Background(), "k", func(context.Context) (string, error) {
		called = true
		return "v", nil
	})
	if err == nil {
		t.Fatal("expected error from failed read")
	}
	if called {
		t.Error("compute should not run when the read fails")
	}
}

func TestCache_SetErrorIsLogged(t *testing.T) {
	client := newFakeClient()
	client.setErr = errors.New("READONLY")
	logger := &recordingLogger{}
	c := NewWithClient(client, 0, WithLogger(logger))

	v, hit, err := c.GetOrCompute(context.Background(), "k", func(context.Context) (string, error) {
		return "v", nil
	})
	if err != nil || hit || v != "v" {
		t.Fatalf("got (%q, %v, %v), want (v, false, nil)", v, hit, err)
	}
	if len(logger.warns) != 1 {
		t.Errorf("expected one warning, got %v", logger.warns)
	}
}

func TestCache_ComputeErrorNotStored(t *testing.T) {
	client := newFakeClient()
	c := NewWithClient(client, 0)

	boom := errors.New("boom")
	_, _, err := c.GetOrCompute(context.Background(), "k", func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if client.sets != 0 {
		t.Errorf("expected no writes, got %d", client.sets)
	}
}

func TestCache_ConcurrentMissesShareResult(t *testing.T) {
	client := newFakeClient()
	c := NewWithClient(client, 0)

	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	release := make(chan struct{})
	compute := func(context.Context) (string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return "v", nil
	}

	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := c.GetOrCompute(context.Background(), "k", compute)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, v := range results {
		if v != "v" {
			t.Errorf("result %d = %q, want v", i, v)
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if calls < 1 || calls > len(results) {
		t.Errorf("unexpected compute count %d", calls)
	}
}
