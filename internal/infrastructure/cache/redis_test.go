package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedisConnects(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	// non-zero DB to verify the option is applied
	c, err := OpenRedis(s.Addr(), "", 3)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 3 {
		t.Fatalf("client DB = %d, want 3", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "idemp:probe", "1", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, "idemp:probe").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "1" {
		t.Fatalf("GET value = %q, want %q", v, "1")
	}
}

func TestOpenRedisAuth(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()
	s.RequireAuth("s3cret")

	if _, err := OpenRedis(s.Addr(), "wrong", 0); err == nil {
		t.Fatal("expected auth error, got nil")
	}

	c, err := OpenRedis(s.Addr(), "s3cret", 0)
	if err != nil {
		t.Fatalf("OpenRedis with password returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
}

func TestOpenRedisUnreachable(t *testing.T) {
	// unresolvable host, Ping fails fast
	if _, err := OpenRedis("not-a-real-host:6379", "", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}
