package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// idemKey scopes retries per user, route and request id so two users (or two
// routes) can never replay each other's responses.
func idemKey(method, path, userID, requestID string) string {
	return "idemp:ax:" + strings.ToLower(method) + ":" + path + ":" + userID + ":" + requestID
}

var reIdemHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// validReqID accepts UUIDs and bare 32-char hex ids.
func validReqID(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, err := uuid.Parse(s); err == nil {
		return true
	}
	return reIdemHex32.MatchString(s)
}

// parseAxRequestAt accepts epoch seconds, epoch milliseconds, or
// RFC3339/RFC3339Nano with an explicit zone. Naive local timestamps
// are rejected so skew checks stay meaningful.
func parseAxRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing Ax-Request-At")
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("Ax-Request-At must be epoch (s/ms) or RFC3339 with timezone")
}

// idemStore is the thin Redis persistence behind the idempotency middleware.
type idemStore struct{ rdb *redis.Client }

// claim takes the in-flight lock. Returns false when the key already exists.
func (s idemStore) claim(ctx context.Context, key string, e storedResponse) (bool, error) {
	payload, _ := json.Marshal(e)
	return s.rdb.SetNX(ctx, key, payload, inFlightTTL).Result()
}

func (s idemStore) load(ctx context.Context, key string) (storedResponse, error) {
	var e storedResponse
	v, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

// finish overwrites the lock with the recorded response for later replay.
func (s idemStore) finish(ctx context.Context, key string, e storedResponse, ttl time.Duration) error {
	payload, _ := json.Marshal(e)
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}
