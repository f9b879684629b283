// Package tests holds helpers shared by the package tests: per-test context
// metadata, reproducible random sources and skip switches read from the
// environment.
//
// Example usage:
//
//	func TestStress(t *testing.T) {
//	    tests.CheckSkipped(t, "RBTREE_SKIP_STRESS")
//	    rng := tests.Rand(t, 42)
//	    ctx := tests.GetUniqueContext(t)
//	    ...
//	}
package tests

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/dakv/rb-tree/envutil"
	"github.com/dakv/rb-tree/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// SeedEnv overrides the seed handed out by Rand, so that a failing randomized
// run can be replayed.
const SeedEnv = "RBTREE_TEST_SEED"

// Info is the metadata GetUniqueContext stores for a test.
type Info struct {
	Id   string
	Name string
}

// GetUniqueContext derives a context from t.Context() carrying a unique test
// id ("test-" plus a UUID) and the test name. Loggers obtained from the
// context with logger.Get include both.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())

	return logger.With(ctx, "test", t.Name(), "test_id", id)
}

// GetTestInfo returns the metadata stored by GetUniqueContext.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, ok := ctx.Value(testIdKey).(string)
	if !ok {
		return Info{}, false
	}

	name, _ := ctx.Value(testNameKey).(string)

	return Info{Id: id, Name: name}, true
}

// Logger returns a logger that writes through t.Log.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()

	return slogt.New(t)
}

// Rand returns a PCG source seeded with seed, or with the value of
// RBTREE_TEST_SEED when that is set. The seed in use is logged.
func Rand(t *testing.T, seed uint64) *rand.Rand {
	t.Helper()

	override := envutil.Map(envutil.Int(SeedEnv), func(v int) (uint64, error) {
		return uint64(v), nil //nolint:gosec // Seeds are opaque bits
	})

	seed = override.ValueOrElse(seed)

	t.Logf("random seed %d (set %s to replay)", seed, SeedEnv)

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Deterministic test data
}

// CheckSkipped skips the test when the boolean environment variable envKey is
// true. defaultValue applies when it is unset.
func CheckSkipped(t *testing.T, envKey string, defaultValue ...bool) {
	t.Helper()

	defl := false
	if len(defaultValue) > 0 {
		defl = defaultValue[0]
	}

	if envutil.Bool(envKey, envutil.Default(defl)).ValueOrElse(defl) {
		t.Skipf("Skipping test because of environment variable: %s=true", envKey)
	}
}
