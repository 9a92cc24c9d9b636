package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker implements HealthChecker with a fixed outcome.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ctx context.Context) error { return s.err }

func TestHealthRegistry_Register(t *testing.T) {
	registry := NewHealthRegistry()

	err := registry.Register(&stubChecker{name: "pet-store"})

	require.NoError(t, err)
	assert.Len(t, registry.checkers, 1)
}

func TestHealthRegistry_Register_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "pet-store"}))

	err := registry.Register(&stubChecker{name: "pet-store"})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "pet-store")
	assert.Len(t, registry.checkers, 1)
}

func TestHealthRegistry_CheckAll_Empty(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestHealthRegistry_CheckAll_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "pet-store"}))
	require.NoError(t, registry.Register(&stubChecker{name: "user-store"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["pet-store"].Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["user-store"].Status)
	assert.Empty(t, result.Checks["pet-store"].Message)
}

func TestHealthRegistry_CheckAll_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "pet-store"}))
	require.NoError(t, registry.Register(&stubChecker{name: "user-store", err: errors.New("store unavailable")}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["pet-store"].Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["user-store"].Status)
	assert.Equal(t, "store unavailable", result.Checks["user-store"].Message)
}

// blockingChecker only completes once its context is cancelled or a timer fires.
type blockingChecker struct {
	name string
}

func (b *blockingChecker) Name() string { return b.name }

func (b *blockingChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestHealthRegistry_CheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&blockingChecker{name: "slow-store"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	require.Len(t, result.Checks, 1)
	assert.Contains(t, result.Checks["slow-store"].Message, "context canceled")
}
