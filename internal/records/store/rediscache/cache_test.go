package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/records/models"
	"pulse/internal/records/store/memory"
	"pulse/internal/tenancy"
	id "pulse/pkg/domain"
	"pulse/pkg/platform/sentinel"
)

func setupCache(t *testing.T) (*Catalog, *memory.Catalog, *miniredis.Miniredis, tenancy.Scope) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	source := memory.NewCatalog()
	cache := New(source, client, WithTTL(time.Minute))
	scope := tenancy.Scope{TenantID: id.NewTenantID()}
	return cache, source, mr, scope
}

func addAgeField(source *memory.Catalog, scope tenancy.Scope) models.FieldDef {
	def := models.FieldDef{UUID: uuid.New(), TenantID: scope.TenantID, Key: "age", Label: "Age", Active: true}
	source.AddFieldDef(def)
	return def
}

func TestFieldByKey_ReadThrough(t *testing.T) {
	cache, source, mr, scope := setupCache(t)
	ctx := context.Background()
	seeded := addAgeField(source, scope)

	// First lookup misses and populates the cache.
	def, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)
	assert.Equal(t, "Age", def.Label)
	assert.True(t, mr.Exists(cacheKey(scope.TenantID, "age")))

	// Change the source out from under the cache; within the TTL the stale
	// entry is served, proving the second lookup never hit the source.
	seeded.Label = "Renamed"
	source.AddFieldDef(seeded)

	cached, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)
	assert.Equal(t, "Age", cached.Label)
}

func TestFieldByKey_TTLExpiry(t *testing.T) {
	cache, source, mr, scope := setupCache(t)
	ctx := context.Background()
	seeded := addAgeField(source, scope)

	_, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	seeded.Label = "Fresh"
	source.AddFieldDef(seeded)

	def, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)
	assert.Equal(t, "Fresh", def.Label, "expired entry must be refetched")
}

func TestInvalidate(t *testing.T) {
	cache, source, _, scope := setupCache(t)
	ctx := context.Background()
	seeded := addAgeField(source, scope)

	_, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)

	seeded.Label = "Updated"
	source.AddFieldDef(seeded)
	require.NoError(t, cache.Invalidate(ctx, scope.TenantID, "age"))

	def, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)
	assert.Equal(t, "Updated", def.Label)
}

func TestFieldByKey_MissesAreNotCached(t *testing.T) {
	cache, source, _, scope := setupCache(t)
	ctx := context.Background()

	_, err := cache.FieldByKey(ctx, scope, "age")
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	// The definition appears later; a negative cache entry would hide it.
	addAgeField(source, scope)

	def, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)
	assert.Equal(t, "age", def.Key)
}

func TestFieldByKey_FailsOpenOnRedisOutage(t *testing.T) {
	cache, source, mr, scope := setupCache(t)
	ctx := context.Background()
	addAgeField(source, scope)

	mr.Close()

	def, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err, "redis outage must not break lookups")
	assert.Equal(t, "Age", def.Label)
}

func TestTenantIsolationInCacheKeys(t *testing.T) {
	cache, source, _, scope := setupCache(t)
	ctx := context.Background()
	addAgeField(source, scope)

	otherScope := tenancy.Scope{TenantID: id.NewTenantID()}
	otherDef := models.FieldDef{UUID: uuid.New(), TenantID: otherScope.TenantID, Key: "age", Label: "Their Age", Active: true}
	source.AddFieldDef(otherDef)

	mine, err := cache.FieldByKey(ctx, scope, "age")
	require.NoError(t, err)
	theirs, err := cache.FieldByKey(ctx, otherScope, "age")
	require.NoError(t, err)

	assert.Equal(t, "Age", mine.Label)
	assert.Equal(t, "Their Age", theirs.Label)
}
