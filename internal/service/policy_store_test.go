package service

import (
	"testing"

	"youthy-chat/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPolicyStoreReload(t *testing.T) {
	store := NewPolicyStore(zap.NewNop())
	assert.Equal(t, 0, store.Len())

	count := store.Reload([]models.PolicyRecord{
		{ID: "a", Title: "정책 A", Category: models.CategoryHousing, Region: "서울"},
		{ID: "b", Title: "정책 B", Category: models.CategoryEmployment, Region: models.RegionNationwide},
	})
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, store.Len())

	// A later reload fully replaces the snapshot.
	count = store.Reload([]models.PolicyRecord{
		{ID: "c", Title: "정책 C", Category: models.CategoryCulture, Region: "부산"},
	})
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, store.Len())

	_, ok := store.ByID("a")
	assert.False(t, ok)
	got, ok := store.ByID("c")
	assert.True(t, ok)
	assert.Equal(t, "정책 C", got.Title)
}

func TestPolicyStoreSkipsMalformedRecords(t *testing.T) {
	store := NewPolicyStore(zap.NewNop())

	count := store.Reload([]models.PolicyRecord{
		{ID: "", Title: "id 없음", Category: models.CategoryHousing},
		{ID: "no-title", Title: "", Category: models.CategoryHousing},
		{ID: "bad-category", Title: "이상한 분류", Category: "unknown"},
		{ID: "ok", Title: "정상 정책", Category: models.CategoryWelfare},
		{ID: "ok", Title: "중복 id", Category: models.CategoryWelfare},
	})

	assert.Equal(t, 1, count)
	got, ok := store.ByID("ok")
	assert.True(t, ok)
	assert.Equal(t, "정상 정책", got.Title)
}

func TestPolicyStoreByCategory(t *testing.T) {
	store := NewPolicyStore(zap.NewNop())
	store.Reload([]models.PolicyRecord{
		{ID: "h1", Title: "주거 1", Category: models.CategoryHousing},
		{ID: "e1", Title: "취업 1", Category: models.CategoryEmployment},
		{ID: "h2", Title: "주거 2", Category: models.CategoryHousing},
	})

	housing := store.ByCategory(models.CategoryHousing)
	assert.Len(t, housing, 2)
	assert.Equal(t, "h1", housing[0].ID)
	assert.Equal(t, "h2", housing[1].ID)

	assert.Empty(t, store.ByCategory(models.CategoryCulture))
}
