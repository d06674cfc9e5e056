package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegionTableEmbedded(t *testing.T) {
	table, err := LoadRegionTable("")
	require.NoError(t, err)
	assert.NotEmpty(t, table.Regions())
}

func TestLoadRegionTableMissingFile(t *testing.T) {
	_, err := LoadRegionTable("/nonexistent/regions.yaml")
	assert.Error(t, err)
}

func TestExtractScanOrder(t *testing.T) {
	table, err := LoadRegionTable("")
	require.NoError(t, err)

	// Top-level regions win over city mappings.
	assert.Equal(t, "서울", table.Extract("서울이랑 수원 중에 고민 중이에요"))

	// City names resolve to their parent region.
	assert.Equal(t, "경기", table.Extract("수원에 살아요"))

	assert.Empty(t, table.Extract("정책 알려줘"))
}

func TestRegionsReturnsCopy(t *testing.T) {
	table, err := LoadRegionTable("")
	require.NoError(t, err)

	regions := table.Regions()
	regions[0] = "변조"
	assert.NotEqual(t, regions[0], table.Regions()[0])
}
