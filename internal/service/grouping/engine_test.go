package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func slot(roomID int64, date, timeRange string, base, total float64) domain.CartLineItem {
	return domain.CartLineItem{
		RoomID:     roomID,
		RoomName:   "Sauna",
		Date:       date,
		Time:       timeRange,
		BasePrice:  base,
		TotalPrice: total,
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestEngine_Group_ContiguousSlotsMerge(t *testing.T) {
	engine := NewEngine(nopLogger{})

	groups := engine.Group([]domain.CartLineItem{
		slot(5, "2025-01-01", "09:00 - 10:00", 100, 120),
		slot(5, "2025-01-01", "10:00 - 11:00", 100, 130),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "09:00 - 11:00", groups[0].Time)
	assert.Equal(t, 200.0, groups[0].BasePrice)
	assert.Equal(t, 250.0, groups[0].TotalPrice)
	assert.Len(t, groups[0].OriginalItems, 2)
	assert.False(t, groups[0].Overlapping)
	assert.False(t, groups[0].InvalidTime)
}

func TestEngine_Group_GapSplitsGroups(t *testing.T) {
	engine := NewEngine(nopLogger{})

	groups := engine.Group([]domain.CartLineItem{
		slot(5, "2025-01-01", "09:00 - 10:00", 100, 100),
		slot(5, "2025-01-01", "11:00 - 12:00", 100, 100),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "09:00 - 10:00", groups[0].Time)
	assert.Equal(t, "11:00 - 12:00", groups[1].Time)
}

func TestEngine_Group_SortsWithinBucketAndKeepsBucketOrder(t *testing.T) {
	engine := NewEngine(nopLogger{})

	groups := engine.Group([]domain.CartLineItem{
		slot(7, "2025-01-02", "12:00 - 13:00", 10, 10),
		slot(5, "2025-01-01", "10:00 - 11:00", 10, 10),
		slot(7, "2025-01-02", "11:00 - 12:00", 10, 10),
		slot(5, "2025-01-01", "09:00 - 10:00", 10, 10),
		slot(7, "2025-01-03", "11:00 - 12:00", 10, 10),
	})

	require.Len(t, groups, 3)

	assert.Equal(t, int64(7), groups[0].RoomID)
	assert.Equal(t, "2025-01-02", groups[0].Date)
	assert.Equal(t, "11:00 - 13:00", groups[0].Time)
	assert.Equal(t, "11:00 - 12:00", groups[0].OriginalItems[0].Time)

	assert.Equal(t, int64(5), groups[1].RoomID)
	assert.Equal(t, "09:00 - 11:00", groups[1].Time)

	assert.Equal(t, "2025-01-03", groups[2].Date)
}

func TestEngine_Group_EmptyAndSingle(t *testing.T) {
	engine := NewEngine(nopLogger{})

	assert.Empty(t, engine.Group(nil))

	groups := engine.Group([]domain.CartLineItem{slot(1, "2025-01-01", " 09:00 - 10:00 ", 1, 1)})
	require.Len(t, groups, 1)
	assert.Equal(t, "09:00 - 10:00", groups[0].Time)
	assert.Len(t, groups[0].OriginalItems, 1)
}

func TestEngine_Group_MalformedTimeIsIsolated(t *testing.T) {
	engine := NewEngine(nopLogger{})

	groups := engine.Group([]domain.CartLineItem{
		slot(5, "2025-01-01", "09:00 - 10:00", 10, 10),
		slot(5, "2025-01-01", "broken", 10, 10),
		slot(5, "2025-01-01", "10:00 - 11:00", 10, 10),
		slot(6, "2025-01-01", "10:00 - 11:00", 10, 10),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "09:00 - 11:00", groups[0].Time)
	assert.False(t, groups[0].InvalidTime)

	assert.True(t, groups[1].InvalidTime)
	assert.Equal(t, "broken", groups[1].Time)
	assert.Len(t, groups[1].OriginalItems, 1)

	assert.Equal(t, int64(6), groups[2].RoomID)
	assert.False(t, groups[2].InvalidTime)
}

func TestEngine_Group_OverlapStaysSeparate(t *testing.T) {
	engine := NewEngine(nopLogger{})

	groups := engine.Group([]domain.CartLineItem{
		slot(5, "2025-01-01", "09:00 - 11:00", 10, 10),
		slot(5, "2025-01-01", "10:00 - 12:00", 10, 10),
	})

	require.Len(t, groups, 2)
	assert.False(t, groups[0].Overlapping)
	assert.True(t, groups[1].Overlapping)
}

func TestEngine_Group_ExpertServiceDedup(t *testing.T) {
	engine := NewEngine(nopLogger{})

	first := slot(5, "2025-01-01", "09:00 - 10:00", 100, 150)
	first.ExpertServices = []domain.ExpertService{{Name: "Anna Massage", Price: 50}}
	second := slot(5, "2025-01-01", "10:00 - 11:00", 100, 150)
	second.ExpertServices = []domain.ExpertService{{Name: "  anna massage ", Price: 50}}

	groups := engine.Group([]domain.CartLineItem{first, second})

	require.Len(t, groups, 1)
	require.Len(t, groups[0].ExpertServices, 1)
	assert.Equal(t, "Anna Massage", groups[0].ExpertServices[0].Name)
}

func TestEngine_Group_ExpertServiceIDTakesPrecedence(t *testing.T) {
	engine := NewEngine(nopLogger{})

	first := slot(5, "2025-01-01", "09:00 - 10:00", 100, 150)
	first.ExpertServices = []domain.ExpertService{{Name: "Massage", ID: int64Ptr(1), Price: 50}}
	second := slot(5, "2025-01-01", "10:00 - 11:00", 100, 150)
	second.ExpertServices = []domain.ExpertService{{Name: "Massage", ID: int64Ptr(2), Price: 50}}

	groups := engine.Group([]domain.CartLineItem{first, second})

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].ExpertServices, 2)
}

func TestEngine_Group_ExtraServiceQuantities(t *testing.T) {
	engine := NewEngine(nopLogger{})

	tests := []struct {
		name      string
		first     domain.ExtraService
		second    domain.ExtraService
		wantCount int
		wantQty   int
	}{
		{
			name:      "default quantities",
			first:     domain.ExtraService{Name: "Tea", Price: 5},
			second:    domain.ExtraService{Name: "tea", Price: 5},
			wantCount: 1,
			wantQty:   2,
		},
		{
			name:      "explicit quantities with padding",
			first:     domain.ExtraService{Name: " Towel ", Price: 3, Quantity: 1},
			second:    domain.ExtraService{Name: "towel", Price: 3, Quantity: 2},
			wantCount: 1,
			wantQty:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := slot(5, "2025-01-01", "09:00 - 10:00", 10, 10)
			first.ExtraServices = []domain.ExtraService{tt.first}
			second := slot(5, "2025-01-01", "10:00 - 11:00", 10, 10)
			second.ExtraServices = []domain.ExtraService{tt.second}

			groups := engine.Group([]domain.CartLineItem{first, second})

			require.Len(t, groups, 1)
			require.Len(t, groups[0].ExtraServices, tt.wantCount)
			assert.Equal(t, tt.wantQty, groups[0].ExtraServices[0].Quantity)
		})
	}
}

func TestEngine_Group_DoesNotMutateInput(t *testing.T) {
	engine := NewEngine(nopLogger{})

	first := slot(5, "2025-01-01", "09:00 - 10:00", 10, 10)
	first.ExtraServices = []domain.ExtraService{{Name: "Tea", Price: 5}}
	second := slot(5, "2025-01-01", "10:00 - 11:00", 10, 10)
	second.ExtraServices = []domain.ExtraService{{Name: "Tea", Price: 5}}

	engine.Group([]domain.CartLineItem{first, second})

	assert.Equal(t, 0, first.ExtraServices[0].Quantity)
	assert.Equal(t, 0, second.ExtraServices[0].Quantity)
}

// Свойства, которые должны выполняться для любой корзины
func TestEngine_Group_Properties(t *testing.T) {
	engine := NewEngine(nopLogger{})

	items := []domain.CartLineItem{
		slot(1, "2025-01-01", "12:00 - 13:00", 10, 17.5),
		slot(1, "2025-01-01", "09:00 - 10:00", 10, 11),
		slot(2, "2025-01-01", "09:00 - 09:30", 5, 5),
		slot(1, "2025-01-01", "10:00 - 11:00", 10, 12.25),
		slot(1, "2025-01-01", "13:00 - 14:30", 15, 15),
		slot(2, "2025-01-01", "09:30 - 10:00", 5, 8),
		slot(1, "2025-01-02", "09:00 - 10:00", 10, 10),
	}

	first := engine.Group(items)
	second := engine.Group(items)

	// Идемпотентность
	assert.Equal(t, first, second)

	for _, g := range first {
		// Непрерывность
		for i := 1; i < len(g.OriginalItems); i++ {
			prev, err := types.ParseTimeRange(g.OriginalItems[i-1].Time)
			require.NoError(t, err)
			next, err := types.ParseTimeRange(g.OriginalItems[i].Time)
			require.NoError(t, err)
			assert.Equal(t, prev.EndMinutes(), next.StartMinutes())
		}

		// Сохранение суммы и общей пары (room, date)
		sum := 0.0
		for _, item := range g.OriginalItems {
			sum += item.TotalPrice
			assert.Equal(t, g.RoomID, item.RoomID)
			assert.Equal(t, g.Date, item.Date)
		}
		assert.InDelta(t, sum, g.TotalPrice, 1e-9)
	}
}
