package create_checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

func cartItem(id string, price float64, date, slot string, frame domain.DayPart) domain.CartItem {
	return domain.CartItem{
		Product:           domain.Product{ID: id, Name: id, Price: price, Duration: 1},
		SelectedDate:      date,
		SelectedTimeSlot:  slot,
		SelectedTimeFrame: frame,
	}
}

func TestAssemble(t *testing.T) {
	items := []domain.CartItem{
		cartItem("svc-a", 1200, "2025-10-15", "9:00 AM - 10:00 AM", domain.DayPartMorning),
		cartItem("svc-b", 1500, "2025-10-16", "4:00 PM - 5:00 PM", domain.DayPartEvening),
	}

	req := Assemble(items, 1.0)

	assert.Equal(t, []string{"svc-a", "svc-b"}, req.ProductIDs)
	assert.Equal(t, []domain.BookingDetail{
		{ProductID: "svc-a", SelectedDate: "2025-10-15", SelectedTimeSlot: "9:00 AM - 10:00 AM", SelectedTimeFrame: "MORNING"},
		{ProductID: "svc-b", SelectedDate: "2025-10-16", SelectedTimeSlot: "4:00 PM - 5:00 PM", SelectedTimeFrame: "EVENING"},
	}, req.BookingDetails)
	assert.InDelta(t, 2700.0, req.Subtotal, 1e-9)
	assert.InDelta(t, 1.0, req.Fee, 1e-9)
	assert.InDelta(t, 2701.0, req.Total, 1e-9)
}

func TestAssemble_DuplicatesKept(t *testing.T) {
	item := cartItem("svc-a", 500, "2025-10-15", "9:00 AM - 10:00 AM", domain.DayPartMorning)

	req := Assemble([]domain.CartItem{item, item}, 1.0)

	assert.Equal(t, []string{"svc-a", "svc-a"}, req.ProductIDs)
	assert.Len(t, req.BookingDetails, 2)
	assert.InDelta(t, 1001.0, req.Total, 1e-9)
}

func TestAssemble_Empty(t *testing.T) {
	req := Assemble(nil, 1.0)

	assert.Empty(t, req.ProductIDs)
	assert.Empty(t, req.BookingDetails)
	assert.InDelta(t, 1.0, req.Total, 1e-9)
}

func TestDistinctIDs(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, distinctIDs([]string{"b", "a", "b", "c", "a"}))
}
