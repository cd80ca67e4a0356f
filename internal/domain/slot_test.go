package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func TestSlotIndex(t *testing.T) {
	assert.Equal(t, 0, SlotIndex("08:00"))
	assert.Equal(t, 1, SlotIndex("09:00"))
	assert.Equal(t, 10, SlotIndex("18:00"))

	// Время вне сетки - сентинел, а не нулевой индекс
	assert.Equal(t, SlotNotFound, SlotIndex("19:00"))
	assert.Equal(t, SlotNotFound, SlotIndex("07:00"))
	assert.Equal(t, SlotNotFound, SlotIndex("09:30"))
	assert.Equal(t, SlotNotFound, SlotIndex(""))
}

func TestSlotTime(t *testing.T) {
	assert.Equal(t, types.TimeString("08:00"), SlotTime(0))
	assert.Equal(t, types.TimeString("18:00"), SlotTime(10))
	assert.Equal(t, types.TimeString(""), SlotTime(-1))
	assert.Equal(t, types.TimeString(""), SlotTime(SlotCount))
}

func TestSlotTimes(t *testing.T) {
	slots := SlotTimes()
	assert.Len(t, slots, SlotCount)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[SlotCount-1])

	// Индексы согласованы с SlotIndex в обе стороны
	for i, s := range slots {
		assert.Equal(t, i, SlotIndex(s))
	}
}

func TestActorCanManage(t *testing.T) {
	global := Actor{ID: 1, Role: RoleGlobalAdmin}
	assert.True(t, global.CanManage(42))

	roomAdmin := Actor{ID: 2, Role: RoleRoomAdmin, ManagedRooms: []int64{7, 42}}
	assert.True(t, roomAdmin.CanManage(42))
	assert.False(t, roomAdmin.CanManage(43))

	user := Actor{ID: 3, Role: RoleUser}
	assert.False(t, user.CanManage(42))
}

func TestActorOwns(t *testing.T) {
	booking := &Booking{OrganizerEmail: "alice@corp.example"}

	owner := Actor{ID: 5, Role: RoleUser, Email: "alice@corp.example"}
	assert.True(t, owner.Owns(booking))

	other := Actor{ID: 6, Role: RoleUser, Email: "bob@corp.example"}
	assert.False(t, other.Owns(booking))

	// Пустой email никогда не является владельцем
	anonymous := Actor{Role: RoleAnonymous}
	assert.False(t, anonymous.Owns(&Booking{OrganizerEmail: ""}))
}
