package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// SlotCount количество часовых слотов в дне
const SlotCount = 11

// SlotNotFound сентинел для неизвестного времени слота
// Вызывающие обязаны трактовать его как жесткую ошибку валидации, а не как нулевой индекс
const SlotNotFound = -1

// slotTimes фиксированная упорядоченная сетка слотов: 08:00..18:00 с шагом в час.
// Индекс слота - единственная схема адресации времени в детекторе конфликтов;
// все сравнения времени сводятся к целочисленной арифметике индексов,
// строки "HH:MM" никогда не сравниваются лексикографически.
var slotTimes = [SlotCount]types.TimeString{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// SlotIndex возвращает индекс времени t в сетке слотов или SlotNotFound
func SlotIndex(t types.TimeString) int {
	for i, s := range slotTimes {
		if s == t {
			return i
		}
	}
	return SlotNotFound
}

// SlotTime возвращает время слота по индексу
// Для индекса вне сетки возвращает пустой TimeString
func SlotTime(index int) types.TimeString {
	if index < 0 || index >= SlotCount {
		return ""
	}
	return slotTimes[index]
}

// SlotTimes возвращает копию сетки слотов в порядке следования
func SlotTimes() []types.TimeString {
	out := make([]types.TimeString, SlotCount)
	copy(out, slotTimes[:])
	return out
}

// DaySlot доступность одного слота в конкретный день (для отображения)
type DaySlot struct {
	Index     int
	StartTime types.TimeString
	Available bool
}
