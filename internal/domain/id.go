package domain

import (
	"fmt"
	"strconv"
)

// EntityID - упакованный идентификатор (Kind + Index)
type EntityID uint64

// Конфигурация битов
const (
	bitsIndex = 40
	bitsKind  = 8

	shiftKind = bitsIndex

	maskIndex = (1 << bitsIndex) - 1 // 0x000000FFFFFFFFFF
	maskKind  = (1 << bitsKind) - 1  // 0xFF
)

// NoEntity - нулевой идентификатор, не выдается аллокатором
const NoEntity EntityID = 0

// PackEntityID создает ID из компонентов
func PackEntityID(kind EntityKind, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(kind) & maskKind) << shiftKind
	return EntityID(id)
}

func (id EntityID) Kind() EntityKind {
	return EntityKind((id >> shiftKind) & maskKind)
}

func (id EntityID) Index() uint64 {
	return uint64(id & maskIndex)
}

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших int64
func (id EntityID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON парсит строку или число из JSON
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}

// String для логов: [kind:idx]
func (id EntityID) String() string {
	return fmt.Sprintf("[%s:%d]", id.Kind(), id.Index())
}

// IDAllocator выдает монотонные идентификаторы в пределах одной сессии мира.
// Индекс общий для всех видов, поэтому ID никогда не повторяется.
type IDAllocator struct {
	next uint64
}

func (a *IDAllocator) Next(kind EntityKind) EntityID {
	a.next++
	return PackEntityID(kind, a.next)
}
