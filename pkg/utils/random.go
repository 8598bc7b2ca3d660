package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	"math"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (токен сессии)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed превращает строку в детерминированный сид
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64() & math.MaxInt64)
}

// RandomBearing возвращает случайный азимут в радианах [0, 2π)
func RandomBearing(rng *mrand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// OffsetAt возвращает смещение (dx, dz) длиной dist по азимуту bearing (0 = +Z)
func OffsetAt(bearing, dist float64) (dx, dz float64) {
	return math.Sin(bearing) * dist, math.Cos(bearing) * dist
}

// Compass возвращает название стороны света для азимута по смещению (dx, dz).
// Север - это -Z (как на карте клиента).
func Compass(dx, dz float64) string {
	names := [8]string{"север", "северо-восток", "восток", "юго-восток", "юг", "юго-запад", "запад", "северо-запад"}
	angle := math.Atan2(dx, -dz) // 0 = север, по часовой
	if angle < 0 {
		angle += 2 * math.Pi
	}
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	return names[idx]
}
