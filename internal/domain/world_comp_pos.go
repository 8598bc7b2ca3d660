package domain

import "math"

// Vec3 - позиция или направление в мире. Y - высота, геймплей живет на плоскости XZ.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Flat проецирует вектор на горизонтальную плоскость
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Length возвращает длину вектора
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized возвращает единичный вектор. Нулевой вектор остается нулевым.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// DistanceTo возвращает расстояние по плоскости XZ (высота игнорируется)
func (v Vec3) DistanceTo(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Forward возвращает единичный вектор взгляда для угла facing (0 = +Z)
func Forward(facing float64) Vec3 {
	return Vec3{X: math.Sin(facing), Z: math.Cos(facing)}
}

// FacingOf возвращает угол поворота, при котором Forward совпадает с dir
func FacingOf(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// Clamp ограничивает позицию квадратом [-limit, limit] по X и Z
func (v Vec3) Clamp(limit float64) Vec3 {
	return Vec3{
		X: math.Max(-limit, math.Min(limit, v.X)),
		Y: v.Y,
		Z: math.Max(-limit, math.Min(limit, v.Z)),
	}
}
