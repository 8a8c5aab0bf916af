// internal/utils/math.go
package utils

import (
	"image"
	"math"
)

// Vec2 - точка или вектор на плоскости арены.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Trunc отбрасывает дробную часть обеих координат (в сторону нуля).
func (v Vec2) Trunc() Vec2 {
	return Vec2{math.Trunc(v.X), math.Trunc(v.Y)}
}

// DirectionTo возвращает единичный вектор от from к to и расстояние между ними.
// При совпадении точек направление нулевое.
func DirectionTo(from, to Vec2) (Vec2, float64) {
	d := to.Sub(from)
	return d.Normalize(), d.Length()
}

// AngleTo возвращает угол направления от from к to в радианах.
func AngleTo(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// FromAngle строит вектор длины r под углом angle.
func FromAngle(angle, r float64) Vec2 {
	return Vec2{math.Cos(angle) * r, math.Sin(angle) * r}
}

// Clamp ограничивает значение диапазоном [lo, hi]. При lo > hi результатом будет lo.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Box возвращает целочисленный прямоугольник столкновений для сущности
// с левым верхним углом pos. Координаты усекаются к нулю.
func Box(pos Vec2, w, h int) image.Rectangle {
	x, y := int(pos.X), int(pos.Y)
	return image.Rect(x, y, x+w, y+h)
}

// Overlaps сообщает, пересекаются ли два прямоугольника.
// Касание сторонами пересечением не считается.
func Overlaps(a, b image.Rectangle) bool {
	return a.Overlaps(b)
}
