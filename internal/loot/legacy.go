package loot

import (
	"fmt"

	"lunarforge.dev/shadowbeat/internal/geom"
)

// LegacyDrop adapts the old untyped drop representation - a bag of
// x/y/value fields - to the Pickupable capability so old save data and
// tooling keep working against the typed pickup path.
type LegacyDrop struct {
	X, Y  float64
	Size  float64
	Value int
}

// PickupRect returns the drop's collision box centered on its position.
func (d *LegacyDrop) PickupRect() geom.Rect {
	size := d.Size
	if size <= 0 {
		size = CoinSize
	}
	return geom.NewRectCentered(geom.Vec{X: d.X, Y: d.Y}, size, size)
}

// GoldValue returns the gold granted on pickup.
func (d *LegacyDrop) GoldValue() int {
	if d.Value < minGoldValue {
		return minGoldValue
	}
	return d.Value
}

// LegacyDropFromMap builds a LegacyDrop from the old map form. JSON
// decodes numbers as float64, so both int and float64 values are
// accepted for every field.
func LegacyDropFromMap(m map[string]interface{}) (*LegacyDrop, error) {
	x, ok := numberField(m, "x")
	if !ok {
		return nil, fmt.Errorf("legacy drop missing x")
	}
	y, ok := numberField(m, "y")
	if !ok {
		return nil, fmt.Errorf("legacy drop missing y")
	}

	drop := &LegacyDrop{X: x, Y: y, Value: minGoldValue}
	if v, ok := numberField(m, "gold_value"); ok {
		drop.Value = int(v)
	} else if v, ok := numberField(m, "value"); ok {
		drop.Value = int(v)
	}
	if size, ok := numberField(m, "size"); ok {
		drop.Size = size
	}
	return drop, nil
}

func numberField(m map[string]interface{}, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
