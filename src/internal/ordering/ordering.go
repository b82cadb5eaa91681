// Package ordering implements category reordering: moving one category up,
// down or to an absolute position and renumbering the whole sequence.
//
// All functions return new slices and never modify their input.
package ordering

import (
	"fmt"

	"github.com/maksimkurb/quick-nav/src/internal/models"
)

// Direction is the direction of a one-step move.
type Direction int

const (
	// Up moves a category one position toward the start.
	Up Direction = -1
	// Down moves a category one position toward the end.
	Down Direction = 1
)

// ParseDirection parses "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (expected up or down)", s)
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Move moves the category with the given id one step in dir.
//
// It returns the renumbered sequence and true, or the input (copied) and
// false when the move is a no-op: unknown id, or the target position falls
// outside the sequence.
func Move(categories []models.Category, id int, dir Direction) ([]models.Category, bool) {
	i := models.CategoryIndex(categories, id)
	if i < 0 {
		return models.CloneCategories(categories), false
	}

	j := i + int(dir)
	if j < 0 || j >= len(categories) {
		return models.CloneCategories(categories), false
	}

	return splice(categories, i, j), true
}

// MoveTo moves the category with the given id to the absolute index.
//
// The index is clamped to the sequence bounds. The move is a no-op (false)
// for an unknown id or when the category already sits at the target index.
func MoveTo(categories []models.Category, id int, index int) ([]models.Category, bool) {
	i := models.CategoryIndex(categories, id)
	if i < 0 {
		return models.CloneCategories(categories), false
	}

	j := clamp(index, 0, len(categories)-1)
	if j == i {
		return models.CloneCategories(categories), false
	}

	return splice(categories, i, j), true
}

// Renumber returns a copy whose Order fields are the 1-based positions.
func Renumber(categories []models.Category) []models.Category {
	out := models.CloneCategories(categories)
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// IsDense reports whether orders are exactly 1..N in sequence.
func IsDense(categories []models.Category) bool {
	for i, c := range categories {
		if c.Order != i+1 {
			return false
		}
	}
	return true
}

// splice removes the element at from and reinserts it at to, then renumbers.
func splice(categories []models.Category, from, to int) []models.Category {
	out := make([]models.Category, 0, len(categories))
	moved := categories[from]

	for k, c := range categories {
		if k != from {
			out = append(out, c)
		}
	}

	out = append(out, models.Category{})
	copy(out[to+1:], out[to:])
	out[to] = moved

	return Renumber(out)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
