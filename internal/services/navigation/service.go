// Package navigation provides cursor and navigation state management
package navigation

import (
	"github.com/riordanpawley/kingdoms/internal/domain"
)

// Columns are the navigable groups of standings: tier columns on the
// board, or a single sorted column in the table view
type Columns [][]domain.Standing

// Position represents a computed position in the columns
type Position struct {
	Column int  // column index
	Row    int  // index within the column
	Valid  bool // whether the position points at a standing
}

// Cursor tracks the selected kingdom by ID so it survives refreshes and
// re-sorting
type Cursor struct {
	KingdomID      string // primary state: selected kingdom
	FallbackColumn int    // column to use when KingdomID is not found
}

func (c *Cursor) fallback(columns Columns) Position {
	col := c.FallbackColumn
	if col >= len(columns) || col < 0 {
		col = 0
	}
	if col < len(columns) && len(columns[col]) > 0 {
		return Position{Column: col, Row: 0, Valid: true}
	}
	// first non-empty column
	for i, c := range columns {
		if len(c) > 0 {
			return Position{Column: i, Row: 0, Valid: true}
		}
	}
	return Position{Column: col, Row: 0, Valid: false}
}

// FindPosition computes the position of the cursor's kingdom
func (c *Cursor) FindPosition(columns Columns) Position {
	if c.KingdomID != "" {
		for colIdx, col := range columns {
			for row, s := range col {
				if s.ID == c.KingdomID {
					return Position{Column: colIdx, Row: row, Valid: true}
				}
			}
		}
	}
	return c.fallback(columns)
}

// Set points the cursor at a kingdom
func (c *Cursor) Set(kingdomID string, column int) {
	c.KingdomID = kingdomID
	c.FallbackColumn = column
}

// MoveVertical moves up or down within a column, clamping at the ends
func (c *Cursor) MoveVertical(columns Columns, delta int) string {
	pos := c.FindPosition(columns)
	if !pos.Valid {
		return c.KingdomID
	}

	col := columns[pos.Column]
	row := max(0, min(pos.Row+delta, len(col)-1))

	c.Set(col[row].ID, pos.Column)
	return c.KingdomID
}

// MoveHorizontal moves to an adjacent column, keeping the row when possible.
// Empty columns are skipped.
func (c *Cursor) MoveHorizontal(columns Columns, delta int) string {
	pos := c.FindPosition(columns)
	if !pos.Valid {
		return c.KingdomID
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	target := pos.Column
	for moved := 0; moved != delta; {
		next := target + step
		for next >= 0 && next < len(columns) && len(columns[next]) == 0 {
			next += step
		}
		if next < 0 || next >= len(columns) {
			break
		}
		target = next
		moved += step
	}

	col := columns[target]
	row := min(pos.Row, len(col)-1)
	c.Set(col[row].ID, target)
	return c.KingdomID
}

// JumpToStart moves to the first kingdom in the current column
func (c *Cursor) JumpToStart(columns Columns) string {
	return c.MoveVertical(columns, -1<<30)
}

// JumpToEnd moves to the last kingdom in the current column
func (c *Cursor) JumpToEnd(columns Columns) string {
	return c.MoveVertical(columns, 1<<30)
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{}
}

// GetCursor returns the current cursor
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// GetPosition returns the computed position of the cursor
func (s *Service) GetPosition(columns Columns) Position {
	return s.cursor.FindPosition(columns)
}

// Current returns the selected standing
func (s *Service) Current(columns Columns) (domain.Standing, bool) {
	pos := s.cursor.FindPosition(columns)
	if !pos.Valid {
		return domain.Standing{}, false
	}
	return columns[pos.Column][pos.Row], true
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(columns Columns) {
	s.cursor.MoveVertical(columns, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(columns Columns) {
	s.cursor.MoveVertical(columns, -1)
}

// MoveLeft moves cursor to left column
func (s *Service) MoveLeft(columns Columns) {
	s.cursor.MoveHorizontal(columns, -1)
}

// MoveRight moves cursor to right column
func (s *Service) MoveRight(columns Columns) {
	s.cursor.MoveHorizontal(columns, 1)
}

// GotoTop moves cursor to first kingdom in column
func (s *Service) GotoTop(columns Columns) {
	s.cursor.JumpToStart(columns)
}

// GotoBottom moves cursor to last kingdom in column
func (s *Service) GotoBottom(columns Columns) {
	s.cursor.JumpToEnd(columns)
}

// Select finds and selects a kingdom by ID
func (s *Service) Select(columns Columns, kingdomID string) bool {
	for colIdx, col := range columns {
		for _, st := range col {
			if st.ID == kingdomID {
				s.cursor.Set(st.ID, colIdx)
				return true
			}
		}
	}
	return false
}
