package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionCapIsNoOp(t *testing.T) {
	s := NewSelection("A", "B", "C")
	next := s.Add("D")

	assert.Equal(t, []string{"A", "B", "C"}, next.Names())
	assert.Equal(t, 3, next.Len())
}

func TestSelectionToggleKeepsSelectionOrder(t *testing.T) {
	s := NewSelection().Toggle("C").Toggle("A").Toggle("B")
	assert.Equal(t, []string{"C", "A", "B"}, s.Names())

	s = s.Toggle("A")
	assert.Equal(t, []string{"C", "B"}, s.Names())

	s = s.Toggle("A")
	assert.Equal(t, []string{"C", "B", "A"}, s.Names())
}

func TestSelectionIsImmutable(t *testing.T) {
	base := NewSelection("A")
	_ = base.Add("B")
	names := base.Names()
	names[0] = "Z"

	assert.Equal(t, []string{"A"}, base.Names())
}

func TestSelectionIgnoresDuplicateAdd(t *testing.T) {
	s := NewSelection("A", "A", "B")
	assert.Equal(t, []string{"A", "B"}, s.Names())
}
