package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateNames(t *testing.T) {
	list := []Celebrity{{Name: "A"}, {Name: "B"}, {Name: "A"}, {Name: "A"}, {Name: "C"}}
	assert.Equal(t, []string{"A"}, DuplicateNames(list))
	assert.Empty(t, DuplicateNames(list[:2]))
}

func TestFindCelebrityReturnsFirstMatch(t *testing.T) {
	list := []Celebrity{{Name: "A", Description: "first"}, {Name: "A", Description: "second"}}
	got, ok := FindCelebrity(list, "A")
	assert.True(t, ok)
	assert.Equal(t, "first", got.Description)

	_, ok = FindCelebrity(list, "Z")
	assert.False(t, ok)
}
