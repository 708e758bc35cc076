package models

import "slices"

// MaxSelection 은 카드에 넣을 수 있는 최대 인원이다.
const MaxSelection = 3

// Selection 은 선택 순서를 보존하는 이름 목록이다. 모든 연산은 새 값을 반환한다.
type Selection struct {
	names []string
}

func NewSelection(names ...string) Selection {
	var s Selection
	for _, n := range names {
		s = s.Add(n)
	}
	return s
}

// Add 는 이미 선택된 이름이거나 이미 MaxSelection 명이 선택된 경우 변경 없이 반환한다.
func (s Selection) Add(name string) Selection {
	if s.Contains(name) || len(s.names) >= MaxSelection {
		return s
	}
	next := make([]string, 0, len(s.names)+1)
	next = append(next, s.names...)
	next = append(next, name)
	return Selection{names: next}
}

func (s Selection) Remove(name string) Selection {
	if !s.Contains(name) {
		return s
	}
	next := make([]string, 0, len(s.names))
	for _, n := range s.names {
		if n != name {
			next = append(next, n)
		}
	}
	return Selection{names: next}
}

// Toggle 은 선택된 이름이면 제거하고, 아니면 추가한다.
func (s Selection) Toggle(name string) Selection {
	if s.Contains(name) {
		return s.Remove(name)
	}
	return s.Add(name)
}

func (s Selection) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

func (s Selection) Len() int {
	return len(s.names)
}

func (s Selection) Names() []string {
	return slices.Clone(s.names)
}
