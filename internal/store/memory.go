package store

import (
	"context"
	"sort"

	"github.com/verte-zerg/tasbih/internal/model"
)

// Memory is an in-process store with the same key-value and journal contract as Store.
type Memory struct {
	values  map[string]string
	tallies map[[2]string]int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values:  map[string]string{},
		tallies: map[[2]string]int{},
	}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set overwrites the value stored under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// AddTally adds n increments of dhikr to day.
func (m *Memory) AddTally(_ context.Context, day, dhikr string, n int) error {
	m.tallies[[2]string{day, dhikr}] += n
	return nil
}

// ListDailyTallies mirrors Store.ListDailyTallies ordering.
func (m *Memory) ListDailyTallies(_ context.Context, since string) ([]model.DailyTally, error) {
	var result []model.DailyTally
	for k, count := range m.tallies {
		if since != "" && k[0] < since {
			continue
		}
		result = append(result, model.DailyTally{Day: k[0], Dhikr: k[1], Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Dhikr < result[j].Dhikr
	})
	return result, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
