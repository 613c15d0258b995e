// Package actionitem projects action items across all meetings and writes
// status changes back to the owning meeting.
package actionitem

import (
	"context"
	"sort"
	"strings"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
)

// FilterAll disables a status or PIC filter
const FilterAll = "all"

// Filter narrows the projected list. All set criteria must match.
type Filter struct {
	Search string
	Status string
	PICID  string
}

// Aggregator reads meetings from the store on every call
type Aggregator struct {
	meetings repositories.MeetingRepository
}

// NewAggregator creates an aggregator over the store
func NewAggregator(meetings repositories.MeetingRepository) *Aggregator {
	return &Aggregator{meetings: meetings}
}

// ListAll flattens every meeting's action items, tagged with the meeting they belong to.
// Meetings without minutes contribute nothing.
func (a *Aggregator) ListAll(ctx context.Context) []entities.EnrichedActionItem {
	items := []entities.EnrichedActionItem{}
	for _, m := range a.meetings.List(ctx) {
		if m.Minutes == nil {
			continue
		}
		ref := entities.MeetingRef{ID: m.ID, Title: m.Title}
		for _, item := range m.Minutes.ActionItems {
			items = append(items, entities.EnrichedActionItem{ActionItem: item, Meeting: ref})
		}
	}
	return items
}

// UpdateStatus changes one item's status and writes the whole owning meeting back.
// It returns false when the meeting, its minutes or the item no longer exist.
func (a *Aggregator) UpdateStatus(ctx context.Context, item entities.EnrichedActionItem, status entities.ActionItemStatus) bool {
	m, ok := a.meetings.FindByID(ctx, item.Meeting.ID)
	if !ok || m.Minutes == nil {
		return false
	}
	i := m.ActionItemIndex(item.ID)
	if i < 0 {
		return false
	}
	m.Minutes.ActionItems[i].Status = status
	return a.meetings.Update(ctx, m)
}

// Apply filters items without modifying the input
func Apply(items []entities.EnrichedActionItem, f Filter) []entities.EnrichedActionItem {
	search := strings.ToLower(f.Search)
	out := make([]entities.EnrichedActionItem, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(item.Task), search) {
			continue
		}
		if !matchesOrAll(f.Status, string(item.Status)) {
			continue
		}
		if !matchesOrAll(f.PICID, item.PIC.ID) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesOrAll(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// Sort orders items by deadline, earliest first. The sort is stable and
// deadlines that are not YYYY-MM-DD go last in their input order.
func Sort(items []entities.EnrichedActionItem) []entities.EnrichedActionItem {
	out := make([]entities.EnrichedActionItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := out[i].DeadlineTime()
		tj, okJ := out[j].DeadlineTime()
		switch {
		case okI && okJ:
			return ti.Before(tj)
		case okI:
			return true
		default:
			return false
		}
	})
	return out
}
