package presenter

import (
	"github.com/johnquangdev/notulensi/internal/adapter/dto/actionitem"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// ToEnrichedActionItemResponse converts an enriched action item to its DTO
func ToEnrichedActionItemResponse(item *entities.EnrichedActionItem) *actionitem.ActionItemResponse {
	if item == nil {
		return nil
	}
	return &actionitem.ActionItemResponse{
		ActionItemResponse: *ToActionItemResponse(&item.ActionItem),
		Meeting: actionitem.MeetingRefResponse{
			ID:    item.Meeting.ID,
			Title: item.Meeting.Title,
		},
	}
}

// ToEnrichedActionItemListResponse converts the action plan
func ToEnrichedActionItemListResponse(items []entities.EnrichedActionItem) []*actionitem.ActionItemResponse {
	out := make([]*actionitem.ActionItemResponse, len(items))
	for i := range items {
		out[i] = ToEnrichedActionItemResponse(&items[i])
	}
	return out
}
