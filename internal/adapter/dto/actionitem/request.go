package actionitem

// ListActionItemsRequest represents query parameters for the action plan
type ListActionItemsRequest struct {
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,action_filter"`
	PICID  string `query:"pic_id"`
	Mine   bool   `query:"mine"`
}

// ChangeStatusRequest represents the request to move an action item
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,action_status"`
}
