package dto

import "shareit/internal/models"

// NewRequestDto is the body of POST /requests.
type NewRequestDto struct {
	Description string `json:"description" validate:"required,max=500"`
}

// RequestDto is the wire representation of an item request. Items holds the
// available items answering the request, when the read path computes them.
type RequestDto struct {
	ID          int64          `json:"id"`
	Requestor   UserDto        `json:"requestor"`
	Description string         `json:"description"`
	Created     string         `json:"created"`
	Items       []ItemShortDto `json:"items"`
}

func MapToRequestDto(request models.Request, answers []ItemShortDto) RequestDto {
	if answers == nil {
		answers = []ItemShortDto{}
	}
	return RequestDto{
		ID:          request.ID,
		Requestor:   MapToUserDto(request.Requestor),
		Description: request.Description,
		Created:     FormatTime(request.Created),
		Items:       answers,
	}
}
