package dto

import "shareit/internal/models"

// NewCommentRequest is the body of POST /items/{id}/comment.
type NewCommentRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// CommentDto is the wire representation of a comment.
type CommentDto struct {
	ID         int64  `json:"id"`
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
	Created    string `json:"created"`
}

func MapToCommentDto(comment models.Comment) CommentDto {
	return CommentDto{
		ID:         comment.ID,
		AuthorName: comment.Author.Name,
		Text:       comment.Text,
		Created:    FormatTime(comment.Created),
	}
}

func MapToCommentDtos(comments []models.Comment) []CommentDto {
	dtos := make([]CommentDto, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, MapToCommentDto(c))
	}
	return dtos
}
