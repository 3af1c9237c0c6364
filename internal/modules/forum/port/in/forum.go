package in

import (
	"context"

	"eduterm/internal/modules/forum/dto"
)

type Usecase interface {
	List(ctx context.Context, query, branch string, limit int) ([]dto.PostOutput, error)
	Thread(ctx context.Context, postID string) (dto.ThreadOutput, error)
	CreatePost(ctx context.Context, input dto.NewPostInput) (dto.PostOutput, error)
	CreateReply(ctx context.Context, input dto.NewReplyInput) (dto.ReplyOutput, error)
}
