package usecase

import (
	"context"

	"eduterm/internal/modules/forum/domain"
	"eduterm/internal/modules/forum/dto"
	"eduterm/internal/modules/forum/service"
)

type Interactor struct {
	forum *service.ForumService
}

func NewInteractor(forum *service.ForumService) *Interactor {
	return &Interactor{forum: forum}
}

func toPostOutput(p domain.Post) dto.PostOutput {
	return dto.PostOutput{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Author:     p.Author,
		Branch:     p.Branch,
		Tags:       p.Tags,
		CreatedAt:  p.CreatedAt,
		ReplyCount: p.ReplyCount,
	}
}

func toReplyOutput(r domain.Reply) dto.ReplyOutput {
	return dto.ReplyOutput{ID: r.ID, Content: r.Content, Author: r.Author, CreatedAt: r.CreatedAt}
}

func (i *Interactor) List(ctx context.Context, query, branch string, limit int) ([]dto.PostOutput, error) {
	posts, err := i.forum.List(ctx, query, branch, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostOutput, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostOutput(p))
	}
	return out, nil
}

func (i *Interactor) Thread(ctx context.Context, postID string) (dto.ThreadOutput, error) {
	post, replies, err := i.forum.Thread(ctx, postID)
	if err != nil {
		return dto.ThreadOutput{}, err
	}
	thread := dto.ThreadOutput{Post: toPostOutput(post)}
	for _, r := range replies {
		thread.Replies = append(thread.Replies, toReplyOutput(r))
	}
	return thread, nil
}

func (i *Interactor) CreatePost(ctx context.Context, input dto.NewPostInput) (dto.PostOutput, error) {
	post, err := i.forum.CreatePost(ctx, domain.NewPost{
		Title:   input.Title,
		Content: input.Content,
		Branch:  input.Branch,
		Tags:    input.Tags,
	})
	if err != nil {
		return dto.PostOutput{}, err
	}
	return toPostOutput(post), nil
}

func (i *Interactor) CreateReply(ctx context.Context, input dto.NewReplyInput) (dto.ReplyOutput, error) {
	reply, err := i.forum.CreateReply(ctx, domain.NewReply{PostID: input.PostID, Content: input.Content})
	if err != nil {
		return dto.ReplyOutput{}, err
	}
	return toReplyOutput(reply), nil
}
