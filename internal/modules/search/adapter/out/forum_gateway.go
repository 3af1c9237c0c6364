package out

import (
	"context"

	forumin "eduterm/internal/modules/forum/port/in"
	"eduterm/internal/modules/search/domain"
	searchout "eduterm/internal/modules/search/port/out"
)

type ForumGateway struct {
	forum forumin.Usecase
}

func NewForumGateway(forum forumin.Usecase) searchout.Gateway {
	return &ForumGateway{forum: forum}
}

func (g *ForumGateway) Items(ctx context.Context) ([]domain.Item, error) {
	posts, err := g.forum.List(ctx, "", "", 0)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, domain.Item{
			ID:          p.ID,
			Kind:        domain.KindForum,
			Title:       p.Title,
			Description: p.Content,
			Branch:      p.Branch,
			Tags:        p.Tags,
		})
	}
	return items, nil
}
