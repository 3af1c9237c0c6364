package dto

import "time"

type PostOutput struct {
	ID         string
	Title      string
	Content    string
	Author     string
	Branch     string
	Tags       []string
	CreatedAt  time.Time
	ReplyCount int
}

type ReplyOutput struct {
	ID        string
	Content   string
	Author    string
	CreatedAt time.Time
}

type ThreadOutput struct {
	Post    PostOutput
	Replies []ReplyOutput
}

type NewPostInput struct {
	Title   string
	Content string
	Branch  string
	Tags    []string
}

type NewReplyInput struct {
	PostID  string
	Content string
}
