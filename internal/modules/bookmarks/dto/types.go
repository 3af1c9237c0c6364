package dto

import "time"

type KeyInput struct {
	Type string
	ID   string
}

type BookmarkOutput struct {
	Type    string
	ID      string
	Title   string
	AddedAt time.Time
}

type ToggleOutput struct {
	Bookmarked bool
}
