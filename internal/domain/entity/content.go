package entity

// PostContent is the content envelope returned by POST /api/posts/generate.
type PostContent struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// CreativeContent is the richer envelope returned by the ai-post endpoints.
type CreativeContent struct {
	Headline         string   `json:"headline"`
	MainText         string   `json:"mainText"`
	CallToAction     string   `json:"callToAction"`
	Hashtags         []string `json:"hashtags"`
	ImageDescription string   `json:"imageDescription"`
}

// CalendarEntry is one planned slot in a generated content calendar.
type CalendarEntry struct {
	Date        string `json:"date"`
	Platform    string `json:"platform"`
	ContentType string `json:"contentType"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}
