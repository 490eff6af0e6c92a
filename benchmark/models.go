package main

import "time"

type TranslateRequest struct {
	Text       string `json:"text,omitempty"`
	Image      string `json:"image,omitempty"`
	TargetLang string `json:"targetLang"`
}

type TranslateResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

type BenchResult struct {
	Name     string
	Mode     string
	Duration time.Duration
	Chars    int
	Err      error
	Size     int64
}

type Agg struct {
	Count      int
	Total      time.Duration
	TotalBytes int64
}
