package dto

import "encoding/json"

// Image provider job statuses.
const (
	ImageStatusReady            = "Ready"
	ImageStatusPending          = "Pending"
	ImageStatusProcessing       = "Processing"
	ImageStatusError            = "Error"
	ImageStatusContentModerated = "Content Moderated"
	ImageStatusRequestModerated = "Request Moderated"
	ImageStatusTaskNotFound     = "Task not found"
)

// IsTerminalImageFailure reports a status after which the job will never become Ready.
func IsTerminalImageFailure(status string) bool {
	switch status {
	case ImageStatusError, ImageStatusContentModerated, ImageStatusRequestModerated, ImageStatusTaskNotFound:
		return true
	}
	return false
}

type GenerateImageRequest struct {
	StockName string `json:"stockName" validate:"required"`
}

type GenerateImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type ImageGenerationParam struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ImageSubmitResponse struct {
	ID         string `json:"id"`
	PollingURL string `json:"polling_url,omitempty"`
}

type ImageResultResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

// Sample returns result.sample, or "" when the result carries no URL.
func (r *ImageResultResponse) Sample() string {
	if r == nil || len(r.Result) == 0 {
		return ""
	}
	var result struct {
		Sample string `json:"sample"`
	}
	if err := json.Unmarshal(r.Result, &result); err != nil {
		return ""
	}
	return result.Sample
}
