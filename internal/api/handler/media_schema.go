package handler

import "github.com/roomly/storefront-api/internal/core/ports"

type signUploadRequest struct {
	Filename    string `json:"filename"    validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

type mediaListResponse struct {
	Files []ports.MediaObject `json:"files"`
	Count int                 `json:"count"`
}
