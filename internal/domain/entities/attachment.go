package entities

import "strings"

// AttachmentType classifies an attachment for display
type AttachmentType string

const (
	AttachmentPDF AttachmentType = "pdf"
	AttachmentDoc AttachmentType = "doc"
	AttachmentImg AttachmentType = "img"
)

// Attachment is a file reference listed in the minutes
type Attachment struct {
	ID   string         `json:"id" yaml:"id"`
	Name string         `json:"name" yaml:"name"`
	URL  string         `json:"url" yaml:"url"`
	Type AttachmentType `json:"type" yaml:"type"`
}

// InferAttachmentType derives the type from the fragment after the last dot.
// A name without a dot is treated as its own extension.
func InferAttachmentType(fileName string) AttachmentType {
	ext := fileName
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		ext = fileName[i+1:]
	}
	switch {
	case strings.HasPrefix(ext, "doc"):
		return AttachmentDoc
	case ext == "pdf":
		return AttachmentPDF
	default:
		return AttachmentImg
	}
}
