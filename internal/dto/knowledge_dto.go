package dto

import "github.com/google/uuid"

type IngestDocumentRequest struct {
	Title    string `json:"title" validate:"required"`
	Source   string `json:"source"`
	Category string `json:"category"`
	Content  string `json:"content" validate:"required"`
}

type IngestDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

// PublishEmbedDocumentMessage is the internal queue payload that triggers
// chunking and embedding of an ingested document.
type PublishEmbedDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	Content    string    `json:"content"`
}
