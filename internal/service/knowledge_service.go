package service

import (
	"context"
	"encoding/json"
	"time"

	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewKnowledgeService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// Ingest stores the document record and queues its content for asynchronous
// chunking and embedding.
func (s *knowledgeService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc := &entity.KnowledgeDocument{
		Id:        uuid.New(),
		Title:     req.Title,
		Source:    req.Source,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	if err := uow.KnowledgeRepository().CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	payload := dto.PublishEmbedDocumentMessage{
		DocumentId: doc.Id,
		Content:    req.Content,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		return nil, err
	}

	return &dto.IngestDocumentResponse{Id: doc.Id}, nil
}
