package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"adaptive-coach-be/internal/dto"
	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/repository/unitofwork"
	"adaptive-coach-be/pkg/embedding"
	"adaptive-coach-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	chunkMinSize      int
	chunkMaxSize      int
	chunkOverlap      int
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	chunkMinSize int,
	chunkMaxSize int,
	chunkOverlap int,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		chunkMinSize:      chunkMinSize,
		chunkMaxSize:      chunkMaxSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage chunks and embeds one queued document. Invalid payloads are
// acked to stop retries; transient failures are nacked.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeRepository().FindDocument(ctx, payload.DocumentId)
	if err != nil {
		log.Printf("[ERROR] Failed to load document %s: %v", payload.DocumentId, err)
		msg.Nack()
		return
	}
	if doc == nil {
		log.Printf("[WARN] Document %s vanished before embedding, skipping", payload.DocumentId)
		msg.Ack()
		return
	}

	chunks := utils.SplitText(payload.Content, cs.chunkMaxSize, cs.chunkOverlap)
	chunks = cs.dropRunts(chunks)
	log.Printf("[INFO] Document %s split into %d chunks", doc.Id, len(chunks))

	newChunks := make([]*entity.KnowledgeChunk, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of document %s: %v", i, doc.Id, err)
			msg.Nack()
			return
		}
		newChunks = append(newChunks, &entity.KnowledgeChunk{
			Id:         uuid.New(),
			DocumentId: doc.Id,
			ChunkIndex: i,
			Content:    chunk,
			Embedding:  res.Embedding.Values,
			CreatedAt:  time.Now(),
		})
	}

	// Re-ingestion replaces all chunks for the document.
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.KnowledgeRepository().DeleteByDocumentId(ctx, doc.Id); err != nil {
		log.Printf("[ERROR] Failed to clear old chunks for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	if err := uow.KnowledgeRepository().CreateChunks(ctx, newChunks); err != nil {
		log.Printf("[ERROR] Failed to store chunks for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit chunks for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Embedded %d chunks for document %s", len(newChunks), doc.Id)
	msg.Ack()
}

// dropRunts filters out trailing fragments below the minimum chunk size.
// A document smaller than the minimum still yields its single chunk.
func (cs *consumerService) dropRunts(chunks []string) []string {
	if cs.chunkMinSize <= 0 || len(chunks) <= 1 {
		return chunks
	}
	kept := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk) >= cs.chunkMinSize {
			kept = append(kept, chunk)
		}
	}
	if len(kept) == 0 {
		return chunks[:1]
	}
	return kept
}
