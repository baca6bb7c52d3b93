package repository

import (
	"context"

	"github.com/google/uuid"
)

// CleanupTask asks the worker to remove a deleted video's media objects.
type CleanupTask struct {
	VideoID uuid.UUID `json:"video_id"`
	Keys    []string  `json:"keys"`
}

// MessageQueue defines the interface for message queue operations.
// Implementations should be provided by the infrastructure layer (e.g. RabbitMQ).
type MessageQueue interface {
	// PublishCleanupTask sends a media cleanup task to the queue.
	// Used by the API server when a video is deleted.
	PublishCleanupTask(ctx context.Context, task CleanupTask) error

	// ConsumeCleanupTasks starts consuming cleanup tasks from the queue.
	// The handler function is called for each received task.
	// Used by the worker service.
	ConsumeCleanupTasks(ctx context.Context, handler func(task CleanupTask) error) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}
