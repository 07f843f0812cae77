package book

import (
	"context"
	"time"
)

// 目录事件类型(同时作为消息路由键)
const (
	EventCreated = "book.created"
	EventUpdated = "book.updated"
	EventDeleted = "book.deleted"
)

// Event 图书变更事件
type Event struct {
	Type       string    `json:"type"`
	BookID     uint      `json:"bookId"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	Featured   bool      `json:"featured"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEvent 由图书快照生成事件
func NewEvent(eventType string, b *Book, now time.Time) Event {
	return Event{
		Type:       eventType,
		BookID:     b.ID,
		Title:      b.Title,
		Category:   b.Category,
		Price:      b.Price,
		Featured:   b.Featured,
		OccurredAt: now,
	}
}

// EventPublisher 目录事件发布接口
// 发布是尽力而为的:实现方自行记录失败,不向调用方返回错误
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher 不发布任何事件(未配置消息队列时使用)
type NopPublisher struct{}

// Publish 实现EventPublisher
func (NopPublisher) Publish(context.Context, Event) {}
