package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/user-statistics/internal/models"
)

// Channel описывает часть amqp.Channel, нужную для публикации.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// PublishMessage публикует сообщение в RabbitMQ.
func PublishMessage(ch Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Publisher отправляет события о принятых запросах в exchange с routing key.
type Publisher struct {
	ch         Channel
	exchange   string
	routingKey string
}

// NewPublisher создает Publisher поверх открытого канала.
func NewPublisher(ch Channel, exchange, routingKey string) *Publisher {
	return &Publisher{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
	}
}

// RequestSubmitted публикует событие о сохраненном запросе.
func (p *Publisher) RequestSubmitted(ctx context.Context, event models.SubmittedEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("rabbitmq.Publisher.RequestSubmitted: %w", err)
	}
	return PublishMessage(p.ch, p.exchange, p.routingKey, event)
}
