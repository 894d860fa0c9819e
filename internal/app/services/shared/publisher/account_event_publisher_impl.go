package publisher

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp091.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type accountEventPublisher struct {
	Channel Channel
	Queue   string
}

func NewAccountEventPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.AccountEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return NewAccountEventPublisherWithChannel(channel, queue), nil
}

func NewAccountEventPublisherWithChannel(channel Channel, queue string) contracts.AccountEventPublisher {
	return &accountEventPublisher{
		Channel: channel,
		Queue:   queue,
	}
}

func (p *accountEventPublisher) PublishAccountRegistered(ctx context.Context, event *models.AccountRegisteredEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"event":            constvars.AccountRegisteredEvent,
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		MessageId:    event.AccountID,
		Timestamp:    event.OccurredAt,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	return nil
}
