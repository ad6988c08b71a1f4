package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
)

// Producer тонкая обертка над sarama.SyncProducer: постановка заданий
// в очередь и отправка исчерпавших попытки сообщений в dead-letter топик.
type Producer struct {
	internal sarama.SyncProducer
}

func NewProducer(brokers []string, versionStr string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	return &Producer{internal: producer}, nil
}

// Enqueue сериализует payload в JSON и публикует в topic.
// Key задает партицию: события одной сущности должны попадать
// в одну партицию, чтобы сохранять порядок.
func (p *Producer) Enqueue(topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.internal.SendMessage(msg); err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}
	return nil
}

// DeadLetter переносит исходное сообщение в <topic>.dlq с сохранением
// полного payload для ручного разбора и replay.
func (p *Producer) DeadLetter(topic, key string, raw []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic + ".dlq",
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(raw),
	}

	if _, _, err := p.internal.SendMessage(msg); err != nil {
		return fmt.Errorf("send message to %s.dlq: %w", topic, err)
	}

	deadLettersTotal.WithLabelValues(topic).Inc()
	return nil
}

func (p *Producer) Close() error {
	return p.internal.Close()
}
