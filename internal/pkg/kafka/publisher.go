package kafka

import (
	"Faceoff/internal/api/config"
	"Faceoff/internal/model"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// VotePublisher 把已落库的投票事件发到 Kafka，供下游分析系统消费。
// 发送失败由调用方记日志，不影响投票结果。
type VotePublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewVotePublisher(cfg config.KafkaConfig) (*VotePublisher, error) {
	if !cfg.Enable {
		return nil, nil
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}

	return &VotePublisher{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// Publish 发送单条投票事件，按 caller 分区保证同一用户事件有序
func (p *VotePublisher) Publish(vote *model.Vote) error {
	payload, err := json.Marshal(vote)
	if err != nil {
		return errors.Wrap(err, "marshal vote event")
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(vote.CallerID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return errors.Wrap(err, "send vote event")
	}
	return nil
}

func (p *VotePublisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
