package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"kama_community_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaBroker 分布式模式：事件以 JSON 写入 Kafka 主题，由消费者组读取后处理
type KafkaBroker struct {
	producer *kafka.Writer
	consumer *kafka.Reader
	handler  EventHandler

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	started atomic.Bool
}

// NewKafkaBroker 根据配置创建 Writer/Reader
func NewKafkaBroker(conf config.KafkaConfig) *KafkaBroker {
	ctx, cancel := context.WithCancel(context.Background())
	timeout := conf.Timeout * time.Second
	return &KafkaBroker{
		producer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.HostPort),
			Topic:                  conf.EventTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           timeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: false,
		},
		consumer: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{conf.HostPort},
			Topic:          conf.EventTopic,
			GroupID:        conf.GroupID,
			CommitInterval: timeout,
			StartOffset:    kafka.LastOffset,
		}),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (k *KafkaBroker) SetHandler(handler EventHandler) {
	k.handler = handler
}

// Publish 同一分区键的事件保持顺序
func (k *KafkaBroker) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
	})
}

// Start 启动消费循环
func (k *KafkaBroker) Start() {
	if !k.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(k.done)
		for {
			m, err := k.consumer.ReadMessage(k.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					return
				}
				zap.L().Error("kafka read event", zap.Error(err))
				continue
			}
			k.handle(m)
		}
	}()
}

func (k *KafkaBroker) handle(m kafka.Message) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("chat event handler panic", zap.Any("recover", r))
		}
	}()

	var event Event
	if err := json.Unmarshal(m.Value, &event); err != nil {
		zap.L().Error("decode chat event",
			zap.Int("partition", m.Partition), zap.Int64("offset", m.Offset), zap.Error(err))
		return
	}
	if k.handler != nil {
		k.handler.Handle(k.ctx, event)
	}
}

// Close 停止消费循环并关闭连接
func (k *KafkaBroker) Close() {
	k.cancel()
	if err := k.consumer.Close(); err != nil {
		zap.L().Error("close kafka reader", zap.Error(err))
	}
	if k.started.Load() {
		<-k.done
	}
	if err := k.producer.Close(); err != nil {
		zap.L().Error("close kafka writer", zap.Error(err))
	}
}
