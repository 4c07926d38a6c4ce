package rocketmq

import (
	"Portfolio/config"
	"Portfolio/pkg/log"
	"Portfolio/pkg/snowflake"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

const (
	TagGuestbookCreated = "guestbook.created"
	TagGuestbookDeleted = "guestbook.deleted"
	TagLikeToggled      = "like.toggled"
)

// Event 领域事件消息体
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Publisher 事件发布, 失败只记录日志不影响请求
type Publisher interface {
	Publish(ctx context.Context, tag string, payload any)
}

func init() {
	rlog.SetLogLevel("error")
}

// NopPublisher rocketmq 未启用时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) {}

// Sender rocketmq.Producer 中用到的部分
type Sender interface {
	SendSync(ctx context.Context, msg ...*primitive.Message) (*primitive.SendResult, error)
	Shutdown() error
}

type Rocketmq struct {
	RocketmqProducer Sender
	Topic            string
	Timeout          time.Duration

	// 未完成的发送, Shutdown 时等待
	inflight sync.WaitGroup
}

func NewPublisher(cfg *config.RocketMQConfig) Publisher {
	if !cfg.Enabled {
		log.L.Info("rocketmq disabled")
		return NopPublisher{}
	}
	p := InitProducer(cfg)
	if p == nil {
		return NopPublisher{}
	}
	return &Rocketmq{RocketmqProducer: p, Topic: cfg.Topic, Timeout: cfg.Producer.SendTimeout()}
}

func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
		producer.WithSendMsgTimeout(cfg.Producer.SendTimeout()),
	)
	if err != nil {
		log.L.Error("init producer", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")

	return p
}

// Publish 在后台 goroutine 发送, 不占用请求耗时.
// 发送使用脱离请求取消的 ctx, 并受 Timeout 限制
func (p *Rocketmq) Publish(ctx context.Context, tag string, payload any) {
	event := Event{
		ID:         snowflake.GenString(),
		Type:       tag,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.L.Error("marshal event", zap.String("type", tag), zap.Error(err))
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout())
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		defer cancel()
		if err := p.SendMsg(sendCtx, tag, event.ID, body); err != nil {
			log.L.Warn("publish event", zap.String("type", tag), zap.String("key", event.ID), zap.Error(err))
		}
	}()
}

func (p *Rocketmq) SendMsg(ctx context.Context, tag, key string, body []byte) error {
	msg := primitive.NewMessage(p.Topic, body)
	msg.WithTag(tag)
	msg.WithKeys([]string{key})

	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msgId", res.MsgID))
	return nil
}

// Shutdown 等待已发出的消息结束后关闭 producer
func (p *Rocketmq) Shutdown() error {
	p.inflight.Wait()
	return p.RocketmqProducer.Shutdown()
}

func (p *Rocketmq) timeout() time.Duration {
	if p.Timeout <= 0 {
		return 3 * time.Second
	}
	return p.Timeout
}
