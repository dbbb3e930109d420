//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"tg_summariser/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func ptr(s string) *string { return &s }

func testSummary() *domain.FolderSummary {
	return &domain.FolderSummary{
		FolderName: "Tech News",
		TotalPosts: 2,
		DateRange:  "14.03.2024 - 15.03.2024",
		MainTopics: []string{"releases", "tooling"},
		Posts: []domain.PostDigest{
			{
				PostID:       1,
				ChannelTitle: "Tech News Daily",
				Date:         time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
				Summary:      "golang release notes",
				Link:         ptr("https://t.me/technews/101"),
			},
			{
				PostID:       2,
				ChannelTitle: "Private Channel",
				Date:         time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
				Summary:      "No text",
			},
		},
		OverallSummary: "Two posts about releases.",
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishDigest() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-digest",
		RoutingKey: "test-routing-key-digest",
		QueueName:  "test-queue-digest",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.Publish(s.ctx, 1, testSummary())
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received DigestMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(int64(1), received.FolderID)
	s.Equal("Tech News", received.Summary.FolderName)
	s.Equal(2, received.Summary.TotalPosts)
	s.Equal([]string{"releases", "tooling"}, received.Summary.MainTopics)
	s.Len(received.Summary.Posts, 2)
	s.Require().NotNil(received.Summary.Posts[0].Link)
	s.Equal("https://t.me/technews/101", *received.Summary.Posts[0].Link)
	s.Nil(received.Summary.Posts[1].Link)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
