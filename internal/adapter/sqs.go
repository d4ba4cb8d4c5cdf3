package adapter

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSMessage is one message to publish to an SQS queue
type SQSMessage struct {
	// QueueURL is the https queue URL
	QueueURL string
	// Body is the message body
	Body string
	// Attributes are string message attributes
	Attributes map[string]string
	// GroupID is the MessageGroupId, required for FIFO queues
	GroupID string
}

// SQSClient defines an interface for SQS publish operations to enable mocking
//
//go:generate mockgen -source=sqs.go -destination=../mocks/sqs.go -package=mocks -mock_names=SQSClient=MockSQSClient,SQSClientFactory=MockSQSClientFactory
type SQSClient interface {
	// SendMessage publishes one message and returns the provider message ID
	SendMessage(ctx context.Context, msg SQSMessage) (string, error)
}

// SQSClientFactory builds SQS clients for a region and static credentials.
// Webhook target URLs carry their own credentials, so a client is built per
// target rather than from ambient environment configuration.
type SQSClientFactory interface {
	NewClient(ctx context.Context, region, accessKeyID, secretAccessKey string) (SQSClient, error)
}

// RealSQSClientFactory implements SQSClientFactory using the AWS SDK
type RealSQSClientFactory struct{}

// NewSQSClientFactory creates a new real SQS client factory
func NewSQSClientFactory() SQSClientFactory {
	return &RealSQSClientFactory{}
}

func (f *RealSQSClientFactory) NewClient(ctx context.Context, region, accessKeyID, secretAccessKey string) (SQSClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	return &realSQSClient{client: sqs.NewFromConfig(cfg)}, nil
}

type realSQSClient struct {
	client *sqs.Client
}

func (c *realSQSClient) SendMessage(ctx context.Context, msg SQSMessage) (string, error) {
	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(msg.QueueURL),
		MessageBody: aws.String(msg.Body),
	}

	if len(msg.Attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(msg.Attributes))
		for key, value := range msg.Attributes {
			input.MessageAttributes[key] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(value),
			}
		}
	}

	if msg.GroupID != "" {
		input.MessageGroupId = aws.String(msg.GroupID)
	}

	out, err := c.client.SendMessage(ctx, input)
	if err != nil {
		return "", err
	}

	if out.MessageId == nil {
		return "", nil
	}

	return *out.MessageId, nil
}
