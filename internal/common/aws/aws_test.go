package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	mock.Mock
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

type mockSNS struct {
	mock.Mock
}

func (m *mockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sns.PublishOutput), args.Error(1)
}

func TestSESClient_Send(t *testing.T) {
	api := new(mockSES)
	api.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return awssdk.ToString(in.Source) == "from@example.com" &&
			len(in.Destination.ToAddresses) == 1 &&
			awssdk.ToString(in.Message.Subject.Data) == "Your results" &&
			in.Message.Body.Html != nil && in.Message.Body.Text != nil
	})).Return(&ses.SendEmailOutput{MessageId: awssdk.String("msg-1")}, nil)

	id, err := NewSESClientWithAPI(api).Send(context.Background(), Email{
		From:    "from@example.com",
		To:      []string{"to@example.com"},
		Subject: "Your results",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	api.AssertExpectations(t)
}

func TestSESClient_SendError(t *testing.T) {
	api := new(mockSES)
	api.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	_, err := NewSESClientWithAPI(api).Send(context.Background(), Email{From: "a@b.c", To: []string{"d@e.f"}, Text: "x"})
	assert.ErrorContains(t, err, "throttled")
}

func TestSNSClient_PublishEvent(t *testing.T) {
	api := new(mockSNS)
	var captured *sns.PublishInput
	api.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*sns.PublishInput) }).
		Return(&sns.PublishOutput{MessageId: awssdk.String("sns-1")}, nil)

	id, err := NewSNSClientWithAPI(api).PublishEvent(context.Background(), "arn:aws:sns:us-east-1:1:topic", "assessment.completed",
		map[string]interface{}{"sessionId": "s-1"})
	require.NoError(t, err)
	assert.Equal(t, "sns-1", id)

	require.NotNil(t, captured)
	assert.Equal(t, "arn:aws:sns:us-east-1:1:topic", awssdk.ToString(captured.TopicArn))
	assert.Equal(t, "assessment.completed", awssdk.ToString(captured.MessageAttributes["eventType"].StringValue))

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(awssdk.ToString(captured.Message)), &body))
	assert.Equal(t, "s-1", body["sessionId"])
}
