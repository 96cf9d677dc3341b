package repository

import (
	"context"
	"errors"
	"testing"

	"stock-insight/internal/dto"
	"stock-insight/pkg/logger"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeChatModel struct {
	received [][]*schema.Message
	reply    *schema.Message
	err      error
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.received = append(f.received, input)
	return f.reply, f.err
}

func TestOpenAIChatRepository_Complete(t *testing.T) {
	fake := &fakeChatModel{reply: &schema.Message{Role: schema.Assistant, Content: "Hi there!"}}
	repo := newOpenAIChatRepository(fake, testConfig(""), logger.NewNop())

	got, err := repo.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", got)

	require.Len(t, fake.received, 1)
	require.Len(t, fake.received[0], 1, "exactly one message is forwarded")
	assert.Equal(t, schema.User, fake.received[0][0].Role)
	assert.Equal(t, "hello", fake.received[0][0].Content)
}

func TestOpenAIChatRepository_Errors(t *testing.T) {
	repo := newOpenAIChatRepository(&fakeChatModel{err: errors.New("429 rate limited")}, testConfig(""), logger.NewNop())
	_, err := repo.Complete(context.Background(), "hello")
	assert.ErrorContains(t, err, "429 rate limited")

	repo = newOpenAIChatRepository(&fakeChatModel{}, testConfig(""), logger.NewNop())
	_, err = repo.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, dto.ErrEmptyCompletion)
}

type fakeGemini struct {
	model    string
	contents []*genai.Content
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeGemini) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func TestGeminiChatRepository_Complete(t *testing.T) {
	fake := &fakeGemini{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "Hi "}, {Text: "there"}}},
		}},
	}}
	repo := newGeminiChatRepository(fake, testConfig(""), logger.NewNop())

	got, err := repo.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there", got)
	assert.Equal(t, "gemini-2.0-flash", fake.model)
	require.Len(t, fake.contents, 1)
	assert.Equal(t, "user", string(fake.contents[0].Role))
	assert.Equal(t, "hello", fake.contents[0].Parts[0].Text)
}

func TestGeminiChatRepository_NoCandidates(t *testing.T) {
	repo := newGeminiChatRepository(&fakeGemini{resp: &genai.GenerateContentResponse{}}, testConfig(""), logger.NewNop())
	_, err := repo.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, dto.ErrEmptyCompletion)
}
