package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/llm"
	mock_llm "portfolio/backend/internal/llm/mocks"
)

func threeKeyPool() *llm.Pool {
	return llm.NewPoolFromKeys([]string{"aaa", "bbb", "ccc"})
}

func TestRotatingClient_FirstCredentialSucceeds(t *testing.T) {
	provider := mock_llm.NewMockProvider(t)
	client := llm.NewRotatingClient(provider, threeKeyPool(), nil)
	req := &llm.CompletionRequest{Messages: []llm.Message{{Role: "user", Content: "Hi"}}}

	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-1", Key: "aaa"}, req).
		Return(&llm.Completion{Text: "Hello!"}, nil).Once()

	completion, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", completion.Text)
}

func TestRotatingClient_RotatesPastFailingCredentials(t *testing.T) {
	provider := mock_llm.NewMockProvider(t)
	client := llm.NewRotatingClient(provider, threeKeyPool(), nil)
	req := &llm.CompletionRequest{Messages: []llm.Message{{Role: "user", Content: "Hi"}}}

	// The first two credentials fail rotatably; the third succeeds. The
	// caller sees only the success, with exactly three upstream attempts.
	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-1", Key: "aaa"}, req).
		Return(nil, &llm.ProviderError{Status: 401, Body: "invalid key"}).Once()
	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-2", Key: "bbb"}, req).
		Return(nil, &llm.ProviderError{Status: 429, Body: "quota"}).Once()
	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-3", Key: "ccc"}, req).
		Return(&llm.Completion{Text: "Recovered"}, nil).Once()

	completion, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Recovered", completion.Text)
	provider.AssertNumberOfCalls(t, "Complete", 3)
}

func TestRotatingClient_AllCredentialsExhausted(t *testing.T) {
	provider := mock_llm.NewMockProvider(t)
	client := llm.NewRotatingClient(provider, threeKeyPool(), nil)
	req := &llm.CompletionRequest{Messages: []llm.Message{{Role: "user", Content: "Hi"}}}

	provider.On("Complete", mock.Anything, mock.Anything, req).
		Return(nil, &llm.ProviderError{Status: 429, Body: "quota exceeded for key"}).Times(3)

	_, err := client.Complete(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrProviderExhausted)
	// Exactly pool-size attempts, never pool-size+1.
	provider.AssertNumberOfCalls(t, "Complete", 3)
}

func TestRotatingClient_NonRotatableStopsImmediately(t *testing.T) {
	provider := mock_llm.NewMockProvider(t)
	client := llm.NewRotatingClient(provider, threeKeyPool(), nil)
	req := &llm.CompletionRequest{Messages: []llm.Message{{Role: "user", Content: "Hi"}}}

	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-1", Key: "aaa"}, req).
		Return(nil, &llm.ProviderError{Status: 400, Body: "malformed"}).Once()

	_, err := client.Complete(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrProviderRejected)
	provider.AssertNumberOfCalls(t, "Complete", 1)
}

func TestRotatingClient_SharedCursorAdvances(t *testing.T) {
	provider := mock_llm.NewMockProvider(t)
	pool := threeKeyPool()
	client := llm.NewRotatingClient(provider, pool, nil)
	req := &llm.CompletionRequest{Messages: []llm.Message{{Role: "user", Content: "Hi"}}}

	// First request burns key-1 and succeeds on key-2.
	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-1", Key: "aaa"}, req).
		Return(nil, &llm.ProviderError{Status: 401}).Once()
	provider.On("Complete", mock.Anything, llm.Credential{Label: "key-2", Key: "bbb"}, req).
		Return(&llm.Completion{Text: "ok"}, nil).Twice()

	_, err := client.Complete(context.Background(), req)
	require.NoError(t, err)

	// The shared cursor moved past key-1, so the next request starts at key-2
	// instead of rediscovering the dead credential.
	_, err = client.Complete(context.Background(), req)
	require.NoError(t, err)
	provider.AssertNumberOfCalls(t, "Complete", 3)
}

func TestRotatingClient_EmptyPool(t *testing.T) {
	provider := mock_llm.NewMockProvider(t)
	client := llm.NewRotatingClient(provider, llm.NewPool(nil), nil)

	_, err := client.Complete(context.Background(), &llm.CompletionRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrProviderExhausted)
}
