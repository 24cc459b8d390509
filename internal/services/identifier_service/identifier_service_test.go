package services

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlugChecker struct {
	mock.Mock
}

func (m *MockSlugChecker) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain names",
			input: "Anna-Peter",
			want:  "anna-peter",
		},
		{
			name:  "collapses punctuation runs",
			input: "Anna & Peter!!",
			want:  "anna-peter",
		},
		{
			name:  "trims leading and trailing separators",
			input: "--Anna Peter--",
			want:  "anna-peter",
		},
		{
			name:  "keeps digits",
			input: "Anna 2 Peter",
			want:  "anna-2-peter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("no collision", func(t *testing.T) {
		mockRepo := new(MockSlugChecker)
		service := NewIdentifierService(slog.Default(), mockRepo)

		mockRepo.On("SlugExists", ctx, "anna-peter").Return(false, nil).Once()

		slug, err := service.GenerateUniqueSlug(ctx, "Anna", "Peter")
		require.NoError(t, err)
		assert.Equal(t, "anna-peter", slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("suffix increments until free", func(t *testing.T) {
		mockRepo := new(MockSlugChecker)
		service := NewIdentifierService(slog.Default(), mockRepo)

		mockRepo.On("SlugExists", ctx, "anna-peter").Return(true, nil).Once()
		mockRepo.On("SlugExists", ctx, "anna-peter-1").Return(true, nil).Once()
		mockRepo.On("SlugExists", ctx, "anna-peter-2").Return(false, nil).Once()

		slug, err := service.GenerateUniqueSlug(ctx, "Anna", "Peter")
		require.NoError(t, err)
		assert.Equal(t, "anna-peter-2", slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty names rejected", func(t *testing.T) {
		mockRepo := new(MockSlugChecker)
		service := NewIdentifierService(slog.Default(), mockRepo)

		_, err := service.GenerateUniqueSlug(ctx, "--", "!!")
		assert.Error(t, err)
	})
}

func TestGenerateAccessCode(t *testing.T) {
	code, err := GenerateAccessCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)

	for _, ch := range code {
		assert.Contains(t, accessCodeAlphabet, string(ch))
	}

	// Ambiguous glyphs never appear.
	for _, forbidden := range []string{"0", "O", "1", "I", "l"} {
		assert.NotContains(t, accessCodeAlphabet, forbidden)
	}

	// Successive draws are independent; identical 8-char codes from a
	// CSPRNG would be a 1-in-32^8 event.
	other, err := GenerateAccessCode(8)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestGenerateRandomPassword(t *testing.T) {
	password, err := GenerateRandomPassword(0)
	require.NoError(t, err)
	assert.Len(t, password, DefaultCodeLength)

	for _, ch := range password {
		assert.True(t, strings.ContainsRune(passwordAlphabet, ch))
	}
}

func TestClientName(t *testing.T) {
	assert.Equal(t, "Anna & Peter", ClientName("Anna", "Peter"))
}
