package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"emojiexplainer/internal/cache"
	apperrors "emojiexplainer/internal/errors"
	"emojiexplainer/internal/model"
	"emojiexplainer/internal/repository"
)

const emojiCacheTTL = 24 * time.Hour

// MeaningProvider is the remote lookup for emoji meanings.
type MeaningProvider interface {
	Explain(ctx context.Context, emoji string) (string, error)
}

// EmojiService resolves emoji characters to meanings, preferring the local
// store and persisting newly learned meanings for reuse.
type EmojiService interface {
	// Resolve returns the meaning for character. The store is a write-once
	// memo: at most one record per character ever exists, and a lost
	// creation race falls back to reading the winner's record instead of
	// failing the caller.
	Resolve(ctx context.Context, character string) (*model.Emoji, error)
	ListSupported(ctx context.Context) ([]model.Emoji, error)
}

type emojiService struct {
	repo     repository.EmojiRepository
	provider MeaningProvider
	cache    *cache.Client
}

// NewEmojiService builds an EmojiService.
func NewEmojiService(repo repository.EmojiRepository, provider MeaningProvider, cache *cache.Client) EmojiService {
	return &emojiService{repo: repo, provider: provider, cache: cache}
}

func (s *emojiService) cacheKey(character string) string {
	return fmt.Sprintf("emoji:%s", character)
}

func (s *emojiService) Resolve(ctx context.Context, character string) (*model.Emoji, error) {
	if character == "" {
		return nil, apperrors.ErrEmojiNotFound
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(character)); data != nil {
		var cached model.Emoji
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	emoji, err := s.repo.FindByCharacter(ctx, character)
	if err == nil {
		s.cachePut(ctx, emoji)
		return emoji, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup emoji: %w", err)
	}

	meaning, err := s.provider.Explain(ctx, character)
	if err != nil {
		// No placeholder record, no retry.
		return nil, err
	}

	emoji = &model.Emoji{Character: character, Meaning: meaning}
	if err := s.repo.Create(ctx, emoji); err != nil {
		// A concurrent resolution beat us to the insert. The unique key
		// guarantees a single stored meaning; the first writer wins and
		// our value is discarded.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, readErr := s.repo.FindByCharacter(ctx, character)
			if readErr != nil {
				return nil, fmt.Errorf("re-read emoji after lost race: %w", readErr)
			}
			s.cachePut(ctx, existing)
			return existing, nil
		}
		return nil, fmt.Errorf("store emoji: %w", err)
	}

	s.cachePut(ctx, emoji)
	return emoji, nil
}

func (s *emojiService) ListSupported(ctx context.Context) ([]model.Emoji, error) {
	return s.repo.List(ctx)
}

// cachePut is best-effort; the database remains the source of truth.
func (s *emojiService) cachePut(ctx context.Context, emoji *model.Emoji) {
	if payload, err := json.Marshal(emoji); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(emoji.Character), payload, emojiCacheTTL)
	}
}
