package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"emojiexplainer/internal/model"
	"emojiexplainer/internal/repository"
)

// StarterEmojis is the built-in set loaded by the seed command and endpoint,
// so fresh installs can serve lookups before the first provider call.
var StarterEmojis = []model.Emoji{
	{Character: "😀", Meaning: "grinning face"},
	{Character: "😂", Meaning: "face with tears of joy"},
	{Character: "❤️", Meaning: "red heart"},
	{Character: "👍", Meaning: "thumbs up"},
	{Character: "🔥", Meaning: "fire"},
	{Character: "🎉", Meaning: "party popper"},
	{Character: "😢", Meaning: "crying face"},
	{Character: "🤔", Meaning: "thinking face"},
}

// SeedService loads starter data.
type SeedService interface {
	// SeedEmojis inserts the starter emoji set, skipping characters that
	// already exist. Returns the number of newly created records.
	SeedEmojis(ctx context.Context) (int, error)
}

type seedService struct {
	emojiRepo repository.EmojiRepository
}

// NewSeedService builds a SeedService.
func NewSeedService(emojiRepo repository.EmojiRepository) SeedService {
	return &seedService{emojiRepo: emojiRepo}
}

func (s *seedService) SeedEmojis(ctx context.Context) (int, error) {
	created := 0
	for _, emoji := range StarterEmojis {
		_, err := s.emojiRepo.FindByCharacter(ctx, emoji.Character)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("check emoji %s: %w", emoji.Character, err)
		}

		record := emoji
		if err := s.emojiRepo.Create(ctx, &record); err != nil {
			// Another seeder got there first; not a failure.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return created, fmt.Errorf("create emoji %s: %w", emoji.Character, err)
		}
		created++
	}
	return created, nil
}
