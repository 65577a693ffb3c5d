package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidExercise = errors.New("invalid exercise")

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Category string

const (
	CategoryWarmup   Category = "warmup"
	CategoryStrength Category = "strength"
	CategoryAgility  Category = "agility"
	CategorySkill    Category = "skill"
	CategoryCooldown Category = "cooldown"
)

// Exercise is the catalog entry a session is started from.
type Exercise struct {
	ID              string     `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Description     string     `json:"description" yaml:"description"`
	Instructions    string     `json:"instructions" yaml:"instructions"`
	DurationSeconds int        `json:"durationSeconds" yaml:"duration_seconds"`
	Difficulty      Difficulty `json:"difficulty" yaml:"difficulty"`
	Category        Category   `json:"category" yaml:"category"`
	Points          int        `json:"points" yaml:"points"`
}

func (e Exercise) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidExercise)
	}
	if e.DurationSeconds < 0 {
		return fmt.Errorf("%w: %s has negative duration %d", ErrInvalidExercise, e.ID, e.DurationSeconds)
	}
	if e.Points < 0 {
		return fmt.Errorf("%w: %s has negative points %d", ErrInvalidExercise, e.ID, e.Points)
	}
	return nil
}

// Steps returns the instruction text split into display steps.
func (e Exercise) Steps() []string {
	return SplitInstructions(e.Instructions)
}
