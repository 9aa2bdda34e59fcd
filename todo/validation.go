package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrDescriptionTooLong is returned when a description exceeds
	// MaxDescriptionLength.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrUnknownCategory is returned when a task references a category
	// that does not exist.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrTaskNotFound is returned when a task with the given ID doesn't
	// exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyCategoryName is returned when a category name is empty.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrDuplicateCategory is returned when a category with the same name
	// already exists.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrCategoryNotFound is returned when a category with the given name
	// doesn't exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNotEmpty is returned when deleting a category that still
	// has tasks referencing it.
	ErrCategoryNotEmpty = errors.New("category still has tasks")

	// ErrEmptySnapshot is returned when an imported snapshot carries no
	// task collection.
	ErrEmptySnapshot = errors.New("snapshot has no tasks")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateDescription checks if the description is valid.
func ValidateDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return fmt.Errorf("%w: %d > %d", ErrDescriptionTooLong, len([]rune(description)), MaxDescriptionLength)
	}
	return nil
}

// ValidateCategoryName checks if the category name is valid.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCategoryName
	}
	return nil
}
