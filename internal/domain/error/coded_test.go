package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestFailure(t *testing.T) {
	err := fmt.Errorf("saving: %w", NewCategoryError(ErrCodeCategoryInUse, "category is used by 2 expenses", ErrCategoryInUse))

	var coded Coded
	if !errors.As(err, &coded) {
		t.Fatal("expected a coded error in the chain")
	}
	if coded.ErrorCode() != "CAT-020002" || coded.Reason() != "category is used by 2 expenses" {
		t.Errorf("unexpected code %q reason %q", coded.ErrorCode(), coded.Reason())
	}

	var categoryErr *CategoryError
	if !errors.As(err, &categoryErr) || categoryErr.Code != ErrCodeCategoryInUse {
		t.Errorf("expected a CategoryError, got %v", err)
	}
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		t.Error("a category error must not match the card error type")
	}
	if !errors.Is(err, ErrCategoryInUse) {
		t.Error("expected the sentinel to be reachable")
	}
	if got := err.Error(); got != "saving: category is used by 2 expenses: category is used by existing expenses" {
		t.Errorf("unexpected message %q", got)
	}
}
