package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-assistant/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "USER_ALREADY_EXISTS", "exists"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected HTTPError in chain")
	}
	if he.StatusCode != http.StatusConflict || he.Code != "USER_ALREADY_EXISTS" {
		t.Errorf("unexpected error %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be an HTTPError")
	}
}
