// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package validation

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestValidateStruct_RecommendationsRequest(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantTag string
		wantMsg string
	}{
		{"valid", "user-123", "", ""},
		{"missing", "", "required", "userId is required"},
		{"too long", strings.Repeat("a", 129), "max", "userId must be at most 128 characters"},
		{"whitespace", "user 1", "identifier", "userId must not contain whitespace"},
		{"control char", "user\x00", "identifier", "userId must not contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&RecommendationsRequest{UserID: tt.userID})
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}

			var reqErr *RequestValidationError
			if !errors.As(err, &reqErr) {
				t.Fatalf("ValidateStruct() error = %v, want *RequestValidationError", err)
			}
			fields := reqErr.Errors()
			if len(fields) != 1 {
				t.Fatalf("got %d field errors, want 1", len(fields))
			}
			if fields[0].Field() != "userId" {
				t.Errorf("Field() = %q, want userId", fields[0].Field())
			}
			if fields[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", fields[0].Tag(), tt.wantTag)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	type pair struct {
		A string `query:"a" validate:"required"`
		B int    `validate:"min=2"`
	}

	err := ValidateStruct(&pair{B: 1})
	var reqErr *RequestValidationError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v", err)
	}
	if len(reqErr.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(reqErr.Errors()))
	}
	if got := err.Error(); got != "a is required; B must be at least 2" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	if err := ValidateStruct("not a struct"); err == nil {
		t.Fatal("expected error for non-struct input")
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	var wg sync.WaitGroup
	seen := make(chan interface{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- GetValidator()
		}()
	}
	wg.Wait()
	close(seen)

	first := GetValidator()
	for v := range seen {
		if v != first {
			t.Fatal("GetValidator() returned different instances")
		}
	}
}
