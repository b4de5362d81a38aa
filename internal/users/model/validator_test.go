package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() CandidateUser {
	return CandidateUser{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "+15550100",
		Email:       "ada@example.com",
		CreatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestCandidateValidateStrict(t *testing.T) {
	t.Run("all six fields present and well-typed passes", func(t *testing.T) {
		cand := validCandidate()
		assert.Nil(t, cand.Validate())
	})

	t.Run("missing email reports Email is required", func(t *testing.T) {
		cand := validCandidate()
		cand.Email = ""

		verr := cand.Validate()
		assert.NotNil(t, verr)
		assert.Equal(t, []string{"Email is required"}, verr.Messages())
		assert.Equal(t, "email", verr.Fields[0].Field)
	})

	t.Run("malformed email reports valid-email message", func(t *testing.T) {
		cand := validCandidate()
		cand.Email = "not-an-email"

		verr := cand.Validate()
		assert.NotNil(t, verr)
		assert.Equal(t, []string{"Email must be a valid email address"}, verr.Messages())
	})

	t.Run("zero dates report invalid-date messages", func(t *testing.T) {
		cand := validCandidate()
		cand.CreatedAt = time.Time{}
		cand.UpdatedAt = time.Time{}

		verr := cand.Validate()
		assert.NotNil(t, verr)
		assert.Equal(t, []string{
			"Created At must be a valid date",
			"Updated At must be a valid date",
		}, verr.Messages())
	})

	t.Run("collects every violation, not just the first", func(t *testing.T) {
		cand := CandidateUser{}

		verr := cand.Validate()
		assert.NotNil(t, verr)
		assert.Equal(t, []string{
			"First name is required",
			"Last name is required",
			"Phone number is required",
			"Email is required",
			"Created At must be a valid date",
			"Updated At must be a valid date",
		}, verr.Messages())
	})
}

func TestUserUpdateValidatePartial(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("empty update passes", func(t *testing.T) {
		update := UserUpdate{}
		assert.Nil(t, update.Validate())
		assert.True(t, update.IsEmpty())
	})

	t.Run("subset of fields passes", func(t *testing.T) {
		update := UserUpdate{FirstName: str("Grace"), Email: str("grace@example.com")}
		assert.Nil(t, update.Validate())
		assert.False(t, update.IsEmpty())
	})

	t.Run("present field obeys the strict format rule", func(t *testing.T) {
		update := UserUpdate{Email: str("nope")}

		verr := update.Validate()
		assert.NotNil(t, verr)
		assert.Equal(t, []string{"Email must be a valid email address"}, verr.Messages())
	})

	t.Run("present but empty field is rejected", func(t *testing.T) {
		update := UserUpdate{FirstName: str("")}

		verr := update.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, []string{"First name is required"}, verr.Messages())
	})

	t.Run("present but empty email is rejected", func(t *testing.T) {
		update := UserUpdate{Email: str("")}

		verr := update.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, []string{"Email is required"}, verr.Messages())
	})

	t.Run("present zero time is rejected", func(t *testing.T) {
		zero := time.Time{}
		update := UserUpdate{CreatedAt: &zero, UpdatedAt: &zero}

		verr := update.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, []string{
			"Created At must be a valid date",
			"Updated At must be a valid date",
		}, verr.Messages())
	})

	t.Run("every present-but-empty field keeps the store invariant", func(t *testing.T) {
		update := UserUpdate{
			FirstName:   str(""),
			LastName:    str(""),
			PhoneNumber: str(""),
		}

		verr := update.Validate()
		require.NotNil(t, verr)
		assert.Equal(t, []string{
			"First name is required",
			"Last name is required",
			"Phone number is required",
		}, verr.Messages())
	})
}
