package lead

import (
	"testing"

	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/docsense/docsense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLead(t *testing.T) {
	l := New("Anna Keller", "anna@example.ch", "Keller Treuhand AG")

	assert.NotEmpty(t, l.ID)
	assert.Contains(t, l.ID, "lead_")
	assert.Equal(t, types.LocaleDefault, l.Locale)
	assert.Equal(t, SourceContact, l.Source)
	assert.False(t, l.CreatedAt.IsZero())
	assert.NoError(t, l.Validate())
}

func TestLeadValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Lead)
	}{
		{"missing name", func(l *Lead) { l.Name = "" }},
		{"invalid email", func(l *Lead) { l.Email = "not-an-email" }},
		{"empty email", func(l *Lead) { l.Email = "" }},
		{"unknown source", func(l *Lead) { l.Source = "newsletter" }},
		{"unknown locale", func(l *Lead) { l.Locale = "fr" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New("Anna Keller", "anna@example.ch", "Keller Treuhand AG")
			tc.mutate(l)

			err := l.Validate()
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
