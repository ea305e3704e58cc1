package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchGrants(t *testing.T) {
	grants := []StudentCourse{
		{StudentEmail: "alice@example.com"},
		{StudentEmail: "Bob@Example.com"},
		{StudentEmail: "carol@test.org"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: []string{"alice@example.com", "Bob@Example.com", "carol@test.org"}},
		{name: "substring match", query: "example", want: []string{"alice@example.com", "Bob@Example.com"}},
		{name: "case insensitive", query: "BOB", want: []string{"Bob@Example.com"}},
		{name: "no match", query: "nobody", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchGrants(grants, tt.query)
			emails := make([]string, 0, len(got))
			for _, g := range got {
				emails = append(emails, g.StudentEmail)
			}
			assert.Equal(t, tt.want, emails)
		})
	}
}
