package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_Verify(t *testing.T) {
	creds := Credentials{
		TechToken:  "tech-secret",
		AdminToken: "admin-secret",
	}

	tests := []struct {
		name  string
		token string
		want  AccessLevel
	}{
		{name: "tech token", token: "tech-secret", want: LevelTech},
		{name: "admin token", token: "admin-secret", want: LevelAdmin},
		{name: "unknown token", token: "nope", want: LevelNone},
		{name: "empty token", token: "", want: LevelNone},
		{name: "tech token with whitespace", token: " tech-secret", want: LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, creds.Verify(tt.token))
		})
	}
}

func TestIdentity_CanAccess(t *testing.T) {
	job := &Job{ID: 1, TechName: "Alice"}

	tests := []struct {
		name  string
		ident Identity
		want  bool
	}{
		{name: "owner", ident: Identity{Level: LevelTech, TechName: "Alice"}, want: true},
		{name: "owner with padding", ident: Identity{Level: LevelTech, TechName: " Alice "}, want: true},
		{name: "other tech", ident: Identity{Level: LevelTech, TechName: "Bob"}, want: false},
		{name: "tech without a name", ident: Identity{Level: LevelTech}, want: false},
		{name: "admin", ident: Identity{Level: LevelAdmin}, want: true},
		{name: "unauthenticated", ident: Identity{Level: LevelNone, TechName: "Alice"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ident.CanAccess(job))
		})
	}
}
