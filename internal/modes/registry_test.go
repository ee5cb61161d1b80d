package modes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamesKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, []string{"general", "restaurant", "fitness", "realestate"}, r.Names())
}

func TestPromptForFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, r.PromptFor(Default), r.PromptFor("no-such-mode"))
	require.NotEqual(t, r.PromptFor(Default), r.PromptFor("fitness"))
}

func TestValid(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Valid("realestate"))
	require.False(t, r.Valid("Fitness"))
	require.False(t, r.Valid(""))
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Fitness", Title("fitness"))
	require.Equal(t, "Realestate", Title("realestate"))
	require.Equal(t, "", Title(""))
}
