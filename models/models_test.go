package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	var r CulturalResource
	assert.Equal(t, []string{}, r.TagList())

	r.SetTags([]string{" history ", "", "  ", "hunan"})
	assert.Equal(t, "history,hunan", r.Tags)
	assert.Equal(t, []string{"history", "hunan"}, r.TagList())

	r.SetTags([]string{"changsha,xiangtan", " , "})
	assert.Equal(t, "changshaxiangtan", r.Tags)
	assert.Equal(t, []string{"changshaxiangtan"}, r.TagList())

	r.SetTags(nil)
	assert.Equal(t, "", r.Tags)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, CanTransition(StatusDraft, StatusPublished))
	assert.True(t, CanTransition(StatusPublished, StatusPublished))
	assert.False(t, CanTransition(StatusPublished, StatusDraft))
	assert.False(t, ValidStatus("archived"))
}

func TestComment_IsTopLevel(t *testing.T) {
	parent := uint(1)
	assert.True(t, (&Comment{}).IsTopLevel())
	assert.False(t, (&Comment{ParentID: &parent}).IsTopLevel())
}
