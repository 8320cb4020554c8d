package models

// Publication status shared by CulturalResource and CommunityPost.
// The only transition is draft -> published.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatus reports whether s is a known publication status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

// CanTransition reports whether an entity in status from may move to status to.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return from == StatusDraft && to == StatusPublished
}
