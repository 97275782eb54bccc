package helper

import (
	"sort"
	"strings"
)

// ConversationKey is the same for both directions of a conversation.
func ConversationKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "-")
}
