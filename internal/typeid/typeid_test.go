package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCarriesPrefix(t *testing.T) {
	id := NewElementID()
	require.True(t, strings.HasPrefix(id, PrefixElement+"_"), id)
	require.NoError(t, Validate(id, PrefixElement))
}

func TestValidateRejectsWrongPrefix(t *testing.T) {
	require.Error(t, Validate(NewUserID(), PrefixArticle))
	require.Error(t, Validate("garbage", PrefixUser))
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewArticleID()
		require.False(t, seen[id])
		seen[id] = true
	}
}
