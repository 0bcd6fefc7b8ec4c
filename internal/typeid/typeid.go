package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixUser    = "user"
	PrefixArticle = "art"
	PrefixBlock   = "blk"
	PrefixElement = "el"
	PrefixLayout  = "lay"
	PrefixAsset   = "asset"
	PrefixSession = "sess"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewUserID() string    { return New(PrefixUser) }
func NewArticleID() string { return New(PrefixArticle) }
func NewBlockID() string   { return New(PrefixBlock) }
func NewElementID() string { return New(PrefixElement) }
func NewLayoutID() string  { return New(PrefixLayout) }
func NewAssetID() string   { return New(PrefixAsset) }
func NewSessionID() string { return New(PrefixSession) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
