package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paceup/paceup/backend-go/internal/article"
	"github.com/paceup/paceup/backend-go/internal/element"
)

func threeLayers() Scene {
	return New([]element.Element{
		{ID: "a", Type: element.TypeRectangle, ZIndex: 10, Visible: true},
		{ID: "b", Type: element.TypeCircle, ZIndex: 11, Visible: true},
		{ID: "c", Type: element.TypeTextBox, ZIndex: 12, Visible: true},
	})
}

func zOf(t *testing.T, s Scene, id string) int {
	t.Helper()
	el, ok := s.Find(id)
	require.True(t, ok, "element %s missing", id)
	return el.ZIndex
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	s := threeLayers()

	s.Delete("a")
	s.BringToFront("a")
	moved, _ := s.Find("b")
	moved.X = 999
	s.Update("b", moved)

	require.Equal(t, 3, s.Len())
	require.Equal(t, 10, zOf(t, s, "a"))
	got, _ := s.Find("b")
	require.Equal(t, 0.0, got.X)
}

func TestUpdatePreservesID(t *testing.T) {
	s := threeLayers()
	el, _ := s.Find("a")
	el.ID = "impostor"
	el.X = 50

	s = s.Update("a", el)
	got, ok := s.Find("a")
	require.True(t, ok)
	require.Equal(t, 50.0, got.X)
	_, ok = s.Find("impostor")
	require.False(t, ok)
}

func TestReorderByZDenseRenumber(t *testing.T) {
	s := New([]element.Element{
		{ID: "a", ZIndex: 3},
		{ID: "b", ZIndex: 17},
		{ID: "c", ZIndex: 42},
	})

	// Move c before a: new order c, a, b.
	s = s.ReorderByZ("c", "a")

	require.Equal(t, 10, zOf(t, s, "c"))
	require.Equal(t, 11, zOf(t, s, "a"))
	require.Equal(t, 12, zOf(t, s, "b"))
}

func TestReorderByZRepeatedStaysDense(t *testing.T) {
	s := threeLayers()
	s = s.ReorderByZ("c", "a") // c a b
	s = s.ReorderByZ("a", "b") // c a b (a already before b)
	s = s.ReorderByZ("b", "c") // b c a

	require.Equal(t, 10, zOf(t, s, "b"))
	require.Equal(t, 11, zOf(t, s, "c"))
	require.Equal(t, 12, zOf(t, s, "a"))
}

func TestReorderByZNoopCases(t *testing.T) {
	s := threeLayers()

	same := s.ReorderByZ("a", "a")
	require.Equal(t, s.Elements(), same.Elements())

	missing := s.ReorderByZ("a", "ghost")
	require.Equal(t, s.Elements(), missing.Elements())
}

func TestBringToFrontSendToBack(t *testing.T) {
	s := threeLayers()

	s = s.BringToFront("a")
	require.Equal(t, 13, zOf(t, s, "a"))

	s = s.SendToBack("c")
	require.Equal(t, 9, zOf(t, s, "c"))
}

func TestPaintOrderSkipsHiddenAndIsStable(t *testing.T) {
	s := New([]element.Element{
		{ID: "first", ZIndex: 10, Visible: true},
		{ID: "hidden", ZIndex: 10, Visible: false},
		{ID: "second", ZIndex: 10, Visible: true},
		{ID: "top", ZIndex: 20, Visible: true},
	})

	order := s.PaintOrder()
	require.Len(t, order, 3)
	require.Equal(t, "first", order[0].ID)
	require.Equal(t, "second", order[1].ID)
	require.Equal(t, "top", order[2].ID)
}

func TestFromArticleIsDeterministic(t *testing.T) {
	a := article.Article{
		ID:           "art_1",
		Title:        "Spring 5k plan",
		Subtitle:     "Eight weeks to race day",
		Description:  "A progressive plan for first-time racers.",
		HeroImageURL: "/assets/hero.jpg",
		BadgeText:    "New",
		Label:        "TRAINING",
		Blocks: []article.Block{
			{ID: "blk_1", Type: article.BlockRichText},
			{ID: "blk_2", Type: article.BlockChecklist},
		},
	}

	s1 := FromArticle(a)
	s2 := FromArticle(a)
	require.Equal(t, s1.Elements(), s2.Elements())

	ids := make([]string, 0, s1.Len())
	for _, el := range s1.Elements() {
		ids = append(ids, el.ID)
	}
	require.Equal(t, []string{"hero", "accent", "label", "title", "info", "badge", "block-blk_1", "block-blk_2"}, ids)

	hero, _ := s1.Find("hero")
	require.Equal(t, 40.0, hero.X)
	require.Equal(t, 40.0, hero.Y)
	require.True(t, hero.Visible)
	require.Equal(t, 1.0, hero.Opacity)

	title, _ := s1.Find("title")
	require.Equal(t, "#1a1a2e", title.TextColor)
	require.Equal(t, "#5b5b6b", title.SubtitleColor)
}

func TestFromArticleOmitsEmptyFacets(t *testing.T) {
	s := FromArticle(article.Article{ID: "art_1", Title: "Bare"})

	for _, id := range []string{"hero", "label", "badge"} {
		_, ok := s.Find(id)
		require.False(t, ok, "%s should not be seeded", id)
	}
	_, ok := s.Find("title")
	require.True(t, ok)

	// zIndex dense from the base even with facets skipped
	require.Equal(t, 10, zOf(t, s, "accent"))
	require.Equal(t, 11, zOf(t, s, "title"))
	require.Equal(t, 12, zOf(t, s, "info"))
}

func TestFromArticleSeedsSampleBlocks(t *testing.T) {
	a := article.NewSampleArticle("art_sample")
	s := FromArticle(*a)

	blocks := 0
	for _, el := range s.Elements() {
		if el.Type == element.TypeArticleBlockRef {
			blocks++
			require.Equal(t, "block-"+el.BlockID, el.ID)
		}
	}
	require.Equal(t, len(a.Blocks), blocks)
}

func TestMaxZMinZEmptyScene(t *testing.T) {
	var s Scene
	require.Equal(t, 9, s.MaxZ())
	require.Equal(t, 11, s.MinZ())
}
