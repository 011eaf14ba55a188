package model

import "testing"

func TestCatalogSetProducts(t *testing.T) {
	rec := &recorder{}
	c := NewCatalog(rec)

	in := []Product{
		{ID: "p1", Title: "Gizmo"},
		{ID: "p2", Title: "Widget"},
	}
	c.SetProducts(in)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	got := c.Products()
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Fatalf("Products()[%d] = %q, want %q (server order preserved)", i, got[i].ID, in[i].ID)
		}
	}
	if rec.count(TopicCatalogChanged) != 1 {
		t.Fatalf("catalog-changed emitted %d times, want 1", rec.count(TopicCatalogChanged))
	}
}

func TestCatalogSetProductsClearsSelection(t *testing.T) {
	rec := &recorder{}
	c := NewCatalog(rec)
	c.SetProducts([]Product{{ID: "p1"}})
	c.Select(Product{ID: "p1"})

	c.SetProducts([]Product{{ID: "p2"}})

	if _, ok := c.Selected(); ok {
		t.Fatal("selection survived a catalog replacement")
	}
}

func TestCatalogProductByID(t *testing.T) {
	rec := &recorder{}
	c := NewCatalog(rec)
	c.SetProducts([]Product{{ID: "p1", Title: "Gizmo"}})

	p, ok := c.ProductByID("p1")
	if !ok || p.Title != "Gizmo" {
		t.Fatalf("ProductByID(p1) = %+v, %v", p, ok)
	}
	if _, ok := c.ProductByID("nope"); ok {
		t.Fatal("ProductByID(nope) reported found")
	}
}

func TestCatalogSelectEmitsPreviewChanged(t *testing.T) {
	rec := &recorder{}
	c := NewCatalog(rec)
	p := Product{ID: "p1", Title: "Gizmo"}
	c.SetProducts([]Product{p})

	c.Select(p)

	sel, ok := c.Selected()
	if !ok || sel.ID != "p1" {
		t.Fatalf("Selected() = %+v, %v", sel, ok)
	}
	if rec.count(TopicPreviewChanged) != 1 {
		t.Fatalf("preview-changed emitted %d times, want 1", rec.count(TopicPreviewChanged))
	}
}

func TestCatalogClearSelectionIsSilent(t *testing.T) {
	rec := &recorder{}
	c := NewCatalog(rec)
	c.Select(Product{ID: "p1"})
	before := len(rec.topics)

	c.ClearSelection()

	if _, ok := c.Selected(); ok {
		t.Fatal("selection survived ClearSelection")
	}
	if len(rec.topics) != before {
		t.Fatal("ClearSelection emitted an event")
	}
}

func TestCatalogProductsSnapshotIsDetached(t *testing.T) {
	rec := &recorder{}
	c := NewCatalog(rec)
	c.SetProducts([]Product{{ID: "p1", Title: "Gizmo"}})

	snap := c.Products()
	snap[0].Title = "mutated"

	if got := c.Products()[0].Title; got != "Gizmo" {
		t.Fatalf("catalog title = %q after mutating snapshot", got)
	}
}
