package resource_test

import (
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"consulate-console/internal/resource"
)

func newsDescriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:         "news",
		BasePath:     "/news",
		DefaultLimit: 10,
		Filters: []resource.FilterField{
			{Name: "title", Kind: resource.FilterText},
			{Name: "status", Kind: resource.FilterEnum, Values: []string{"DRAFT", "PUBLISHED", "ARCHIVED"}},
		},
	}
}

func TestFilters(t *testing.T) {
	t.Run("non-page filter change resets page to 1", func(t *testing.T) {
		f := resource.NewFilters(newsDescriptor())
		f.SetPage(4)
		f.Set("title", "visa")
		if f.Page() != 1 {
			t.Errorf("expected page reset to 1, got %d", f.Page())
		}

		f.SetPage(3)
		f.Set("status", "PUBLISHED")
		if f.Page() != 1 {
			t.Errorf("status change: expected page reset to 1, got %d", f.Page())
		}

		f.SetPage(2)
		f.SetLimit(20)
		if f.Page() != 1 {
			t.Errorf("limit change: expected page reset to 1, got %d", f.Page())
		}
	})

	t.Run("defaults are omitted from the URL", func(t *testing.T) {
		f := resource.NewFilters(newsDescriptor())
		if got := f.Encode().Encode(); got != "" {
			t.Errorf("pristine state must encode empty, got %q", got)
		}

		f.Set("title", "visa")
		f.SetPage(2)
		q := f.Encode()
		if q.Get("title") != "visa" || q.Get("page") != "2" {
			t.Errorf("unexpected encoding: %v", q)
		}
		if q.Has("limit") || q.Has("status") {
			t.Errorf("default limit/status must not be encoded: %v", q)
		}
	})

	t.Run("clearing to default removes from URL", func(t *testing.T) {
		f := resource.NewFilters(newsDescriptor())
		f.Set("status", "DRAFT")
		f.Set("status", "all")
		if f.Encode().Has("status") {
			t.Errorf(`"all" must clear the enum filter`)
		}
	})

	t.Run("decode tolerates junk", func(t *testing.T) {
		q := url.Values{}
		q.Set("status", "NONSENSE")
		q.Set("page", "-3")
		q.Set("limit", "99999")
		q.Set("unknown", "x")

		f := resource.DecodeFilters(newsDescriptor(), q)
		if f.Get("status") != "" {
			t.Errorf("invalid enum value must fall back to default, got %q", f.Get("status"))
		}
		if f.Page() != 1 {
			t.Errorf("negative page must clamp to 1, got %d", f.Page())
		}
		if f.Limit() != 10 {
			t.Errorf("oversized limit must fall back to default, got %d", f.Limit())
		}
	})

	t.Run("decode keeps deep-link page", func(t *testing.T) {
		q := url.Values{}
		q.Set("title", "passeport")
		q.Set("page", "3")

		f := resource.DecodeFilters(newsDescriptor(), q)
		if f.Page() != 3 {
			t.Errorf("restoring a deep link must keep its page, got %d", f.Page())
		}
		if f.Get("title") != "passeport" {
			t.Errorf("expected title filter restored, got %q", f.Get("title"))
		}
	})

	t.Run("key is stable across equivalent states", func(t *testing.T) {
		a := resource.NewFilters(newsDescriptor())
		a.Set("title", "visa")
		a.Set("status", "PUBLISHED")

		b := resource.DecodeFilters(newsDescriptor(), a.Encode())
		if a.Key() != b.Key() {
			t.Errorf("round-tripped state must produce the same key: %q vs %q", a.Key(), b.Key())
		}
	})
}

func TestDebouncer(t *testing.T) {
	t.Run("only the last burst update fires", func(t *testing.T) {
		var fired atomic.Int32
		d := resource.NewDebouncer(20 * time.Millisecond)
		defer d.Stop()

		for i := 0; i < 5; i++ {
			d.Do(func() { fired.Add(1) })
		}

		time.Sleep(80 * time.Millisecond)
		if got := fired.Load(); got != 1 {
			t.Errorf("expected exactly 1 firing, got %d", got)
		}
	})

	t.Run("stop cancels pending call", func(t *testing.T) {
		var fired atomic.Int32
		d := resource.NewDebouncer(20 * time.Millisecond)
		d.Do(func() { fired.Add(1) })
		d.Stop()

		time.Sleep(60 * time.Millisecond)
		if got := fired.Load(); got != 0 {
			t.Errorf("expected no firing after Stop, got %d", got)
		}
	})
}
