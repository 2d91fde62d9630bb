package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

type memoryStore struct {
	value   string
	loadErr error
	saveErr error
	saves   []string
}

func (m *memoryStore) Load(context.Context) (string, error) {
	return m.value, m.loadErr
}

func (m *memoryStore) Save(_ context.Context, mode string) error {
	m.saves = append(m.saves, mode)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = mode
	return nil
}

func system(dark bool, err error) SystemPreference {
	return func() (bool, error) { return dark, err }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		saved      string
		systemDark bool
		want       bool
	}{
		{name: "saved dark", saved: "dark", systemDark: false, want: true},
		{name: "saved light beats dark system", saved: "light", systemDark: true, want: false},
		{name: "nothing saved, dark system", saved: "", systemDark: true, want: true},
		{name: "nothing saved, light system", saved: "", systemDark: false, want: false},
		{name: "garbage saved falls back to system", saved: "purple", systemDark: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.saved, tt.systemDark); got != tt.want {
				t.Errorf("Resolve(%q, %v) = %v, want %v", tt.saved, tt.systemDark, got, tt.want)
			}
		})
	}
}

func TestNewInitialization(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	tests := []struct {
		name   string
		store  Store
		system SystemPreference
		want   bool
	}{
		{
			name:   "no preference, system dark",
			store:  &memoryStore{},
			system: system(true, nil),
			want:   true,
		},
		{
			name:   "saved light ignores system",
			store:  &memoryStore{value: Light},
			system: system(true, nil),
			want:   false,
		},
		{
			name:   "saved dark",
			store:  &memoryStore{value: Dark},
			system: system(false, nil),
			want:   true,
		},
		{
			name:   "store failure falls back to system",
			store:  &memoryStore{loadErr: errors.New("boom")},
			system: system(true, nil),
			want:   true,
		},
		{
			name:   "everything fails defaults to light",
			store:  &memoryStore{loadErr: errors.New("boom")},
			system: system(true, errors.New("no hint")),
			want:   false,
		},
		{
			name:   "no store, no system",
			store:  nil,
			system: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewClassList("scroll-smooth")
			c := New(ctx, tt.store, tt.system, root, log)

			if c.IsDark() != tt.want {
				t.Errorf("IsDark() = %v, want %v", c.IsDark(), tt.want)
			}
			if root.Has(DarkMarker) != tt.want {
				t.Errorf("root marker = %v, want %v (classes %q)", root.Has(DarkMarker), tt.want, root.String())
			}
		})
	}
}

func TestToggleTwiceIsSymmetric(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	root := NewClassList()

	c := New(ctx, store, system(false, nil), root, logger.Nop())
	if c.IsDark() || root.Has(DarkMarker) {
		t.Fatal("expected light start")
	}

	if !c.Toggle(ctx) {
		t.Error("first Toggle() should turn dark")
	}
	if !root.Has(DarkMarker) {
		t.Error("dark marker missing after first toggle")
	}
	if store.value != Dark {
		t.Errorf("persisted = %q, want dark", store.value)
	}

	if c.Toggle(ctx) {
		t.Error("second Toggle() should turn light")
	}
	if root.Has(DarkMarker) {
		t.Error("dark marker still present after second toggle")
	}
	if store.value != Light {
		t.Errorf("persisted = %q, want light", store.value)
	}

	if len(store.saves) != 2 {
		t.Errorf("saves = %v, want one write per toggle", store.saves)
	}
}

func TestToggleSaveFailureStillFlips(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{saveErr: errors.New("read-only")}

	c := New(ctx, store, nil, NewClassList(), logger.Nop())
	if !c.Toggle(ctx) {
		t.Error("Toggle() should flip even when persisting fails")
	}
	if c.Mode() != Dark {
		t.Errorf("Mode() = %q, want dark", c.Mode())
	}
}

func TestLayered(t *testing.T) {
	ctx := context.Background()
	empty := &memoryStore{}
	broken := &memoryStore{loadErr: errors.New("down"), saveErr: errors.New("down")}
	filled := &memoryStore{value: Dark}

	v, err := Layered{empty, broken, filled}.Load(ctx)
	if err != nil || v != Dark {
		t.Errorf("Load() = %q, %v; want dark, nil", v, err)
	}

	v, err = Layered{empty, broken}.Load(ctx)
	if err == nil || v != "" {
		t.Errorf("Load() = %q, %v; want empty with error", v, err)
	}

	if err := (Layered{empty, broken}).Save(ctx, Light); err == nil {
		t.Error("Save() should report the failing layer")
	}
	if empty.value != Light {
		t.Errorf("healthy layer value = %q, want light", empty.value)
	}
}

func TestClassList(t *testing.T) {
	l := NewClassList("a", " ", "b", "a")
	if l.String() != "a b" {
		t.Errorf("String() = %q, want %q", l.String(), "a b")
	}
	l.Add("dark")
	l.Remove("a")
	if l.String() != "b dark" {
		t.Errorf("String() = %q, want %q", l.String(), "b dark")
	}
	l.Remove("missing")
	if !l.Has("dark") || l.Has("a") {
		t.Error("Has() mismatch")
	}

	var zero ClassList
	zero.Add("dark")
	if zero.String() != "dark" {
		t.Errorf("zero ClassList String() = %q", zero.String())
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	root := NewClassList()
	c := New(ctx, Static(Dark), nil, root, logger.Nop())
	if !c.IsDark() || !root.Has(DarkMarker) {
		t.Fatal("static dark should start dark")
	}

	c.Toggle(ctx)
	if root.Has(DarkMarker) {
		t.Error("toggle should remove the marker")
	}
	if v, _ := Static(Dark).Load(ctx); v != Dark {
		t.Error("static store must not change")
	}
}
