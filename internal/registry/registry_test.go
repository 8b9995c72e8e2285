package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/match3/core"
)

func constant(v string) Factory {
	return func(config.GeneratorConfig, []string) (core.Generator[string], error) {
		return core.GeneratorFunc[string](func() (string, error) { return v, nil }), nil
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-const", "Constant", constant("Z"))

	if !Exists("test-const") {
		t.Fatal("registered generator should exist")
	}

	gen, err := Create(config.GeneratorConfig{Kind: "test-const"}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	v, err := gen.Next()
	if err != nil || v != "Z" {
		t.Errorf("Next() = %q, %v; want Z, nil", v, err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", constant("A"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup", constant("A"))
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create(config.GeneratorConfig{Kind: "no-such-kind"}, nil); err == nil {
		t.Error("Create should fail for an unknown kind")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-fail", "Failing", func(config.GeneratorConfig, []string) (core.Generator[string], error) {
		return nil, boom
	})

	_, err := Create(config.GeneratorConfig{Kind: "test-fail"}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("Create error = %v, want wrapping %v", err, boom)
	}
}

func TestListSorted(t *testing.T) {
	Register("test-b", "B", constant("B"))
	Register("test-a", "A", constant("A"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test-a" && info.Title == "A" {
			found = true
		}
	}
	if !found {
		t.Error("List should include test-a with its title")
	}
}
