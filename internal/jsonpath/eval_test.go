package jsonpath

import (
	"reflect"
	"testing"
)

func testDoc() map[string]any {
	return map[string]any{
		"info": map[string]any{"title": "Pets", "version": "1.0.0"},
		"paths": map[string]any{
			"/pets":      map[string]any{"get": map[string]any{"operationId": "listPets"}},
			"/pets/{id}": map[string]any{"get": map[string]any{"operationId": "getPet"}},
		},
		"servers": []any{
			map[string]any{"url": "https://api.example.com"},
			map[string]any{"url": "https://staging.example.com"},
		},
	}
}

// TestFind tests expression evaluation against a document.
func TestFind(t *testing.T) {
	doc := testDoc()

	t.Run("root", func(t *testing.T) {
		p, _ := Parse("$")
		matches := p.Find(doc)
		if len(matches) != 1 {
			t.Fatalf("len(matches) = %d, want 1", len(matches))
		}
		if !reflect.DeepEqual(matches[0].Value, doc) {
			t.Error("root match is not the document")
		}
		if len(matches[0].Steps) != 0 {
			t.Errorf("root steps = %v, want empty", matches[0].Steps)
		}
	})

	t.Run("dotted child", func(t *testing.T) {
		p, _ := Parse("$.info.title")
		matches := p.Find(doc)
		if len(matches) != 1 || matches[0].Value != "Pets" {
			t.Fatalf("matches = %v, want [Pets]", matches)
		}
		want := []Step{{Key: "info"}, {Key: "title"}}
		if !reflect.DeepEqual(matches[0].Steps, want) {
			t.Errorf("steps = %v, want %v", matches[0].Steps, want)
		}
	})

	t.Run("bracketed child", func(t *testing.T) {
		p, _ := Parse("$.paths['/pets'].get.operationId")
		matches := p.Find(doc)
		if len(matches) != 1 || matches[0].Value != "listPets" {
			t.Errorf("matches = %v, want [listPets]", matches)
		}
	})

	t.Run("array index", func(t *testing.T) {
		p, _ := Parse("$.servers[1].url")
		matches := p.Find(doc)
		if len(matches) != 1 || matches[0].Value != "https://staging.example.com" {
			t.Errorf("matches = %v", matches)
		}
	})

	t.Run("negative array index", func(t *testing.T) {
		p, _ := Parse("$.servers[-1].url")
		matches := p.Find(doc)
		if len(matches) != 1 || matches[0].Value != "https://staging.example.com" {
			t.Errorf("matches = %v", matches)
		}
		// Steps hold the normalized index.
		want := []Step{{Key: "servers"}, {Index: 1, IsIndex: true}, {Key: "url"}}
		if !reflect.DeepEqual(matches[0].Steps, want) {
			t.Errorf("steps = %v, want %v", matches[0].Steps, want)
		}
	})

	t.Run("wildcard over mapping is sorted", func(t *testing.T) {
		p, _ := Parse("$.paths.*.get.operationId")
		matches := p.Find(doc)
		if len(matches) != 2 {
			t.Fatalf("len(matches) = %d, want 2", len(matches))
		}
		// "/pets" sorts before "/pets/{id}".
		if matches[0].Value != "listPets" || matches[1].Value != "getPet" {
			t.Errorf("matches = [%v %v], want [listPets getPet]", matches[0].Value, matches[1].Value)
		}
	})

	t.Run("wildcard over sequence", func(t *testing.T) {
		p, _ := Parse("$.servers[*].url")
		matches := p.Find(doc)
		if len(matches) != 2 {
			t.Fatalf("len(matches) = %d, want 2", len(matches))
		}
		if matches[0].Value != "https://api.example.com" {
			t.Errorf("matches[0] = %v", matches[0].Value)
		}
	})

	t.Run("no match", func(t *testing.T) {
		p, _ := Parse("$.components.schemas")
		if matches := p.Find(doc); len(matches) != 0 {
			t.Errorf("matches = %v, want none", matches)
		}
	})

	t.Run("index on mapping matches nothing", func(t *testing.T) {
		p, _ := Parse("$.info[0]")
		if matches := p.Find(doc); len(matches) != 0 {
			t.Errorf("matches = %v, want none", matches)
		}
	})
}

func TestFirst(t *testing.T) {
	doc := testDoc()

	p, _ := Parse("$.paths.*")
	m, ok := p.First(doc)
	if !ok {
		t.Fatal("First returned no match")
	}
	want := []Step{{Key: "paths"}, {Key: "/pets"}}
	if !reflect.DeepEqual(m.Steps, want) {
		t.Errorf("steps = %v, want %v", m.Steps, want)
	}

	p, _ = Parse("$.missing")
	if _, ok := p.First(doc); ok {
		t.Error("First matched a missing path")
	}
}

// TestMatchesSteps tests symbolic matching of concrete addresses.
func TestMatchesSteps(t *testing.T) {
	tests := []struct {
		expr  string
		steps []Step
		want  bool
	}{
		{"$", nil, true},
		{"$.info", []Step{{Key: "info"}}, true},
		{"$.info", []Step{{Key: "paths"}}, false},
		{"$.info", nil, false},
		{"$.info.title", []Step{{Key: "info"}}, false},
		{"$.info", []Step{{Key: "info"}, {Key: "title"}}, false},
		{"$.paths.*", []Step{{Key: "paths"}, {Key: "/pets"}}, true},
		{"$.servers[0]", []Step{{Key: "servers"}, {Index: 0, IsIndex: true}}, true},
		{"$.servers[0]", []Step{{Key: "servers"}, {Index: 1, IsIndex: true}}, false},
		{"$.servers[0]", []Step{{Key: "servers"}, {Key: "0"}}, false},
		{"$.*.title", []Step{{Key: "info"}, {Key: "title"}}, true},
	}

	for _, tt := range tests {
		p, err := Parse(tt.expr)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.expr, err)
		}
		if got := p.MatchesSteps(tt.steps); got != tt.want {
			t.Errorf("MatchesSteps(%q, %v) = %v, want %v", tt.expr, tt.steps, got, tt.want)
		}
	}
}

// TestSplice tests functional replacement at a concrete address.
func TestSplice(t *testing.T) {
	t.Run("root replacement", func(t *testing.T) {
		got := Splice(testDoc(), nil, "replaced")
		if got != "replaced" {
			t.Errorf("Splice at root = %v", got)
		}
	})

	t.Run("nested mapping key", func(t *testing.T) {
		doc := testDoc()
		got := Splice(doc, []Step{{Key: "info"}, {Key: "title"}}, "Dogs")
		title := got.(map[string]any)["info"].(map[string]any)["title"]
		if title != "Dogs" {
			t.Errorf("spliced title = %v, want Dogs", title)
		}
		// Input untouched.
		if doc["info"].(map[string]any)["title"] != "Pets" {
			t.Error("Splice modified the input document")
		}
	})

	t.Run("sequence index", func(t *testing.T) {
		doc := testDoc()
		got := Splice(doc, []Step{{Key: "servers"}, {Index: 0, IsIndex: true}}, "gone")
		servers := got.(map[string]any)["servers"].([]any)
		if servers[0] != "gone" {
			t.Errorf("servers[0] = %v, want gone", servers[0])
		}
		if doc["servers"].([]any)[0] == "gone" {
			t.Error("Splice modified the input sequence")
		}
	})

	t.Run("missing address leaves document unchanged", func(t *testing.T) {
		doc := testDoc()
		got := Splice(doc, []Step{{Key: "nope"}}, "x")
		if !reflect.DeepEqual(got, doc) {
			t.Errorf("Splice at missing address changed the document")
		}
	})

	t.Run("untouched siblings are shared", func(t *testing.T) {
		doc := testDoc()
		got := Splice(doc, []Step{{Key: "info"}, {Key: "title"}}, "Dogs").(map[string]any)
		if !reflect.DeepEqual(got["paths"], doc["paths"]) {
			t.Error("sibling subtree differs after splice")
		}
	})
}

func TestFormatSteps(t *testing.T) {
	steps := []Step{{Key: "paths"}, {Key: "/pets"}, {Index: 2, IsIndex: true}}
	want := "$['paths']['/pets'][2]"
	if got := FormatSteps(steps); got != want {
		t.Errorf("FormatSteps = %q, want %q", got, want)
	}
}
