package validation

import "testing"

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "root", path: Path{}, want: "$"},
		{name: "nil root", path: nil, want: "$"},
		{name: "single key", path: Path{}.Child("fqn"), want: "$.fqn"},
		{name: "nested keys", path: Path{}.Child("metadata").Child("owner"), want: "$.metadata.owner"},
		{name: "index under key", path: Path{}.Child("columns").Index(0), want: "$.columns[0]"},
		{name: "key under index", path: Path{}.Child("columns").Index(2).Child("name"), want: "$.columns[2].name"},
		{name: "consecutive indices", path: Path{}.Child("rows").Index(1).Index(3), want: "$.rows[1][3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathExtendDoesNotAliasParent(t *testing.T) {
	base := Path{}.Child("columns")
	a := base.Index(0).Child("name")
	b := base.Index(1).Child("type")

	if got := a.String(); got != "$.columns[0].name" {
		t.Errorf("first branch = %q, want %q", got, "$.columns[0].name")
	}
	if got := b.String(); got != "$.columns[1].type" {
		t.Errorf("second branch = %q, want %q", got, "$.columns[1].type")
	}
}

func TestErrorListAdd(t *testing.T) {
	var l ErrorList
	if l.HasErrors() {
		t.Fatal("empty list reports HasErrors")
	}

	l.Add(KindMissingFQN, Path{}.Child("fqn"), "missing")
	l.AddDetailed(KindMissing, Path{}.Child("name"), "Field required", "missing")

	if !l.HasErrors() {
		t.Fatal("non-empty list reports no errors")
	}
	if len(l.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(l.Errors))
	}
	if l.Errors[0].Detail != nil {
		t.Error("Add attached a detail")
	}
	if l.Errors[1].Detail == nil {
		t.Fatal("AddDetailed attached no detail")
	}
	if l.Errors[1].Detail.Type != "missing" || l.Errors[1].Detail.Msg != "Field required" {
		t.Errorf("detail = %+v, want {missing Field required}", *l.Errors[1].Detail)
	}
}
