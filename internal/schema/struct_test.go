package schema

import "testing"

func TestFromStruct(t *testing.T) {
	type Address struct {
		City    string `json:"city" desc:"City name"`
		Zipcode string `json:"zipcode,omitempty"`
	}
	type Person struct {
		Name     string    `json:"name" desc:"Full name of the person"`
		Age      int       `json:"age"`
		Score    float64   `json:"score"`
		Active   bool      `json:"active"`
		Role     string    `json:"role" enum:"admin,member"`
		Nickname *string   `json:"nickname"`
		Tags     []string  `json:"tags"`
		Homes    []Address `json:"homes"`
		Internal string    `json:"-"`
		hidden   string
	}
	_ = Person{hidden: ""}

	def, err := FromStruct("person", Person{})
	if err != nil {
		t.Fatalf("FromStruct() error = %v", err)
	}

	byName := make(map[string]Field, len(def.Fields))
	for _, f := range def.Fields {
		byName[f.Name] = f
	}

	if len(def.Fields) != 8 {
		t.Errorf("expected 8 fields, got %d: %+v", len(def.Fields), def.Fields)
	}
	if _, ok := byName["Internal"]; ok {
		t.Error("json:\"-\" field should be excluded")
	}

	if f := byName["name"]; f.Type != String || f.Description != "Full name of the person" {
		t.Errorf("name field wrong: %+v", f)
	}
	if f := byName["age"]; f.Type != Integer {
		t.Errorf("age should be integer, got %s", f.Type)
	}
	if f := byName["score"]; f.Type != Number {
		t.Errorf("score should be number, got %s", f.Type)
	}
	if f := byName["active"]; f.Type != Boolean {
		t.Errorf("active should be boolean, got %s", f.Type)
	}
	if f := byName["role"]; len(f.Enum) != 2 || f.Enum[0] != "admin" {
		t.Errorf("role enum wrong: %+v", f.Enum)
	}
	if f := byName["nickname"]; !f.Optional || f.Type != String {
		t.Errorf("pointer field should be optional string: %+v", f)
	}
	if f := byName["tags"]; f.Type != Array || f.Items != String {
		t.Errorf("tags should be array of string: %+v", f)
	}

	homes := byName["homes"]
	if homes.Type != Array || homes.Items != Object {
		t.Fatalf("homes should be array of object: %+v", homes)
	}
	if len(homes.Fields) != 2 {
		t.Fatalf("homes nested fields wrong: %+v", homes.Fields)
	}
	if homes.Fields[1].Name != "zipcode" || !homes.Fields[1].Optional {
		t.Errorf("omitempty nested field should be optional: %+v", homes.Fields[1])
	}
}

func TestFromStructRejectsNonStruct(t *testing.T) {
	if _, err := FromStruct("bad", 42); err == nil {
		t.Error("expected error for non-struct input")
	}
}

func TestFromStructRejectsUnsupportedType(t *testing.T) {
	type Bad struct {
		M map[string]string `json:"m"`
	}
	if _, err := FromStruct("bad", Bad{}); err == nil {
		t.Error("expected error for map field")
	}
}
