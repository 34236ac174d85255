package components_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasschema/components"
	"github.com/erraggy/oasschema/schema"
)

type Pet struct {
	ID   int64  `json:"id" oas:"readOnly"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

func ExampleTable_SchemaFor() {
	table := components.New()

	ref, err := table.SchemaFor(Pet{})
	if err != nil {
		log.Fatal(err)
	}
	refJSON, _ := schema.MarshalJSON(ref)
	fmt.Println(string(refJSON))

	doc, err := table.MarshalJSON()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(doc))
	// Output:
	// {"$ref":"#/components/schemas/Pet"}
	// {"schemas":{"Pet":{"type":"object","properties":{"id":{"type":"integer","format":"int64","readOnly":true},"name":{"type":"string"},"tag":{"type":"string"}},"required":["id","name"]}}}
}

func ExampleTable_ResolveDeep() {
	table := components.New()
	if _, err := table.Add("Name", schema.String(schema.Context[schema.StringFormat]{}, schema.StringContext{})); err != nil {
		log.Fatal(err)
	}
	if _, err := table.Add("Label", schema.Ref("Name")); err != nil {
		log.Fatal(err)
	}

	n, err := table.ResolveDeep(schema.Ref("Label"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(schema.KindOf(n))
	// Output:
	// string
}

func ExampleComponentName() {
	fmt.Println(components.ComponentName("pet store item"))
	// Output:
	// PetStoreItem
}
