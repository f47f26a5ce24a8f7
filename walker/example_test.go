package walker_test

import (
	"fmt"
	"strings"

	"github.com/timepp/uu/value"
	"github.com/timepp/uu/walker"
)

func ExampleTraverse() {
	address := value.NewObject().Set("city", "Oslo")
	address.Set("recursive", address)
	doc := value.NewObject().Set("name", "ada").Set("address", address)

	walker.Traverse(doc, -1, func(path []string, _ any, kind walker.NodeKind) walker.Action {
		fmt.Printf("/%s: %s\n", strings.Join(path, "/"), kind)
		return walker.Continue
	})
	// Output:
	// /: object
	// /name: leaf
	// /address: object
	// /address/city: leaf
	// /address/recursive: loop
}

func ExampleFuzzyFind() {
	doc, _ := value.Parse([]byte(`{"users": [{"name": "Ada"}, {"name": "Grace", "age": 85}]}`))

	path, ok := walker.FuzzyFind(doc, "grace", false)
	fmt.Println(ok, strings.Join(path, "."))
	path, ok = walker.FuzzyFind(doc, "85", true)
	fmt.Println(ok, strings.Join(path, "."))
	// Output:
	// true users.1.name
	// true users.1.age
}
